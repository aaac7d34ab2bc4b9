// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/beamplast/fem"
	"github.com/cpmech/beamplast/out"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	runVerbose bool   // show messages
	runPng     bool   // save figures
	runAscii   string // key of series to plot as text
	runIvs     bool   // save internal variables
	runReadIvs string // file with internal variables to start from
	runNode    int    // node where reactions are collected
)

var runCmd = &cobra.Command{
	Use:   "run <file.sim>",
	Short: "Run the load path defined in a simulation file",
	Long: `Run the load path defined in a simulation (.sim) file and print a table
with the max equivalent stress, max effective plastic strain, number of
plastic points and reactions @ a node for each step.

Examples:
  # bend a chain of beams and plot the max equivalent stress
  beamplast run fem/data/chain.sim --ascii qmax

  # save figures and internal variables to the output directory
  beamplast run fem/data/chain.sim --png --ivs`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show messages")
	runCmd.Flags().BoolVar(&runPng, "png", false, "Save figures to the output directory")
	runCmd.Flags().StringVarP(&runAscii, "ascii", "a", "", "Plot series as text; e.g. qmax, epmax, nplast, f, m")
	runCmd.Flags().BoolVar(&runIvs, "ivs", false, "Save internal variables to the output directory")
	runCmd.Flags().StringVar(&runReadIvs, "read-ivs", "", "Read internal variables before running")
	runCmd.Flags().IntVarP(&runNode, "node", "n", 0, "Node where reactions are collected")
}

func runRun(cmd *cobra.Command, args []string) (err error) {

	// simulation
	io.Verbose = runVerbose
	main, err := fem.NewMain(args[0], runVerbose)
	if err != nil {
		return
	}
	if runReadIvs != "" {
		err = main.ReadIvs(runReadIvs)
		if err != nil {
			return
		}
	}
	err = main.Run()
	if err != nil {
		return
	}

	// table
	h, err := out.NewHistory(main.Res, runNode)
	if err != nil {
		return
	}
	io.Pf("\n")
	err = h.Print(os.Stdout)
	if err != nil {
		return
	}

	// text plot
	if runAscii != "" {
		txt, e := h.Ascii(runAscii)
		if e != nil {
			return e
		}
		io.Pf("\n%s\n", txt)
	}

	// files
	if runPng {
		fns, e := h.SaveAll(main.Sim.DirOut, main.Sim.Key)
		if e != nil {
			return e
		}
		for _, fn := range fns {
			io.Pf("file <%s> written\n", fn)
		}
	}
	if runIvs {
		fn, e := main.SaveIvs()
		if e != nil {
			return e
		}
		io.Pf("file <%s> written\n", fn)
	}
	return
}
