// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cpmech/beamplast/inp"
	sld "github.com/cpmech/beamplast/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	drvName    string  // material name
	drvKind    string  // kind of strain path
	drvMax     float64 // max strain
	drvNdiv    int     // increments per segment
	drvNcycles int     // number of cycles
	drvPlot    bool    // plot equivalent stress
)

var driverCmd = &cobra.Command{
	Use:   "driver <file.mat>",
	Short: "Run a cyclic strain path on a single material point",
	Long: `Run a cyclic strain path (0 → +max → -max → +max ...) on a single
material point of a material defined in a materials (.mat) file and print
the stress, equivalent stress, effective plastic strain and state @ each
increment.

Examples:
  beamplast driver inp/data/steel.mat --name steel --max 0.005
  beamplast driver inp/data/steel.mat --name steel-perfect --kind shear --max 0.01 --plot`,
	Args: cobra.ExactArgs(1),
	RunE: runDriver,
}

func init() {
	rootCmd.AddCommand(driverCmd)
	driverCmd.Flags().StringVar(&drvName, "name", "", "Material name [required]")
	driverCmd.Flags().StringVarP(&drvKind, "kind", "k", "uniaxial", "Strain path: uniaxial or shear")
	driverCmd.Flags().Float64VarP(&drvMax, "max", "m", 0.005, "Max strain (engineering shear strain if kind is shear)")
	driverCmd.Flags().IntVar(&drvNdiv, "ndiv", 10, "Number of increments per segment")
	driverCmd.Flags().IntVar(&drvNcycles, "ncycles", 1, "Number of cycles")
	driverCmd.Flags().BoolVarP(&drvPlot, "plot", "p", false, "Plot equivalent stress as text")
	driverCmd.MarkFlagRequired("name")
}

func runDriver(cmd *cobra.Command, args []string) (err error) {

	// material
	dir, fn := filepath.Split(args[0])
	mdb, err := inp.ReadMat(dir, fn)
	if err != nil {
		return
	}
	mat := mdb.Get(drvName)
	if mat == nil {
		return chk.Err("cannot find material %q in %q", drvName, args[0])
	}

	// run
	path, err := sld.CyclicPath(drvKind, drvMax, drvNdiv, drvNcycles)
	if err != nil {
		return
	}
	var drv sld.Driver
	err = drv.Init(mat.Sld)
	if err != nil {
		return
	}
	err = drv.Run(path)
	if err != nil {
		return
	}

	// table
	comp := 0
	if drvKind == "shear" {
		comp = 3
	}
	q := make([]float64, len(drv.Res))
	var buf bytes.Buffer
	io.Ff(&buf, "inc\tε\tσ\tq\tε̄p\tstate\t\n")
	for i, s := range drv.Res {
		q[i] = sld.EquivStress(s.Sig)
		io.Ff(&buf, "%d\t%.6e\t%.6e\t%.6e\t%.6e\t%s\t\n", i, drv.Eps[i][comp], s.Sig[comp], q[i], s.EpsPeff, s.Mstate)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, err = tw.Write(buf.Bytes())
	if err != nil {
		return
	}
	err = tw.Flush()
	if err != nil {
		return
	}

	// plot
	if drvPlot {
		io.Pf("\n%s\n", asciigraph.Plot(q,
			asciigraph.Height(12),
			asciigraph.Width(60),
			asciigraph.Caption(io.Sf("q of %q versus increment", drvName)),
		))
	}
	return
}
