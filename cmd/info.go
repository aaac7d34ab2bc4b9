// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/beamplast/inp"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.sim>",
	Short: "Check a simulation file and print its data with defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := inp.ReadSim(args[0], false)
		if err != nil {
			return err
		}
		return sim.GetInfo(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
