// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface of beamplast
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version holds the version of beamplast
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "beamplast",
	Short: "Elastoplastic 3D beam elements",
	Long: `beamplast - elastoplastic 3D beams connecting rigid nodes

Runs prescribed load paths (bend, stretch, twist) on chains of beam
elements with Von Mises plasticity evaluated @ 27 Gauss points per
element, and reports stresses, plastic strains and reactions.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamplast",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("beamplast v%s\n", Version)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}
