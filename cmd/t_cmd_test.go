// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01")

	rootCmd.SetArgs([]string{"info", "../fem/data/chain.sim"})
	err := rootCmd.Execute()
	if err != nil {
		tst.Errorf("info failed:\n%v", err)
		return
	}

	rootCmd.SetArgs([]string{"run", "../fem/data/chain.sim", "--ascii", "m", "--ivs"})
	err = rootCmd.Execute()
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}

	rootCmd.SetArgs([]string{"run", "../fem/data/chain.sim", "--read-ivs", "/tmp/beamplast/fem-chain/chain.ivs", "--node", "4"})
	err = rootCmd.Execute()
	if err != nil {
		tst.Errorf("run from ivs failed:\n%v", err)
		return
	}

	rootCmd.SetArgs([]string{"run", "../fem/data/chain.sim", "--node", "7"})
	err = rootCmd.Execute()
	if err == nil {
		tst.Errorf("run with wrong node should have failed")
	}

	rootCmd.SetArgs([]string{"driver", "../inp/data/steel.mat", "--name", "steel-perfect", "--kind", "shear", "--max", "0.01", "--plot"})
	err = rootCmd.Execute()
	if err != nil {
		tst.Errorf("driver failed:\n%v", err)
		return
	}

	rootCmd.SetArgs([]string{"driver", "../inp/data/steel.mat", "--name", "wood"})
	err = rootCmd.Execute()
	if err == nil {
		tst.Errorf("driver with wrong material should have failed")
	}

	rootCmd.SetArgs([]string{"run"})
	err = rootCmd.Execute()
	if err == nil {
		tst.Errorf("run without file should have failed")
	}
}
