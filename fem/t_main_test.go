// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/beamplast/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01")

	main, err := NewMain("data/chain.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "nsteps", len(main.Res), len(main.Sim.Loading.Amounts))

	// elastic bending: moment @ clamped end
	sec, _ := ana.NewSection(0.05, 0.05)
	sol, err := ana.NewConstrained(210e9, 0.3, 250e6, sec)
	if err != nil {
		tst.Errorf("NewConstrained failed:\n%v", err)
		return
	}
	r := main.Res[0]
	M := sol.Moment(r.Amount)
	io.Pforan("M = %v  (%v)\n", r3.Norm(r.F[0].Ang), M)
	chk.Int(tst, "nplast @ 0", r.Nplast, 0)
	chk.Float64(tst, "M @ 0", 1e-3*M, r3.Norm(r.F[0].Ang), M)

	// outermost integration points are at y = ±√(3/5)⋅h/2
	q := 2.0 * sol.G * r.Amount * math.Sqrt(0.6) * 0.025
	chk.Float64(tst, "qmax @ 0", 2e-2*q, r.Qmax, q)

	// plastic loading
	if main.Res[2].Amount*math.Sqrt(0.6) < sol.YieldCurvature() {
		tst.Errorf("step 2 must yield the outermost integration points")
		return
	}
	for k := 2; k < 5; k++ {
		if main.Res[k].Nplast == 0 {
			tst.Errorf("step %d should have plastic points", k)
		}
		if main.Res[k].EpMax < main.Res[k-1].EpMax {
			tst.Errorf("plastic strain must not decrease: %v < %v", main.Res[k].EpMax, main.Res[k-1].EpMax)
		}
	}

	// elastic unloading
	chk.Int(tst, "nplast @ 5", main.Res[5].Nplast, 0)
	chk.Float64(tst, "epmax @ 5", 1e-17, main.Res[5].EpMax, main.Res[4].EpMax)

	// internal variables
	fn, err := main.SaveIvs()
	if err != nil {
		tst.Errorf("SaveIvs failed:\n%v", err)
		return
	}
	other, err := NewMain("data/chain.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = other.ReadIvs(fn)
	if err != nil {
		tst.Errorf("ReadIvs failed:\n%v", err)
		return
	}
	ips0, ips1 := main.FF.IpsValues(), other.FF.IpsValues()
	for i := range ips0 {
		chk.Array(tst, io.Sf("ep of element %d", i), 1e-17, (*ips1[i])["ep"], (*ips0[i])["ep"])
	}

	// same step from restored state
	last := main.Sim.Loading.Amounts[len(main.Sim.Loading.Amounts)-1]
	err = other.RunStep(last)
	if err != nil {
		tst.Errorf("RunStep failed:\n%v", err)
		return
	}
	chk.Array(tst, "f", 1e-6, derivs2vec(other.Res[0].F), derivs2vec(main.Res[len(main.Res)-1].F))
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02")

	// invalid elements are skipped
	main, err := NewMain("data/invalid.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "nsteps", len(main.Res), 2)
	if main.Res[0].Ips[1] != nil || main.Res[0].Ips[3] != nil {
		tst.Errorf("invalid and inactive elements must not have results")
	}

	// uniform stretch of 0.2% yields
	sec, _ := ana.NewSection(0.05, 0.05)
	sol, _ := ana.NewConstrained(210e9, 0.3, 250e6, sec)
	chk.Int(tst, "nplast @ 0", main.Res[0].Nplast, 0)
	chk.Float64(tst, "qmax @ 0", 1.0, main.Res[0].Qmax, 2*sol.G*0.0005)
	if main.Res[1].Amount < sol.YieldStrain() {
		tst.Errorf("step 1 must yield")
		return
	}
	if main.Res[1].Nplast != 2*27 {
		tst.Errorf("all points must be plastic. %d != %d", main.Res[1].Nplast, 2*27)
	}
	chk.Float64(tst, "qmax @ 1", 1e3, main.Res[1].Qmax, 250e6)

	// wrong file
	_, err = NewMain("data/nonexistent.sim", false)
	if err == nil {
		tst.Errorf("NewMain should have failed")
	}
	err = main.ReadIvs("/tmp/beamplast/nonexistent.ivs")
	if err == nil {
		tst.Errorf("ReadIvs should have failed")
	}
}
