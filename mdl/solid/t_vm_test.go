// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// newVM allocates a steel-like Von Mises model; extra parameters are appended
func newVM(tst *testing.T, extra ...*dbf.P) *VonMises {
	prms := dbf.Params{
		{N: "E", V: 210e9},
		{N: "nu", V: 0.3},
		{N: "sY", V: 250e6},
	}
	prms = append(prms, extra...)
	mdl, err := New("vm")
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	return mdl.(*VonMises)
}

// uni returns the strains of a uniaxial stress test in the elastic range
func uni(e float64) []float64 {
	return []float64{e, -0.3 * e, -0.3 * e, 0, 0, 0}
}

func Test_vm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm01")

	// wrong parameters
	bad := []dbf.Params{
		{{N: "E", V: 0}, {N: "nu", V: 0.3}, {N: "sY", V: 250e6}},
		{{N: "E", V: 210e9}, {N: "nu", V: 0.5}, {N: "sY", V: 250e6}},
		{{N: "E", V: 210e9}, {N: "nu", V: -1}, {N: "sY", V: 250e6}},
		{{N: "E", V: 210e9}, {N: "nu", V: 0.3}, {N: "sY", V: 0}},
		{{N: "E", V: 210e9}, {N: "nu", V: 0.3}, {N: "sY", V: 250e6}, {N: "beta", V: 1.5}},
		{{N: "E", V: 210e9}, {N: "nu", V: 0.3}, {N: "sY", V: 250e6}, {N: "H", V: -1}},
	}
	for i, prms := range bad {
		var mdl VonMises
		err := mdl.Init(prms)
		if err == nil {
			tst.Errorf("test failed: parameters %d should have caused an error\n", i)
			return
		}
		io.Pforan("ok: %v\n", err)
	}

	// unknown model
	_, err := New("cam-clay")
	if err == nil {
		tst.Errorf("test failed: unknown model should have caused an error\n")
		return
	}

	// elastic operator
	mdl := newVM(tst)
	chk.Float64(tst, "G", 1e-3, mdl.G, 210e9/2.6)
	chk.Float64(tst, "C00", 1e-2, mdl.C.At(0, 0), mdl.K+4.0*mdl.G/3.0)
	chk.Float64(tst, "C01", 1e-2, mdl.C.At(0, 1), mdl.K-2.0*mdl.G/3.0)
	chk.Float64(tst, "C33", 1e-2, mdl.C.At(3, 3), mdl.G)
	if !mat.EqualApprox(mdl.C, mdl.C.T(), 1e-15) {
		tst.Errorf("test failed: C must be symmetric\n")
	}
}

func Test_vm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm02")

	// below yield
	mdl := newVM(tst, &dbf.P{N: "perfect", V: 1})
	s := mdl.InitIntVars()
	err := mdl.Update(s, uni(1e-3))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "elastic")
	chk.Array(tst, "σ", 1e-4, s.Sig, []float64{210e6, 0, 0, 0, 0, 0})
	chk.Array(tst, "εp", 1e-17, s.EpsP, []float64{0, 0, 0, 0, 0, 0})
	chk.Float64(tst, "ε̄p", 1e-17, s.EpsPeff, 0)
	chk.Float64(tst, "σy", 1e-17, s.Sy, 250e6)

	// beyond yield
	err = mdl.Update(s, uni(2e-3))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "plastic")
	chk.Float64(tst, "q", 1e-9*250e6, EquivStress(s.Sig), 250e6)
	chk.Float64(tst, "tr(εp)", 1e-17, VoigtTrace(s.EpsP), 0)
	chk.Float64(tst, "σy", 1e-17, s.Sy, 250e6)
	if s.EpsPeff <= 0 || s.Dlam <= 0 {
		tst.Errorf("test failed: plastic multiplier must be positive\n")
		return
	}
	io.Pforan("ε̄p = %v\n", s.EpsPeff)

	// closed form: Δλ = f_tr / 3G
	chk.Float64(tst, "Δλ", 1e-15, s.Dlam, (EquivStress(s.SigTr)-250e6)/(3.0*mdl.G))
}

func Test_vm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm03")

	H := 2e9
	for _, β := range []float64{1, 0, 0.5} {
		io.Pforan("β = %v\n", β)
		mdl := newVM(tst, &dbf.P{N: "H", V: H}, &dbf.P{N: "beta", V: β})
		s := mdl.InitIntVars()
		ε := []float64{0, 0, 0, 0, 0, 0}
		epOld := 0.0
		for k, e := range []float64{1e-3, 2e-3, 3e-3, 4e-3} {
			εnew := uni(e)
			εnew[3] = e / 2.0
			Δε := make([]float64, Nvoigt)
			for i := 0; i < Nvoigt; i++ {
				Δε[i] = εnew[i] - ε[i]
			}
			copy(ε, εnew)
			err := mdl.Update(s, Δε)
			if err != nil {
				tst.Errorf("test failed: %v\n", err)
				return
			}
			if k == 0 {
				chk.String(tst, s.Mstate.String(), "elastic")
				continue
			}
			chk.String(tst, s.Mstate.String(), "plastic")
			if s.EpsPeff <= epOld {
				tst.Errorf("test failed: effective plastic strain must increase under monotonic loading\n")
				return
			}
			epOld = s.EpsPeff

			// consistency
			ξ := make([]float64, Nvoigt)
			for i := 0; i < Nvoigt; i++ {
				ξ[i] = s.Sig[i] - s.Back[i]
			}
			chk.Float64(tst, "q(σ-α)", 1e-9*s.Sy, EquivStress(ξ), s.Sy)
			chk.Float64(tst, "σy", 1e-6, s.Sy, 250e6+β*H*s.EpsPeff)
			chk.Float64(tst, "tr(α)", 1e-6, VoigtTrace(s.Back), 0)
			chk.Float64(tst, "|α|", 1e-6, VoigtNorm(s.Back), math.Sqrt(2.0/3.0)*(1.0-β)*H*s.EpsPeff)
		}
	}
}

func Test_vm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm04")

	mdl := newVM(tst, &dbf.P{N: "H", V: 2e9})
	s := mdl.InitIntVars()

	// loading
	mdl.Update(s, uni(3e-3))
	chk.String(tst, s.Mstate.String(), "plastic")
	ref := s.GetCopy()

	// zero increment
	zero := []float64{0, 0, 0, 0, 0, 0}
	err := mdl.Update(s, zero)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "plastic")
	chk.Array(tst, "σ", 1e-17, s.Sig, ref.Sig)
	chk.Array(tst, "εp", 1e-17, s.EpsP, ref.EpsP)
	chk.Array(tst, "α", 1e-17, s.Back, ref.Back)
	chk.Float64(tst, "ε̄p", 1e-17, s.EpsPeff, ref.EpsPeff)
	chk.Float64(tst, "σy", 1e-17, s.Sy, ref.Sy)

	// unloading
	Δε := uni(-0.2e-3)
	err = mdl.Update(s, Δε)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "postplastic")
	chk.Float64(tst, "ε̄p", 1e-17, s.EpsPeff, ref.EpsPeff)

	// small reloading: still elastic
	err = mdl.Update(s, uni(0.1e-3))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "postplastic")
	chk.Float64(tst, "ε̄p", 1e-17, s.EpsPeff, ref.EpsPeff)

	// reloading beyond the stored yield stress
	err = mdl.Update(s, uni(1e-3))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "plastic")
	if s.EpsPeff <= ref.EpsPeff {
		tst.Errorf("test failed: effective plastic strain must increase after reloading\n")
		return
	}

	// elastic point stays elastic
	s = mdl.InitIntVars()
	mdl.Update(s, uni(0.5e-3))
	mdl.Update(s, uni(-0.2e-3))
	chk.String(tst, s.Mstate.String(), "elastic")

	// reset
	mdl.ResetIntVars(ref)
	chk.String(tst, ref.Mstate.String(), "elastic")
	chk.Float64(tst, "σy", 1e-17, ref.Sy, 250e6)
	chk.Float64(tst, "ε̄p", 1e-17, ref.EpsPeff, 0)
}

func Test_vm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm05")

	// strain path
	path := [][]float64{
		{0, 0, 0, 0, 0, 0},
		{2e-3, -0.6e-3, -0.6e-3, 0, 0, 0},
		{2.5e-3, -0.6e-3, -0.6e-3, 1e-3, 0, 0},
		{2.5e-3, -0.2e-3, -0.9e-3, 1.5e-3, 0.5e-3, -0.5e-3},
		{3.5e-3, -0.2e-3, -0.9e-3, 2.5e-3, 0.5e-3, -0.5e-3},
	}

	// consistent tangent versus numerical derivatives
	cases := [][]*dbf.P{
		{{N: "perfect", V: 1}},
		{{N: "H", V: 2e9}, {N: "beta", V: 1}},
		{{N: "H", V: 2e9}, {N: "beta", V: 0}},
		{{N: "H", V: 5e9}, {N: "beta", V: 0.3}},
		{{N: "law", V: 1}, {N: "K0", V: 0.002}, {N: "n", V: 5}},
		{{N: "law", V: 2}, {N: "eps0", V: 0.002}, {N: "m", V: 0.2}},
		{{N: "law", V: 2}, {N: "eps0", V: 0.002}, {N: "m", V: 0.2}, {N: "beta", V: 0.4}},
	}
	for i, extra := range cases {
		io.Pforan("case %d\n", i)
		var drv Driver
		err := drv.Init(newVM(tst, extra...))
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		drv.TstD = tst
		err = drv.Run(path)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, drv.Res[len(path)-1].Mstate.String(), "plastic")
	}
}

func Test_vm06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm06")

	// continuum tangent: gᵀ D = H/(3G+H) gᵀ C
	for _, H := range []float64{0, 2e9} {
		mdl := newVM(tst, &dbf.P{N: "H", V: H})
		s := mdl.InitIntVars()
		mdl.Update(s, []float64{2e-3, -0.6e-3, -0.6e-3, 1e-3, 0, 0})
		chk.String(tst, s.Mstate.String(), "plastic")

		D := mat.NewDense(Nvoigt, Nvoigt, nil)
		err := mdl.ContD(D, s)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if !mat.EqualApprox(D, D.T(), 1e-3) {
			tst.Errorf("test failed: continuum D must be symmetric\n")
			return
		}
		ξ := make([]float64, Nvoigt)
		for i := 0; i < Nvoigt; i++ {
			ξ[i] = s.SigTr[i] - s.Back[i]
		}
		gs := make([]float64, Nvoigt)
		YieldDeriv(gs, ξ)
		g := mat.NewVecDense(Nvoigt, gs)
		var gD, gC mat.VecDense
		gD.MulVec(D.T(), g)
		gC.MulVec(mdl.C.T(), g)
		gC.ScaleVec(H/(3.0*mdl.G+H), &gC)
		for i := 0; i < Nvoigt; i++ {
			chk.Float64(tst, io.Sf("gᵀD[%d]/E", i), 1e-12, gD.AtVec(i)/mdl.E, gC.AtVec(i)/mdl.E)
		}
	}

	// elastic state
	mdl := newVM(tst)
	s := mdl.InitIntVars()
	D := mat.NewDense(Nvoigt, Nvoigt, nil)
	mdl.ContD(D, s)
	if !mat.Equal(D, mdl.C) {
		tst.Errorf("test failed: D must equal C in the elastic range\n")
	}
	mdl.CalcD(D, s)
	if !mat.Equal(D, mdl.C) {
		tst.Errorf("test failed: D must equal C in the elastic range\n")
	}
}

func Test_vm07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm07")

	// Newton's method cannot run: state must not change
	mdl := newVM(tst, &dbf.P{N: "law", V: 2}, &dbf.P{N: "eps0", V: 0.002}, &dbf.P{N: "m", V: 0.2}, &dbf.P{N: "nmaxit", V: 0})
	s := mdl.InitIntVars()
	ref := s.GetCopy()
	err := mdl.Update(s, uni(3e-3))
	if err == nil {
		tst.Errorf("test failed: update should have failed\n")
		return
	}
	io.Pforan("ok: %v\n", err)
	chk.String(tst, s.Mstate.String(), "elastic")
	chk.Array(tst, "σ", 1e-17, s.Sig, ref.Sig)
	chk.Float64(tst, "ε̄p", 1e-17, s.EpsPeff, 0)

	// sub-stepping recovers
	mdl.NmaxIt = 25
	err = mdl.Update(s, uni(3e-3))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, s.Mstate.String(), "plastic")
}

func Test_vm08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm08")

	// cyclic uniaxial strain with perfect plasticity
	mdl := newVM(tst, &dbf.P{N: "perfect", V: 1})
	εy := mdl.Sy0 / (2.0 * mdl.G)
	ndiv, ncycles := 10, 2
	path, err := CyclicPath("uniaxial", 3*εy, ndiv, ncycles)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(path)", len(path), 1+ndiv*(1+2*ncycles))
	chk.Float64(tst, "ε @ peak", 1e-17, path[ndiv][0], 3*εy)
	chk.Float64(tst, "ε @ valley", 1e-17, path[2*ndiv][0], -3*εy)

	var drv Driver
	err = drv.Init(mdl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = drv.Run(path)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < len(drv.Res); i++ {
		if drv.Res[i].EpsPeff < drv.Res[i-1].EpsPeff {
			tst.Errorf("effective plastic strain must not decrease")
			return
		}
		if q := EquivStress(drv.Res[i].Sig); q > mdl.Sy0*(1+1e-6) {
			tst.Errorf("q = %v must not exceed σy = %v", q, mdl.Sy0)
			return
		}
	}
	last := drv.Res[len(drv.Res)-1]
	chk.Float64(tst, "q @ end", 1e-6*mdl.Sy0, EquivStress(last.Sig), mdl.Sy0)
	chk.String(tst, last.Mstate.String(), "plastic")
	chk.String(tst, drv.Res[ndiv+1].Mstate.String(), "postplastic")

	// shear path and errors
	path, err = CyclicPath("shear", 0.01, 1, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "γ @ end", 1e-17, path[3], []float64{0, 0, 0, 0.01, 0, 0})
	_, err = CyclicPath("biaxial", 0.01, 1, 1)
	if err == nil {
		tst.Errorf("test failed: CyclicPath should have failed\n")
	}
	_, err = CyclicPath("shear", 0.01, 0, 1)
	if err == nil {
		tst.Errorf("test failed: CyclicPath should have failed\n")
	}
}
