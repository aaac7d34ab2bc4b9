// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Driver runs strain paths with a single material point
type Driver struct {

	// input
	Mdl Small // solid model

	// settings
	TolD float64 // tolerance to check D, relative to E
	HD   float64 // strain perturbation to compute D numerically
	VerD bool    // verbose check of D

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix

	// results
	Res []*State    // results
	Eps [][]float64 // total strains (engineering)
}

// Init initialises driver
func (o *Driver) Init(mdl Small) (err error) {
	if mdl == nil {
		return chk.Err("driver needs a model")
	}
	o.Mdl = mdl
	o.TolD = 1e-5
	o.HD = 1e-9
	o.VerD = chk.Verbose
	return
}

// Run runs simulation along a path of total strains; the first entry is the initial strain
func (o *Driver) Run(path [][]float64) (err error) {

	// allocate results arrays
	np := len(path)
	if np < 1 {
		return chk.Err("strain path must have at least one entry")
	}
	o.Res = make([]*State, np)
	o.Eps = make([][]float64, np)
	o.Res[0] = o.Mdl.InitIntVars()
	o.Eps[0] = make([]float64, Nvoigt)
	copy(o.Eps[0], path[0])

	// update states
	Δε := make([]float64, Nvoigt)
	D := mat.NewDense(Nvoigt, Nvoigt, nil)
	for i := 1; i < np; i++ {

		// increment
		for j := 0; j < Nvoigt; j++ {
			Δε[j] = path[i][j] - path[i-1][j]
		}
		o.Eps[i] = make([]float64, Nvoigt)
		copy(o.Eps[i], path[i])

		// update
		o.Res[i] = o.Res[i-1].GetCopy()
		err = o.Mdl.Update(o.Res[i], Δε)
		if err != nil {
			return chk.Err("driver: increment %d failed: %v", i, err)
		}

		// check consistent moduli
		if o.TstD != nil {
			err = o.Mdl.CalcD(D, o.Res[i])
			if err != nil {
				return
			}
			err = o.checkD(D, o.Res[i-1], Δε, i)
			if err != nil {
				return
			}
		}
	}
	return
}

// checkD compares D with central differences of the stress update
func (o *Driver) checkD(D *mat.Dense, prev *State, Δε []float64, inc int) (err error) {
	E, _ := o.Mdl.GetElast()
	stmp := prev.GetCopy()
	δε := make([]float64, Nvoigt)
	σp := make([]float64, Nvoigt)
	for j := 0; j < Nvoigt; j++ {
		for _, sgn := range []float64{1, -1} {
			copy(δε, Δε)
			δε[j] += sgn * o.HD
			stmp.Set(prev)
			err = o.Mdl.Update(stmp, δε)
			if err != nil {
				return
			}
			if sgn > 0 {
				copy(σp, stmp.Sig)
				continue
			}
			for i := 0; i < Nvoigt; i++ {
				dnum := (σp[i] - stmp.Sig[i]) / (2.0 * o.HD)
				chk.Float64(o.TstD, io.Sf("D%d%d @ inc %d", i, j, inc), o.TolD, D.At(i, j)/E, dnum/E)
			}
		}
	}
	if o.VerD {
		io.Pforan("D checked @ inc %d\n", inc)
	}
	return
}

// CyclicPath returns a path of total strains going from zero to +max, then to -max and
// back, ncycles times; each segment is divided into ndiv increments
//  kind -- "uniaxial" (εxx only) or "shear" (γxy only)
func CyclicPath(kind string, max float64, ndiv, ncycles int) (path [][]float64, err error) {
	var comp int
	switch kind {
	case "uniaxial":
		comp = 0
	case "shear":
		comp = 3
	default:
		return nil, chk.Err("strain path kind %q is not available; options are \"uniaxial\" and \"shear\"", kind)
	}
	if ndiv < 1 || ncycles < 1 {
		return nil, chk.Err("number of divisions and cycles must be positive. ndiv = %d and ncycles = %d are incorrect", ndiv, ncycles)
	}
	targets := []float64{max}
	for i := 0; i < ncycles; i++ {
		targets = append(targets, -max, max)
	}
	path = [][]float64{make([]float64, Nvoigt)}
	prev := 0.0
	for _, t := range targets {
		for k := 1; k <= ndiv; k++ {
			ε := make([]float64, Nvoigt)
			ε[comp] = prev + (t-prev)*float64(k)/float64(ndiv)
			path = append(path, ε)
		}
		prev = t
	}
	return
}
