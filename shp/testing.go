// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// CheckShape checks that the interpolation reproduces nodal translations and
// torsion rotations @ the nodes (on the beam axis)
func CheckShape(tst *testing.T, shape *BeamShape, tol float64, verbose bool) {

	// loop over nodes
	errS := 0.0
	N := mat.NewDense(3, NdofBeam, nil)
	for n, x := range []float64{0, shape.L} {
		shape.CalcN(N, Ipoint{x, 0, 0, 0})
		if verbose {
			io.Pf("N @ node %d =\n%v\n", n, mat.Formatted(N))
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < NdofBeam; j++ {
				if j == n*6+i {
					errS += math.Abs(N.At(i, j) - 1.0)
				} else {
					errS += math.Abs(N.At(i, j))
				}
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("beam shape failed with err = %g\n", errS)
		return
	}
}

// CheckB checks B against numerical derivatives of the displacement field N⋅U @ ip
func CheckB(tst *testing.T, shape *BeamShape, U []float64, ip Ipoint, tol float64, verbose bool) {

	// analytical
	B := mat.NewDense(6, NdofBeam, nil)
	shape.CalcB(B, ip)
	var ε mat.VecDense
	ε.MulVec(B, mat.NewVecDense(NdofBeam, U))

	// numerical: dudx[i][j] = ∂ui/∂xj
	h := 1e-6
	N := mat.NewDense(3, NdofBeam, nil)
	u := func(x []float64) (res []float64) {
		shape.CalcN(N, Ipoint{x[0], x[1], x[2], 0})
		var v mat.VecDense
		v.MulVec(N, mat.NewVecDense(NdofBeam, U))
		return []float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
	}
	var dudx [3][3]float64
	x := []float64{ip[0], ip[1], ip[2]}
	for j := 0; j < 3; j++ {
		xx := []float64{x[0], x[1], x[2]}
		xx[j] += h
		up := u(xx)
		xx[j] -= 2.0 * h
		um := u(xx)
		for i := 0; i < 3; i++ {
			dudx[i][j] = (up[i] - um[i]) / (2.0 * h)
		}
	}
	εnum := []float64{
		dudx[0][0],
		dudx[1][1],
		dudx[2][2],
		dudx[0][1] + dudx[1][0],
		dudx[1][2] + dudx[2][1],
		dudx[2][0] + dudx[0][2],
	}
	if verbose {
		io.Pf("ε    = %v\n", ε.RawVector().Data)
		io.Pf("εnum = %v\n", εnum)
	}
	chk.Array(tst, io.Sf("ε @ %v", ip[:3]), tol, ε.RawVector().Data, εnum)
}
