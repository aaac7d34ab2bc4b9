// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_gauss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss01")

	L, ydim, zdim := 2.0, 0.3, 0.1
	ips, err := BeamIps(L, ydim, zdim, NipDir)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nip", len(ips), NipBeam)

	// volume and second moments
	var vol, Ix, Iy, Iz float64
	for _, ip := range ips {
		vol += ip[3]
		Ix += ip[3] * ip[0] * ip[0]
		Iy += ip[3] * ip[2] * ip[2]
		Iz += ip[3] * ip[1] * ip[1]
	}
	chk.Float64(tst, "vol", 1e-15, vol, L*ydim*zdim)
	chk.Float64(tst, "∫x²", 1e-14, Ix, ydim*zdim*L*L*L/3.0)
	chk.Float64(tst, "L Iy", 1e-16, Iy, L*ydim*zdim*zdim*zdim/12.0)
	chk.Float64(tst, "L Iz", 1e-16, Iz, L*zdim*ydim*ydim*ydim/12.0)

	// ordering: x slowest, z fastest
	xg := 0.5 * L * (1.0 - math.Sqrt(0.6))
	chk.Float64(tst, "x0", 1e-15, ips[0][0], xg)
	chk.Float64(tst, "x8", 1e-15, ips[8][0], xg)
	chk.Float64(tst, "x9", 1e-15, ips[9][0], L/2.0)
	chk.Float64(tst, "z0", 1e-15, ips[0][2], -0.5*zdim*math.Sqrt(0.6))
	chk.Float64(tst, "z1", 1e-15, ips[1][2], 0)
	chk.Float64(tst, "y0", 1e-15, ips[0][1], -0.5*ydim*math.Sqrt(0.6))
	chk.Float64(tst, "y3", 1e-15, ips[3][1], 0)

	// errors
	_, err = BeamIps(0, ydim, zdim, NipDir)
	if err == nil {
		tst.Errorf("test failed: zero length should have caused an error\n")
	}
	_, err = BeamIps(L, ydim, zdim, 0)
	if err == nil {
		tst.Errorf("test failed: zero number of points should have caused an error\n")
	}
}

func Test_gauss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gauss02. locations are sorted")

	for n := 1; n <= 5; n++ {
		x, w := legendre(n, -1, 3)
		io.Pforan("n = %d: x = %v\n", n, x)
		var sum float64
		for i := 0; i < n; i++ {
			if i > 0 && x[i] <= x[i-1] {
				tst.Errorf("locations must be increasing. n=%d: x[%d]=%g <= x[%d]=%g", n, i, x[i], i-1, x[i-1])
			}
			chk.Float64(tst, io.Sf("w%d == w%d", i, n-1-i), 1e-14, w[i], w[n-1-i])
			chk.Float64(tst, io.Sf("x%d + x%d", i, n-1-i), 1e-14, x[i]+x[n-1-i], 2)
			sum += w[i]
		}
		chk.Float64(tst, "Σw", 1e-14, sum, 4)
	}

	// grid: corners with smallest and largest coordinates
	ips, _ := BeamIps(1, 1, 1, NipDir)
	g := 0.5 * math.Sqrt(0.6)
	chk.Array(tst, "first", 1e-15, ips[0][:3], []float64{0.5 - g, -g, -g})
	chk.Array(tst, "last ", 1e-15, ips[NipBeam-1][:3], []float64{0.5 + g, g, g})
}

func Test_beamshp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beamshp01")

	for _, φ := range []float64{0, 0.3} {
		io.Pforan("φ = %v\n", φ)
		shape := NewBeamShape(2.0, φ, 2*φ)
		CheckShape(tst, shape, 1e-14, chk.Verbose)

		// B versus numerical derivatives of N
		rnd := rand.New(rand.NewSource(int64(10 * φ)))
		U := make([]float64, NdofBeam)
		for i := range U {
			U[i] = 0.01 * (2.0*rnd.Float64() - 1.0)
		}
		ips, _ := BeamIps(shape.L, 0.3, 0.1, NipDir)
		for _, ip := range ips {
			CheckB(tst, shape, U, ip, 1e-8, chk.Verbose)
		}
	}
}

func Test_beamshp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beamshp02")

	// rigid body motions (small rotations) give no strains
	L := 3.0
	θ := 1e-3
	modes := [][]float64{
		{1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, θ, 0, 0, 0, 0, 0, θ, 0, 0},
		{0, 0, 0, 0, θ, 0, 0, 0, -θ * L, 0, θ, 0},
		{0, 0, 0, 0, 0, θ, 0, θ * L, 0, 0, 0, θ},
	}
	B := mat.NewDense(6, NdofBeam, nil)
	for _, φ := range []float64{0, 0.5} {
		shape := NewBeamShape(L, φ, φ)
		ips, _ := BeamIps(L, 0.2, 0.2, NipDir)
		for m, U := range modes {
			for _, ip := range ips {
				shape.CalcB(B, ip)
				var ε mat.VecDense
				ε.MulVec(B, mat.NewVecDense(NdofBeam, U))
				chk.Array(tst, io.Sf("ε (mode %d)", m), 1e-15, ε.RawVector().Data, []float64{0, 0, 0, 0, 0, 0})
			}
		}
	}

	// constant curvature
	κ := 0.01
	shape := NewBeamShape(L, 0, 0)
	U := []float64{0, 0, 0, 0, 0, 0, 0, κ * L * L / 2.0, 0, 0, 0, κ * L}
	ips, _ := BeamIps(L, 0.2, 0.1, NipDir)
	for _, ip := range ips {
		shape.CalcB(B, ip)
		var ε mat.VecDense
		ε.MulVec(B, mat.NewVecDense(NdofBeam, U))
		chk.Float64(tst, "εxx", 1e-15, ε.AtVec(0), -κ*ip[1])
	}
}
