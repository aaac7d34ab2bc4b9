// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// constants
const (
	NipDir  = 3                        // number of integration points along each direction
	NipBeam = NipDir * NipDir * NipDir // number of integration points of beam elements
)

// Ipoint holds integration point data {x, y, z, w} in local coordinates
type Ipoint []float64

// BeamIps returns the Gauss-Legendre points over the box
//
//  [0, L] × [-ydim/2, ydim/2] × [-zdim/2, zdim/2]
//
//  Note: weights include the Jacobian of the mapping; i.e. Σ w = L ydim zdim
//        points are ordered with x varying slowest and z fastest
func BeamIps(L, ydim, zdim float64, n int) (ips []Ipoint, err error) {
	if L <= 0 || ydim <= 0 || zdim <= 0 {
		return nil, chk.Err("cannot compute integration points: dimensions must be positive. L=%g, ydim=%g, zdim=%g", L, ydim, zdim)
	}
	if n < 1 {
		return nil, chk.Err("cannot compute integration points: number of points per direction must be positive. n=%d is incorrect", n)
	}
	x, wx := legendre(n, 0, L)
	y, wy := legendre(n, -ydim/2.0, ydim/2.0)
	z, wz := legendre(n, -zdim/2.0, zdim/2.0)
	ips = make([]Ipoint, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				ips = append(ips, Ipoint{x[i], y[j], z[k], wx[i] * wy[j] * wz[k]})
			}
		}
	}
	return
}

// legendre returns n Gauss-Legendre locations and weights over [min, max] sorted
// by increasing location
func legendre(n int, min, max float64) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, min, max)
	idx := make([]int, n)
	floats.Argsort(x, idx)
	ws := make([]float64, n)
	for i, k := range idx {
		ws[i] = w[k]
	}
	return x, ws
}
