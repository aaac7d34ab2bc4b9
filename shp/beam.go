// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "gonum.org/v1/gonum/mat"

// NdofBeam is the number of local DOFs of beam elements: [ux uy uz θx θy θz] × 2 nodes
const NdofBeam = 12

// BeamShape implements the interpolation of 3D beam elements with 2 nodes
//
//  u(x,y,z) = u0(x) - y θz(x) + z θy(x)
//  v(x,y,z) = v0(x) - z θx(x)
//  w(x,y,z) = w0(x) + y θx(x)
//
//  u0, θx: linear
//  v0, θz: cubic Hermite (Euler-Bernoulli: θz = v0') or interdependent interpolation (Timoshenko)
//  w0, θy: idem, with θy = -w0' when φ = 0
//
//  strains (engineering): εxx = u', γxy = v0' - θz - z θx', γzx = w0' + θy + y θx'
//
type BeamShape struct {
	L    float64 // length
	PhiY float64 // shear factor φ for deflections along y (bending about z)
	PhiZ float64 // shear factor φ for deflections along z (bending about y)
}

// bending DOFs: deflection and rotation @ node 0, then @ node 1
var (
	bendY    = [4]int{1, 5, 7, 11}      // v, θz
	bendZ    = [4]int{2, 4, 8, 10}      // w, θy
	bendZsgn = [4]float64{1, -1, 1, -1} // θy enters with opposite sign
)

// NewBeamShape returns a new beam shape; φ = 0 gives Euler-Bernoulli interpolation
func NewBeamShape(L, phiY, phiZ float64) *BeamShape {
	return &BeamShape{L: L, PhiY: phiY, PhiZ: phiZ}
}

// bend computes the coefficients of deflection (f), its derivative (fd), rotation (r)
// and its derivative (rd) with respect to {d0, θ0, d1, θ1}
func (o *BeamShape) bend(ξ, φ float64) (f, fd, r, rd [4]float64) {
	L := o.L
	μ := 1.0 / (1.0 + φ)
	ξ2, ξ3 := ξ*ξ, ξ*ξ*ξ

	f[0] = μ * (1.0 - 3.0*ξ2 + 2.0*ξ3 + φ*(1.0-ξ))
	f[1] = μ * L * (ξ - 2.0*ξ2 + ξ3 + φ*(ξ-ξ2)/2.0)
	f[2] = μ * (3.0*ξ2 - 2.0*ξ3 + φ*ξ)
	f[3] = μ * L * (-ξ2 + ξ3 - φ*(ξ-ξ2)/2.0)

	fd[0] = μ * (-6.0*ξ + 6.0*ξ2 - φ) / L
	fd[1] = μ * (1.0 - 4.0*ξ + 3.0*ξ2 + φ*(1.0-2.0*ξ)/2.0)
	fd[2] = μ * (6.0*ξ - 6.0*ξ2 + φ) / L
	fd[3] = μ * (-2.0*ξ + 3.0*ξ2 - φ*(1.0-2.0*ξ)/2.0)

	r[0] = μ * 6.0 * (ξ2 - ξ) / L
	r[1] = μ * (1.0 - 4.0*ξ + 3.0*ξ2 + φ*(1.0-ξ))
	r[2] = μ * 6.0 * (ξ - ξ2) / L
	r[3] = μ * (-2.0*ξ + 3.0*ξ2 + φ*ξ)

	rd[0] = μ * 6.0 * (2.0*ξ - 1.0) / (L * L)
	rd[1] = μ * (-4.0 + 6.0*ξ - φ) / L
	rd[2] = μ * 6.0 * (1.0 - 2.0*ξ) / (L * L)
	rd[3] = μ * (-2.0 + 6.0*ξ + φ) / L
	return
}

// CalcN computes the displacement interpolation matrix N [3][12] at point ip
//  {ux, uy, uz}(x,y,z) = N ⋅ U
func (o *BeamShape) CalcN(N *mat.Dense, ip Ipoint) {
	N.Zero()
	x, y, z := ip[0], ip[1], ip[2]
	ξ := x / o.L
	fy, _, ry, _ := o.bend(ξ, o.PhiY)
	fz, _, rz, _ := o.bend(ξ, o.PhiZ)

	// axial and torsion
	N.Set(0, 0, 1.0-ξ)
	N.Set(0, 6, ξ)
	N.Set(1, 3, -z*(1.0-ξ))
	N.Set(1, 9, -z*ξ)
	N.Set(2, 3, y*(1.0-ξ))
	N.Set(2, 9, y*ξ)

	// bending
	for k := 0; k < 4; k++ {
		i, s := bendY[k], 1.0
		N.Set(0, i, N.At(0, i)-y*s*ry[k])
		N.Set(1, i, N.At(1, i)+s*fy[k])
		i, s = bendZ[k], bendZsgn[k]
		N.Set(0, i, N.At(0, i)-z*s*rz[k])
		N.Set(2, i, N.At(2, i)+s*fz[k])
	}
}

// CalcB computes the strain-displacement matrix B [6][12] at point ip
//  ε = B ⋅ U   (Voigt, engineering shear: [εxx εyy εzz γxy γyz γzx])
func (o *BeamShape) CalcB(B *mat.Dense, ip Ipoint) {
	B.Zero()
	x, y, z := ip[0], ip[1], ip[2]
	ξ := x / o.L
	_, fdy, ry, rdy := o.bend(ξ, o.PhiY)
	_, fdz, rz, rdz := o.bend(ξ, o.PhiZ)

	// axial and torsion
	B.Set(0, 0, -1.0/o.L)
	B.Set(0, 6, 1.0/o.L)
	B.Set(3, 3, z/o.L)
	B.Set(3, 9, -z/o.L)
	B.Set(5, 3, -y/o.L)
	B.Set(5, 9, y/o.L)

	// bending and shear
	for k := 0; k < 4; k++ {
		i := bendY[k]
		B.Set(0, i, B.At(0, i)-y*rdy[k])
		B.Set(3, i, B.At(3, i)+fdy[k]-ry[k])
		i, s := bendZ[k], bendZsgn[k]
		B.Set(0, i, B.At(0, i)-z*s*rdz[k])
		B.Set(5, i, B.At(5, i)+s*(fdz[k]-rz[k]))
	}
}
