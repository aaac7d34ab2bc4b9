// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Constrained computes the response of beams whose fibres deform without lateral
// contraction (εyy = εzz = 0) and whose material is isotropic elastic-perfectly plastic
// with Von Mises yield surface
//
//  uniaxial strain ε:  q = 2 G |ε|
//                      σxx = C00 ε                   (elastic)
//                      σxx = K ε + (2/3) σy sgn(ε)  (plastic)
//  simple shear γ:     q = √3 G |γ|
//
type Constrained struct {

	// input
	E   float64  // Young's modulus
	Nu  float64  // Poisson's coefficient
	Sy  float64  // yield stress
	Sec *Section // cross-section

	// derived
	K   float64 // bulk modulus
	G   float64 // shear modulus
	C00 float64 // constrained modulus K + 4G/3
}

// NewConstrained returns a new structure
func NewConstrained(E, nu, sy float64, sec *Section) (o *Constrained, err error) {
	if E <= 0 || nu <= -1 || nu >= 0.5 || sy <= 0 {
		return nil, chk.Err("invalid parameters: E = %g, nu = %g and sY = %g must satisfy E > 0, -1 < nu < 0.5 and sY > 0", E, nu, sy)
	}
	if sec == nil {
		return nil, chk.Err("section is required")
	}
	o = &Constrained{E: E, Nu: nu, Sy: sy, Sec: sec}
	o.K = E / (3.0 * (1.0 - 2.0*nu))
	o.G = E / (2.0 * (1.0 + nu))
	o.C00 = o.K + 4.0*o.G/3.0
	return
}

// YieldStrain returns the axial strain at first yield
func (o Constrained) YieldStrain() float64 {
	return o.Sy / (2.0 * o.G)
}

// YieldCurvature returns the curvature (bending about z) at first yield of outer fibres
func (o Constrained) YieldCurvature() float64 {
	return o.Sy / (o.G * o.Sec.Ydim)
}

// YieldTwist returns the twist rate at first yield of corners
func (o Constrained) YieldTwist() float64 {
	rmax := math.Sqrt(o.Sec.Ydim*o.Sec.Ydim+o.Sec.Zdim*o.Sec.Zdim) / 2.0
	return o.Sy / (math.Sqrt(3.0) * o.G * rmax)
}

// Axial returns the axial force for uniform strain ε
func (o Constrained) Axial(ε float64) float64 {
	if math.Abs(ε) <= o.YieldStrain() {
		return o.C00 * o.Sec.A * ε
	}
	return (o.K*ε + 2.0*o.Sy*sgn(ε)/3.0) * o.Sec.A
}

// Moment returns the bending moment about z for curvature κ under monotonic loading
//  Note: fibres with |y| < yc = σy/(2Gκ) are elastic
func (o Constrained) Moment(κ float64) float64 {
	h := o.Sec.Ydim / 2.0
	if κ == 0 {
		return 0
	}
	yc := o.Sy / (2.0 * o.G * math.Abs(κ))
	if yc >= h {
		return o.C00 * o.Sec.Iz * κ
	}
	b := o.Sec.Zdim
	M := b * (2.0*o.C00*math.Abs(κ)*yc*yc*yc/3.0 +
		2.0*o.K*math.Abs(κ)*(h*h*h-yc*yc*yc)/3.0 +
		2.0*o.Sy*(h*h-yc*yc)/3.0)
	return M * sgn(κ)
}

// Torque returns the twisting moment for twist rate θ (elastic; warping neglected)
func (o Constrained) Torque(θ float64) float64 {
	return o.G * o.Sec.J * θ
}

func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
