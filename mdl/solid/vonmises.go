// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EquivStress returns the Von Mises equivalent stress q(σ)
//
//  q = sqrt( ½[(σxx-σyy)² + (σyy-σzz)² + (σzz-σxx)²] + 3(σxy² + σyz² + σzx²) )
//
func EquivStress(σ []float64) float64 {
	a, b, c := σ[0]-σ[1], σ[1]-σ[2], σ[2]-σ[0]
	return math.Sqrt(0.5*(a*a+b*b+c*c) + 3.0*(σ[3]*σ[3]+σ[4]*σ[4]+σ[5]*σ[5]))
}

// EquivStressDev returns the Von Mises equivalent stress computed with the deviator
//
//  q = sqrt(3/2) |dev(σ)|
//
func EquivStressDev(σ []float64) float64 {
	s := make([]float64, Nvoigt)
	VoigtDev(s, σ)
	return math.Sqrt(1.5) * VoigtNorm(s)
}

// YieldFunc computes the yield function f = q(σ) - σy
func YieldFunc(σ []float64, σy float64) float64 {
	return EquivStress(σ) - σy
}

// YieldGrad computes the unit flow direction n = dev(σ)/|dev(σ)|
//
//  ∂q/∂σ = sqrt(3/2) n  (tensor form)
//
//  Output:
//   n -- stress-like Voigt vector; zero if the deviator vanishes
//   snorm -- |dev(σ)|
func YieldGrad(n, σ []float64) (snorm float64) {
	VoigtDev(n, σ)
	snorm = VoigtNorm(n)
	if snorm > 0 {
		for i := 0; i < Nvoigt; i++ {
			n[i] /= snorm
		}
	}
	return
}

// YieldDeriv computes g = ∂q/∂σ with respect to the six independent Voigt variables
//
//  g = (3/(2q)) P σ   with P = [ δij - 1/3 ; 2 I ]
//
//  Note: g is strain-like (shear entries doubled); the plastic strain increment is Δλ g
func YieldDeriv(g, σ []float64) (q float64) {
	q = EquivStress(σ)
	if q > 0 {
		flowP(g, σ, q)
		return
	}
	for i := 0; i < Nvoigt; i++ {
		g[i] = 0
	}
	return
}

// YieldHessian computes H = ∂²q/∂σ∂σ (Voigt, 6x6) with q replaced by σy
//
//  H = (3/(2σy)) P - g gᵀ / σy
//
func YieldHessian(H *mat.Dense, σ []float64, σy float64) {
	g := make([]float64, Nvoigt)
	flowP(g, σ, σy)
	c := 1.5 / σy
	for a := 0; a < Nvoigt; a++ {
		for b := 0; b < Nvoigt; b++ {
			H.Set(a, b, c*projP(a, b)-g[a]*g[b]/σy)
		}
	}
}

// flowP computes g = (3/(2q)) P σ
func flowP(g, σ []float64, q float64) {
	p := VoigtTrace(σ) / 3.0
	c := 1.5 / q
	for i := 0; i < 3; i++ {
		g[i] = c * (σ[i] - p)
		g[3+i] = c * 2.0 * σ[3+i]
	}
}

// projP returns the components of the Voigt deviatoric projector P
func projP(a, b int) float64 {
	if a < 3 && b < 3 {
		if a == b {
			return 2.0 / 3.0
		}
		return -1.0 / 3.0
	}
	if a == b {
		return 2.0
	}
	return 0
}
