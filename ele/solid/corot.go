// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Corot implements the corotational frame of a beam element with 2 rigid nodes
//
//  The element frame follows node a:  R = qa ⋅ relA
//  with relA = conj(qa0) ⋅ R0 and R0 mapping the local x-axis onto (xb0 - xa0)/L.
//  Local DOFs of node a are always zero; node b has
//
//   translation:  R⁻¹ (xb - xa) - (L, 0, 0)
//   rotation:     rotvec( conj(R) ⋅ qb ⋅ relB )   with relB = conj(qb0) ⋅ R0
//
type Corot struct {
	L     float64     // rest length
	Frame quat.Number // current element frame (local → global)
	relA  quat.Number // element frame relative to node a
	relB  quat.Number // node b at rest relative to element frame (conjugated)
}

// Init initialises the frame with the rest configuration of the nodes
func (o *Corot) Init(xa, xb ele.Rigid) (err error) {
	d := r3.Sub(xb.C, xa.C)
	o.L = r3.Norm(d)
	if o.L < 1e-12 {
		return chk.Err("beam length must be positive. L = %g is incorrect", o.L)
	}
	qa, qb := ele.Normalize(xa.Q), ele.Normalize(xb.Q)
	xaxis := ele.Rotate(qa, r3.Vec{X: 1})
	R0 := ele.Normalize(quat.Mul(ele.Between(xaxis, d), qa))
	o.relA = quat.Mul(quat.Conj(qa), R0)
	o.relB = quat.Mul(quat.Conj(qb), R0)
	o.Frame = R0
	return
}

// Update computes the element frame for the current position of node a
func (o *Corot) Update(xa ele.Rigid) quat.Number {
	o.Frame = ele.Normalize(quat.Mul(ele.Normalize(xa.Q), o.relA))
	return o.Frame
}

// LocalDisp computes the local displacements U [12] of the element for positions xa and xb
//  Note: the frame is updated to follow xa
func (o *Corot) LocalDisp(U []float64, xa, xb ele.Rigid) {
	R := o.Update(xa)
	d := ele.InvRotate(R, r3.Sub(xb.C, xa.C))
	θ := ele.RotVec(quat.Mul(quat.Mul(quat.Conj(R), ele.Normalize(xb.Q)), o.relB))
	for i := 0; i < 6; i++ {
		U[i] = 0
	}
	U[6], U[7], U[8] = d.X-o.L, d.Y, d.Z
	U[9], U[10], U[11] = θ.X, θ.Y, θ.Z
}

// CalcT computes the transformation matrix T [12][12] (global → local) for the current frame
//  T = diag(Rᵀ, Rᵀ, Rᵀ, Rᵀ)
func (o *Corot) CalcT(T *mat.Dense) {
	T.Zero()
	R := r3.Rotation(o.Frame).Mat()
	for b := 0; b < 4; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				T.Set(3*b+i, 3*b+j, R.At(j, i))
			}
		}
	}
}

// LocalAxes returns the unit vectors of the local axes in the global frame
func (o *Corot) LocalAxes() (e0, e1, e2 r3.Vec) {
	e0 = ele.Rotate(o.Frame, r3.Vec{X: 1})
	e1 = ele.Rotate(o.Frame, r3.Vec{Y: 1})
	e2 = ele.Rotate(o.Frame, r3.Vec{Z: 1})
	return
}
