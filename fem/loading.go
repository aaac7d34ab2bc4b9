// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Loading computes prescribed configurations of a straight chain of nodes
//
//  s is the arc-length coordinate of each node along the axis e0 from node 0;
//  e1 and e2 are the transverse axes of the frame of node 0.
//
//   bend:    x = x0 + sin(κs)/κ e0 + (1-cos(κs))/κ e1 - s e0,  q = rot(κs e2) ⋅ q0
//   stretch: x = x0 + ε s e0,                                   q = q0
//   twist:   x = x0,                                            q = rot(τs e0) ⋅ q0
//
type Loading struct {
	Kind string      // "bend", "stretch" or "twist"
	X0   []ele.Rigid // rest configuration
	S    []float64   // arc-length coordinate of nodes
	E0   r3.Vec      // axis
	E1   r3.Vec      // transverse axis (bending direction)
	E2   r3.Vec      // transverse axis (bending rotation axis)
}

// NewLoading returns a new loading structure
//  Note: the nodes must lie on the line through the first and last nodes
func NewLoading(kind string, x0 []ele.Rigid) (o *Loading, err error) {
	switch kind {
	case "bend", "stretch", "twist":
	default:
		return nil, chk.Err("loading kind %q is not available", kind)
	}
	n := len(x0)
	if n < 2 {
		return nil, chk.Err("loading requires at least 2 nodes")
	}
	d := r3.Sub(x0[n-1].C, x0[0].C)
	length := r3.Norm(d)
	if length < 1e-12 {
		return nil, chk.Err("loading requires first and last nodes at different positions")
	}
	o = &Loading{Kind: kind, X0: x0, S: make([]float64, n)}
	o.E0 = r3.Scale(1.0/length, d)
	q0 := ele.Normalize(x0[0].Q)
	F := quat.Mul(ele.Between(ele.Rotate(q0, r3.Vec{X: 1}), o.E0), q0)
	o.E1 = ele.Rotate(F, r3.Vec{Y: 1})
	o.E2 = ele.Rotate(F, r3.Vec{Z: 1})
	for i, x := range x0 {
		r := r3.Sub(x.C, x0[0].C)
		o.S[i] = r3.Dot(r, o.E0)
		if r3.Norm(r3.Sub(r, r3.Scale(o.S[i], o.E0))) > 1e-9*length {
			return nil, chk.Err("node %d is not on the axis of the chain", i)
		}
	}
	return
}

// Config sets x with the configuration corresponding to the given amount
func (o *Loading) Config(x []ele.Rigid, amount float64) {
	for i, x0 := range o.X0 {
		s := o.S[i]
		x[i] = x0
		switch o.Kind {
		case "bend":
			var a, b float64
			if math.Abs(amount) < 1e-14 {
				a, b = s, 0.5*amount*s*s
			} else {
				a, b = math.Sin(amount*s)/amount, (1.0-math.Cos(amount*s))/amount
			}
			x[i].C = r3.Add(x0.C, r3.Add(r3.Scale(a-s, o.E0), r3.Scale(b, o.E1)))
			x[i].Q = ele.Normalize(quat.Mul(ele.FromRotVec(r3.Scale(amount*s, o.E2)), x0.Q))
		case "stretch":
			x[i].C = r3.Add(x0.C, r3.Scale(amount*s, o.E0))
		case "twist":
			x[i].Q = ele.Normalize(quat.Mul(ele.FromRotVec(r3.Scale(amount*s, o.E0)), x0.Q))
		}
	}
}

// quatFrom returns the quaternion {w, x, y, z}
func quatFrom(v []float64) quat.Number {
	return quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]}
}
