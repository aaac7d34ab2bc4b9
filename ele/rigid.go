// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rigid holds the position of a rigid node: centre and orientation (unit quaternion)
type Rigid struct {
	C r3.Vec      // centre
	Q quat.Number // orientation: rotates local vectors into the global frame
}

// Deriv holds linear and angular vectors of a rigid node; e.g. velocities or forces/torques
type Deriv struct {
	Lin r3.Vec // linear part; e.g. force
	Ang r3.Vec // angular part; e.g. torque
}

// NewRigid returns a new rigid node with unit orientation
func NewRigid(x, y, z float64) Rigid {
	return Rigid{C: r3.Vec{X: x, Y: y, Z: z}, Q: quat.Number{Real: 1}}
}

// Normalize returns the unit quaternion parallel to q
func Normalize(q quat.Number) quat.Number {
	l := quat.Abs(q)
	if l == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1.0/l, q)
}

// Rotate rotates v by the unit quaternion q
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}

// InvRotate rotates v by the inverse of the unit quaternion q
func InvRotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(quat.Conj(q)).Rotate(v)
}

// RotVec returns the rotation vector (axis × angle) of the unit quaternion q; angle ∈ [0, π]
func RotVec(q quat.Number) r3.Vec {
	q = Normalize(q)
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	v := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	s := r3.Norm(v)
	if s < 1e-15 {
		return r3.Scale(2, v)
	}
	return r3.Scale(2.0*math.Atan2(s, q.Real)/s, v)
}

// FromRotVec returns the unit quaternion corresponding to the rotation vector v
func FromRotVec(v r3.Vec) quat.Number {
	θ := r3.Norm(v)
	if θ == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Number(r3.NewRotation(θ, v))
}

// Between returns the minimal rotation mapping the direction a onto the direction b
func Between(a, b r3.Vec) quat.Number {
	a, b = r3.Unit(a), r3.Unit(b)
	d := r3.Dot(a, b)
	if d < -1.0+1e-12 {
		axis := r3.Cross(a, r3.Vec{X: 1})
		if r3.Norm(axis) < 1e-6 {
			axis = r3.Cross(a, r3.Vec{Y: 1})
		}
		return quat.Number(r3.NewRotation(math.Pi, axis))
	}
	c := r3.Cross(a, b)
	return Normalize(quat.Number{Real: 1 + d, Imag: c.X, Jmag: c.Y, Kmag: c.Z})
}
