// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the state of the rigid nodes handed over by the host
type Solution struct {
	T float64 // current time (or load factor)
	X []Rigid // positions
	V []Deriv // velocities
}

// NewSolution allocates a solution with all nodes @ the rest positions
func NewSolution(x0 []Rigid) (o *Solution) {
	o = new(Solution)
	o.X = make([]Rigid, len(x0))
	o.V = make([]Deriv, len(x0))
	o.Reset(x0)
	return
}

// Reset sets positions to x0 and clears velocities
func (o *Solution) Reset(x0 []Rigid) {
	o.T = 0
	copy(o.X, x0)
	for i := range o.V {
		o.V[i] = Deriv{}
	}
}
