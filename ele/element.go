// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

// Putter defines sparse or dense global matrices that accept contributions
//  Note: Put must add x to the (i,j) entry; e.g. gosl la.Triplet or DenseAdder
type Putter interface {
	Put(i, j int, x float64)
}

// Element defines what all elements must implement
type Element interface {

	// information
	Id() int      // returns the element Id
	SetId(id int) // sets the element Id; e.g. when the element is moved to another edge
	Verts() []int // returns the indices of the rigid nodes of this element

	// called for each step
	CalcForce(fe []float64, sol *Solution) (err error) // computes restoring forces/torques @ nodes (global frame) and updates history

	// linearised operator
	AddToKb(Kb Putter, eqs []int, kFactor float64) // adds -kFactor⋅K to global matrix; eqs are the global equations of the element DOFs
	MulK(dfe, due []float64, kFactor float64)      // dfe -= kFactor⋅K⋅due

	// history
	Reset() // restores the rest configuration and clears internal variables

	// reading and writing of element data
	Encode(enc Encoder) (err error) // encodes internal variables
	Decode(dec Decoder) (err error) // decodes internal variables
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                            // returns the element Id
	OutIpCoords() [][]float64           // coordinates of integration points (local frame)
	OutIpKeys() []string                // integration points' keys; e.g. "q", "ep"
	OutIpVals(M *IpsMap, sol *Solution) // integration points' values corresponding to keys
}

// WithFixedK defines elements with fixed K matrices; to be recomputed if prms are changed
type WithFixedK interface {
	Recompute() (err error) // recompute constants and K
}

// WithEnergy defines elements that can compute potential energy
type WithEnergy interface {
	PotentialEnergy(sol *Solution) (energy float64, err error)
}
