// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elastoplastic models for solids with small strains
/*
 *   σ_(n+1) = σ_(n) + C : (Δε - Δεp)
 *
 *   Update:  return mapping for given Δε
 *   CalcD:   D = dσ_(n+1)/dε_(n+1) consistent with Update
 *   ContD:   D = dσ/dε continuum (elastic predictor)
 *
 *   Voigt notation: see voigt.go
 */
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms() dbf.Params             // gets (an example) of parameters
	InitIntVars() *State       // allocates a fresh state
	GetElast() (E, nu float64) // returns elastic constants
	ElastD(C *mat.Dense)       // computes the elastic Voigt operator C [6][6]
	ResetIntVars(s *State)     // clears the history of s
}

// Small defines rate type solid models for small strain analyses
type Small interface {
	Model
	Update(s *State, Δε []float64) error // updates stresses for given strain increment (engineering)
	CalcD(D *mat.Dense, s *State) error  // computes D = dσ_new/dε_new consistent with Update
	ContD(D *mat.Dense, s *State) error  // computes D = dσ_new/dε_new continuum
}

// New returns new solid model
func New(name string) (model Small, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Small{}
