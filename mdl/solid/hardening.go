// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// HardKind defines the kind of hardening law
type HardKind int

// hardening laws
const (
	HardConst  HardKind = iota // constant plastic modulus
	HardStress                 // modulus as function of the equivalent stress (Ramberg-Osgood)
	HardStrain                 // modulus as function of the effective plastic strain (Swift)
)

// String returns the name of the hardening law
func (o HardKind) String() string {
	switch o {
	case HardConst:
		return "const"
	case HardStress:
		return "stress"
	case HardStrain:
		return "strain"
	}
	return "unknown"
}

// Hardening computes the plastic modulus H = dσy/dε̄p
//
//  HardConst:   H = H0
//  HardStress:  ε̄p = K0 (q/σy0)ⁿ     ⇒  H = σy0 / (n K0) (q/σy0)^(1-n)
//  HardStrain:  σy = σy0 (1 + ε̄p/ε0)ᵐ  ⇒  H = m σy0/ε0 (1 + ε̄p/ε0)^(m-1)
//
type Hardening struct {
	Kind HardKind // law
	Sy0  float64  // initial yield stress
	H0   float64  // constant modulus
	K0   float64  // Ramberg-Osgood coefficient
	N    float64  // Ramberg-Osgood exponent
	Eps0 float64  // Swift reference strain
	M    float64  // Swift exponent
}

// Init initialises hardening law
func (o *Hardening) Init(sy0 float64, prms dbf.Params) (err error) {
	o.Sy0 = sy0
	for _, p := range prms {
		switch p.N {
		case "law":
			o.Kind = HardKind(int(p.V))
		case "H":
			o.H0 = p.V
		case "K0":
			o.K0 = p.V
		case "n":
			o.N = p.V
		case "eps0":
			o.Eps0 = p.V
		case "m":
			o.M = p.V
		}
	}
	switch o.Kind {
	case HardConst:
		if o.H0 < 0 {
			return chk.Err("invalid parameters: hardening modulus must be non-negative. H = %g is incorrect", o.H0)
		}
	case HardStress:
		if o.K0 <= 0 || o.N < 1 {
			return chk.Err("invalid parameters: stress-based hardening requires K0 > 0 and n ≥ 1. K0 = %g and n = %g are incorrect", o.K0, o.N)
		}
	case HardStrain:
		if o.Eps0 <= 0 || o.M <= 0 || o.M > 1 {
			return chk.Err("invalid parameters: strain-based hardening requires eps0 > 0 and 0 < m ≤ 1. eps0 = %g and m = %g are incorrect", o.Eps0, o.M)
		}
	default:
		return chk.Err("invalid parameters: hardening law %d is not available", o.Kind)
	}
	return
}

// Modulus returns the plastic modulus H for given equivalent stress q and effective plastic strain ep
func (o *Hardening) Modulus(q, ep float64) float64 {
	switch o.Kind {
	case HardStress:
		return o.Sy0 / (o.N * o.K0) * math.Pow(q/o.Sy0, 1.0-o.N)
	case HardStrain:
		return o.M * o.Sy0 / o.Eps0 * math.Pow(1.0+ep/o.Eps0, o.M-1.0)
	}
	return o.H0
}

// DModulus returns the derivatives of H with respect to q and ep
func (o *Hardening) DModulus(q, ep float64) (dHdq, dHdep float64) {
	switch o.Kind {
	case HardStress:
		dHdq = (1.0 - o.N) / (o.N * o.K0) * math.Pow(q/o.Sy0, -o.N)
	case HardStrain:
		dHdep = o.M * (o.M - 1.0) * o.Sy0 / (o.Eps0 * o.Eps0) * math.Pow(1.0+ep/o.Eps0, o.M-2.0)
	}
	return
}
