// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds parameters of some reference materials in SI units
type Material struct {
	Name string  // type of material; e.g. "steel"
	Desc string  // description
	E    float64 // Young's modulus [Pa]
	Nu   float64 // Poisson's coefficient
	Sy   float64 // yield stress [Pa]
	G    float64 // shear modulus [Pa]
	Rho  float64 // density [kg/m³]
}

// NewMaterial returns parameters of reference material typ
func NewMaterial(typ string) (o *Material, err error) {
	o = &Material{Name: typ}
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E, o.Nu, o.Sy, o.Rho = 200e9, 0.32, 250e6, 7850
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E, o.Nu, o.Sy, o.Rho = 73.1e9, 0.35, 414e6, 2790
	default:
		return nil, chk.Err("material type %q is unavailable", typ)
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// Prms returns the parameters of the Von Mises model with perfect plasticity
func (o Material) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "sY", V: o.Sy},
		&dbf.P{N: "perfect", V: 1},
	}
}

// Constrained returns the analytical beam response with this material
func (o Material) Constrained(sec *Section) (*Constrained, error) {
	return NewConstrained(o.E, o.Nu, o.Sy, sec)
}
