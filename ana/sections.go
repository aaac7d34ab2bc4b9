// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for beams with rectangular sections
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Section computes properties of rectangular cross-sections
//
//         z ^
//           |
//     +-----|-----+  ---
//     |     |     |   |
//     |     o-----|---+--> y    ydim along y
//     |           |   |         zdim along z
//     +-----------+  ---
//     |<-- ydim ->|
//
type Section struct {

	// input
	Ydim float64 // dimension along local y
	Zdim float64 // dimension along local z

	// derived
	A   float64 // cross-sectional area
	Iy  float64 // second moment of area about local y
	Iz  float64 // second moment of area about local z
	J   float64 // polar moment of area (Iy + Iz)
	Jtt float64 // Saint-Venant torsional constant (approximate if not square)
}

// NewSection returns a new rectangular section
func NewSection(ydim, zdim float64) (o *Section, err error) {
	if ydim <= 0 || zdim <= 0 {
		return nil, chk.Err("section dimensions must be positive. ydim = %g and zdim = %g are incorrect", ydim, zdim)
	}
	o = &Section{Ydim: ydim, Zdim: zdim}
	o.A = ydim * zdim
	o.Iz = zdim * ydim * ydim * ydim / 12.0
	o.Iy = ydim * zdim * zdim * zdim / 12.0
	o.J = o.Iy + o.Iz
	b, h := ydim, zdim
	b3 := b * b * b
	if b == h {
		o.Jtt = 9.0 * b3 * b / 64.0
		return
	}
	if b > h {
		b, h = h, b
		b3 = b * b * b
	}
	h3 := h * h * h
	o.Jtt = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3)))
	return
}

// String returns a summary of section properties
func (o Section) String() string {
	return io.Sf("ydim=%g zdim=%g A=%g Iy=%g Iz=%g J=%g Jtt=%g", o.Ydim, o.Zdim, o.A, o.Iy, o.Iz, o.J, o.Jtt)
}
