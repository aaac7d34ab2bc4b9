// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/beamplast/inp"
	"github.com/cpmech/gosl/chk"
)

// OnEdgeCreated allocates a new beam element between nodes a and b
//  Note: the new element copies the section, material and type of a template element
//        (the element that used to be at idx or the last one); idx must be equal to the
//        number of edges or refer to an existing edge that is replaced
func (o *ForceField) OnEdgeCreated(idx, a, b int) (err error) {
	if idx < 0 || idx > len(o.Edata) {
		return chk.Err("cannot create edge %d: index must be in [0, %d]", idx, len(o.Edata))
	}
	if a < 0 || a >= len(o.X0) || b < 0 || b >= len(o.X0) {
		return chk.Err("cannot create edge %d: nodes (%d, %d) must be in [0, %d)", idx, a, b, len(o.X0))
	}
	var tpl *inp.BeamData
	if idx < len(o.Edata) {
		tpl = o.Edata[idx]
	} else if len(o.Edata) > 0 {
		tpl = o.Edata[len(o.Edata)-1]
	} else if len(o.Sim.Beams) > 0 {
		tpl = o.Sim.Beams[0]
	}
	if tpl == nil {
		return chk.Err("cannot create edge %d: there is no element to copy data from", idx)
	}
	edat := *tpl
	edat.Verts = []int{a, b}
	edat.Inact = false
	if idx == len(o.Edata) {
		o.Edata = append(o.Edata, &edat)
		o.Elems = append(o.Elems, nil)
		o.fe = append(o.fe, nil)
	} else {
		o.Edata[idx] = &edat
	}
	o.allocate(idx)
	o.setSubsets()
	return o.Invalid[idx]
}

// OnEdgeRemoved removes the element of edge idx; the last edge is moved to idx
func (o *ForceField) OnEdgeRemoved(idx int) (err error) {
	n := len(o.Edata)
	if idx < 0 || idx >= n {
		return chk.Err("cannot remove edge %d: index must be in [0, %d)", idx, n)
	}
	last := n - 1
	o.Edata[idx], o.Elems[idx], o.fe[idx] = o.Edata[last], o.Elems[last], o.fe[last]
	delete(o.Invalid, idx)
	if e, ok := o.Invalid[last]; ok && idx != last {
		o.Invalid[idx] = e
	}
	delete(o.Invalid, last)
	delete(o.Failed, idx)
	if e, ok := o.Failed[last]; ok && idx != last {
		o.Failed[idx] = e
	}
	delete(o.Failed, last)
	if o.Elems[idx] != nil {
		o.Elems[idx].SetId(idx)
	}
	o.Edata, o.Elems, o.fe = o.Edata[:last], o.Elems[:last], o.fe[:last]
	o.setSubsets()
	return
}

// ActiveElems returns the number of active (valid) elements
func (o *ForceField) ActiveElems() (n int) {
	for _, e := range o.Elems {
		if e != nil {
			n++
		}
	}
	return
}

// Element returns the element of edge idx or nil
func (o *ForceField) Element(idx int) ele.Element {
	if idx < 0 || idx >= len(o.Elems) {
		return nil
	}
	return o.Elems[idx]
}
