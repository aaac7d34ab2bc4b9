// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/beamplast/inp"
	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(sim *inp.Simulation, edat *inp.BeamData) *Info

// AllocatorType defines a function that allocates an element
//  x0 -- rest configuration of all rigid nodes
type AllocatorType func(sim *inp.Simulation, edat *inp.BeamData, id int, x0 []Rigid) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(id int, sim *inp.Simulation) (info *Info, inactive bool, err error) {
	if id < 0 || id >= len(sim.Beams) {
		err = chk.Err("cannot get data for element {id=%d}", id)
		return
	}
	edat := sim.Beams[id]
	inactive = edat.Inact
	fcn, ok := infofactory[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, id=%d}", edat.Type, id)
		return
	}
	info = fcn(sim, edat)
	if info == nil {
		err = chk.Err("info for element {type=%q, id=%d} is not available", edat.Type, id)
	}
	return
}

// New returns a new element from from factory
func New(id int, sim *inp.Simulation, x0 []Rigid) (ele Element, err error) {
	if id < 0 || id >= len(sim.Beams) {
		err = chk.Err("cannot get data for element {id=%d}", id)
		return
	}
	edat := sim.Beams[id]
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, id=%d}", edat.Type, id)
		return
	}
	ele, err = fcn(sim, edat, id, x0)
	if err != nil {
		err = chk.Err("cannot allocate element {type=%q, id=%d}:\n%v", edat.Type, id, err)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
