// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/beamplast/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "vm"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Sld solid.Small `json:"-"` // pointer to actual solid model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	var dat MatDb
	err = json.Unmarshal(b, &dat)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}
	return NewMatDb(dat.Materials)
}

// NewMatDb allocates and initialises the models of a set of materials
func NewMatDb(mats MatsData) (mdb *MatDb, err error) {
	mdb = &MatDb{Materials: mats}
	names := make(map[string]bool)
	for _, m := range mats {
		if names[m.Name] {
			return nil, chk.Err("material %q is repeated", m.Name)
		}
		names[m.Name] = true
		m.Sld, err = solid.New(m.Model)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		err = m.Sld.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
