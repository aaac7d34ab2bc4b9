// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Matfile  string `json:"matfile"`  // materials file path; empty means use "materials" in .sim file
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/beamplast
	Encoder  string `json:"encoder"`  // encoder name; e.g. "gob" "json"
	Verbose  bool   `json:"verbose"`  // show messages during computations
	Nworkers int    `json:"nworkers"` // number of goroutines evaluating elements; 0 means NumCPU
}

// Options holds element options
type Options struct {
	Precomputed bool `json:"precomputed"` // always use closed-form elastic stiffness
	Consistent  bool `json:"consistent"`  // use consistent tangent operator; otherwise continuum tangent
	Symmetric   bool `json:"symmetric"`   // symmetrise tangent stiffness
	Timoshenko  bool `json:"timoshenko"`  // include shear deformation (interdependent interpolation)
}

// NodeData holds the initial configuration of one rigid node
type NodeData struct {
	X []float64 `json:"x"` // position {x, y, z}
	Q []float64 `json:"q"` // orientation quaternion {w, x, y, z}; empty means identity
}

// BeamData holds beam element data
type BeamData struct {
	Type  string  `json:"type"`  // element type; e.g. "beamplast"
	Mat   string  `json:"mat"`   // material name
	Ydim  float64 `json:"ydim"`  // cross-section dimension along local y
	Zdim  float64 `json:"zdim"`  // cross-section dimension along local z
	Verts []int   `json:"verts"` // indices of the two end nodes
	Inact bool    `json:"inact"` // inactive element
}

// Loading holds the prescribed kinematic path
//  Kind:
//    "bend"    -- constant curvature about the local z axis; amounts = curvatures
//    "stretch" -- uniform axial strain; amounts = strains
//    "twist"   -- uniform twist rate about the beam axis; amounts = rates
type Loading struct {
	Kind    string    `json:"kind"`    // kind of prescribed field
	Amounts []float64 `json:"amounts"` // one amount per step
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Options   Options     `json:"options"`   // element options
	Materials MatsData    `json:"materials"` // materials given directly in .sim file
	Nodes     []*NodeData `json:"nodes"`     // initial configuration
	Beams     []*BeamData `json:"beams"`     // elements
	Loading   Loading     `json:"loading"`   // prescribed path

	// derived
	MatModels *MatDb `json:"-"` // materials database
	DirOut    string `json:"-"` // directory to save results
	Key       string `json:"-"` // simulation key; e.g. mysim01.sim => mysim01
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// new sim
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// derived
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/beamplast/" + o.Key
	}
	if o.Data.Encoder != "json" {
		o.Data.Encoder = "gob"
	}
	if o.Data.Nworkers < 1 {
		o.Data.Nworkers = runtime.NumCPU()
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// materials
	if o.Data.Matfile != "" {
		dir := filepath.Dir(simfilepath)
		o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	} else {
		o.MatModels, err = NewMatDb(o.Materials)
	}
	if err != nil {
		return nil, err
	}

	// check
	err = o.check()
	return
}

// check validates nodes, beams and loading
func (o *Simulation) check() error {
	if len(o.Nodes) < 2 {
		return chk.Err("at least two nodes are required. %d is invalid", len(o.Nodes))
	}
	for i, n := range o.Nodes {
		if len(n.X) != 3 {
			return chk.Err("node %d: position must have 3 components", i)
		}
		if len(n.Q) != 0 && len(n.Q) != 4 {
			return chk.Err("node %d: orientation must be a quaternion with 4 components", i)
		}
	}
	if len(o.Beams) < 1 {
		return chk.Err("at least one beam is required")
	}
	for i, b := range o.Beams {
		if len(b.Verts) != 2 {
			return chk.Err("beam %d: two vertices are required", i)
		}
		for _, v := range b.Verts {
			if v < 0 || v >= len(o.Nodes) {
				return chk.Err("beam %d: vertex %d is out of range", i, v)
			}
		}
		if b.Verts[0] == b.Verts[1] {
			return chk.Err("beam %d: vertices must be different", i)
		}
		if o.MatModels.Get(b.Mat) == nil {
			return chk.Err("beam %d: cannot find material %q", i, b.Mat)
		}
	}
	switch o.Loading.Kind {
	case "", "bend", "stretch", "twist":
	default:
		return chk.Err("loading kind %q is not available", o.Loading.Kind)
	}
	return nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
