// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds information about the degrees of freedom of an element
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "uz", "rx", "ry", "rz"], [...]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rz" => "mz"
	Nip  int               // number of integration points
}

// RigidDofs holds the keys of the 6 DOFs of rigid nodes
var RigidDofs = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// RigidY2F maps the DOFs of rigid nodes to forces/torques
var RigidY2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"}
