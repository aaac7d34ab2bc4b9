// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	goio "io"
	"runtime"

	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/beamplast/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	// register elements
	_ "github.com/cpmech/beamplast/ele/solid"
)

// NdofNode is the number of DOFs of rigid nodes
const NdofNode = 6

// ForceField holds all beam elements connecting rigid nodes and computes their
// restoring forces and stiffness for the host simulation
type ForceField struct {

	// input
	Sim      *inp.Simulation // simulation data
	X0       []ele.Rigid     // rest configuration of all nodes
	Nworkers int             // max number of goroutines evaluating elements
	Verbose  bool            // show messages

	// elements
	Elems   []ele.Element   // [nedges] elements; nil if inactive or invalid
	Edata   []*inp.BeamData // [nedges] data used to allocate elements
	Invalid map[int]error   // edge index => error of elements that could not be allocated
	Failed  map[int]error   // edge index => error of elements that failed in the last call to AddForce

	// subsets of elements
	ElemFixedK []ele.WithFixedK // elements with fixed K matrices

	// scratchpad
	fe [][]float64 // [nedges][12] element forces
}

// NewForceField allocates all elements defined in sim
//  Note: elements that cannot be allocated are recorded in Invalid and skipped
func NewForceField(sim *inp.Simulation, verbose bool) (o *ForceField, err error) {
	o = new(ForceField)
	o.Sim = sim
	o.Nworkers = sim.Data.Nworkers
	o.Verbose = verbose
	o.X0 = make([]ele.Rigid, len(sim.Nodes))
	for i, n := range sim.Nodes {
		o.X0[i] = ele.NewRigid(n.X[0], n.X[1], n.X[2])
		if len(n.Q) == 4 {
			o.X0[i].Q = ele.Normalize(quatFrom(n.Q))
		}
	}
	o.Invalid = make(map[int]error)
	o.Failed = make(map[int]error)
	for i, edat := range sim.Beams {
		o.Edata = append(o.Edata, edat)
		o.Elems = append(o.Elems, nil)
		o.fe = append(o.fe, nil)
		o.allocate(i)
	}
	o.setSubsets()
	if len(o.Invalid) == len(o.Elems) {
		return nil, chk.Err("all %d elements are invalid. first error:\n%v", len(o.Elems), o.Invalid[0])
	}
	return
}

// Nnodes returns the number of rigid nodes
func (o *ForceField) Nnodes() int { return len(o.X0) }

// Ndof returns the total number of DOFs
func (o *ForceField) Ndof() int { return NdofNode * len(o.X0) }

// AddForce adds the restoring forces/torques of all elements to f for positions x
//  Note: elements are evaluated concurrently. The forces of elements that fail are not
//        added; their errors are recorded in Failed and returned together
func (o *ForceField) AddForce(f []ele.Deriv, x []ele.Rigid, v []ele.Deriv) (err error) {
	if len(f) != len(o.X0) || len(x) != len(o.X0) {
		return chk.Err("number of nodes is incorrect. len(f)=%d and len(x)=%d must be equal to %d", len(f), len(x), len(o.X0))
	}
	nworkers := o.Nworkers
	if nworkers < 1 {
		nworkers = runtime.NumCPU()
	}
	sol := &ele.Solution{X: x, V: v}
	errs := make([]error, len(o.Elems))
	var g errgroup.Group
	g.SetLimit(nworkers)
	for i, e := range o.Elems {
		if e == nil {
			continue
		}
		i, e := i, e
		g.Go(func() error {
			errs[i] = e.CalcForce(o.fe[i], sol)
			return nil
		})
	}
	g.Wait()

	// scatter in element order
	o.Failed = make(map[int]error)
	var msg string
	for i, e := range o.Elems {
		if e == nil {
			continue
		}
		if errs[i] != nil {
			o.Failed[i] = errs[i]
			msg += io.Sf("edge %d: %v\n", i, errs[i])
			if o.Verbose {
				io.Pfred("element %d failed and its forces were not added:\n%v\n", i, errs[i])
			}
			continue
		}
		for m, n := range e.Verts() {
			fe := o.fe[i][NdofNode*m:]
			f[n].Lin.X += fe[0]
			f[n].Lin.Y += fe[1]
			f[n].Lin.Z += fe[2]
			f[n].Ang.X += fe[3]
			f[n].Ang.Y += fe[4]
			f[n].Ang.Z += fe[5]
		}
	}
	if len(o.Failed) > 0 {
		return chk.Err("%d of %d elements failed and their forces were not added:\n%s", len(o.Failed), o.ActiveElems(), msg)
	}
	return
}

// AddDForce adds -kFactor⋅K⋅dx to df
func (o *ForceField) AddDForce(df []ele.Deriv, dx []ele.Deriv, kFactor float64) {
	due := make([]float64, 2*NdofNode)
	dfe := make([]float64, 2*NdofNode)
	for _, e := range o.Elems {
		if e == nil {
			continue
		}
		verts := e.Verts()
		for m, n := range verts {
			d := dx[n]
			copy(due[NdofNode*m:], []float64{d.Lin.X, d.Lin.Y, d.Lin.Z, d.Ang.X, d.Ang.Y, d.Ang.Z})
		}
		for i := range dfe {
			dfe[i] = 0
		}
		e.MulK(dfe, due, kFactor)
		for m, n := range verts {
			fe := dfe[NdofNode*m:]
			df[n].Lin.X += fe[0]
			df[n].Lin.Y += fe[1]
			df[n].Lin.Z += fe[2]
			df[n].Ang.X += fe[3]
			df[n].Ang.Y += fe[4]
			df[n].Ang.Z += fe[5]
		}
	}
}

// AddKToMatrix adds -kFactor⋅K to the global matrix with rows/columns shifted by offset
func (o *ForceField) AddKToMatrix(K ele.Putter, offset int, kFactor float64) {
	for _, e := range o.Elems {
		if e == nil {
			continue
		}
		e.AddToKb(K, o.eqs(e, offset), kFactor)
	}
}

// PotentialEnergy returns the sum of potential energies of all elements
//  Note: an error is returned if any active element cannot compute its energy
func (o *ForceField) PotentialEnergy(x []ele.Rigid) (energy float64, err error) {
	sol := &ele.Solution{X: x}
	for i, e := range o.Elems {
		if e == nil {
			continue
		}
		ee, ok := e.(ele.WithEnergy)
		if !ok {
			return 0, chk.Err("element %d cannot compute potential energy", i)
		}
		en, err := ee.PotentialEnergy(sol)
		if err != nil {
			return 0, chk.Err("element %d: %v", i, err)
		}
		energy += en
	}
	return
}

// Reset restores the rest configuration of all elements and clears their history
func (o *ForceField) Reset() {
	for _, e := range o.Elems {
		if e != nil {
			e.Reset()
		}
	}
}

// RecomputeK recomputes constants and stiffness matrices of elements with fixed K
//  Note: the history is cleared
func (o *ForceField) RecomputeK() (err error) {
	for _, e := range o.ElemFixedK {
		err = e.Recompute()
		if err != nil {
			return
		}
	}
	return
}

// IpsValues returns the values @ integration points of all elements; nil for inactive ones
func (o *ForceField) IpsValues() (res []*ele.IpsMap) {
	res = make([]*ele.IpsMap, len(o.Elems))
	for i, e := range o.Elems {
		if ee, ok := e.(ele.CanOutputIps); ok {
			res[i] = ele.NewIpsMap()
			ee.OutIpVals(res[i], nil)
		}
	}
	return
}

// Encode encodes the internal variables of all active elements
func (o *ForceField) Encode(w goio.Writer) (err error) {
	enc := ele.GetEncoder(w, o.Sim.Data.Encoder)
	for i, e := range o.Elems {
		if e == nil {
			continue
		}
		err = e.Encode(enc)
		if err != nil {
			return chk.Err("cannot encode element %d:\n%v", i, err)
		}
	}
	return
}

// Decode decodes the internal variables of all active elements
func (o *ForceField) Decode(r goio.Reader) (err error) {
	dec := ele.GetDecoder(r, o.Sim.Data.Encoder)
	for i, e := range o.Elems {
		if e == nil {
			continue
		}
		err = e.Decode(dec)
		if err != nil {
			return chk.Err("cannot decode element %d:\n%v", i, err)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// allocate allocates element i from Edata[i]
func (o *ForceField) allocate(i int) {
	delete(o.Invalid, i)
	delete(o.Failed, i)
	o.Elems[i] = nil
	edat := o.Edata[i]
	if edat.Inact {
		return
	}
	sim := *o.Sim
	sim.Beams = o.Edata
	e, err := o.newElem(i, &sim)
	if err != nil {
		o.Invalid[i] = err
		if o.Verbose {
			io.Pfred("element %d is invalid and will be skipped:\n%v\n", i, err)
		}
		return
	}
	o.Elems[i] = e
	o.fe[i] = make([]float64, NdofNode*len(e.Verts()))
}

// newElem checks the DOFs of element i and allocates it
func (o *ForceField) newElem(i int, sim *inp.Simulation) (e ele.Element, err error) {
	info, _, err := ele.GetInfo(i, sim)
	if err != nil {
		return
	}
	for m, dofs := range info.Dofs {
		if len(dofs) != NdofNode {
			return nil, chk.Err("node %d of element %d has %d DOFs; rigid nodes have %d", m, i, len(dofs), NdofNode)
		}
	}
	e, err = ele.New(i, sim, o.X0)
	if err != nil {
		return
	}
	if len(e.Verts()) != len(info.Dofs) {
		return nil, chk.Err("element %d has %d nodes but information about %d nodes", i, len(e.Verts()), len(info.Dofs))
	}
	return
}

// setSubsets sets the subsets of elements
func (o *ForceField) setSubsets() {
	o.ElemFixedK = o.ElemFixedK[:0]
	for _, e := range o.Elems {
		if ee, ok := e.(ele.WithFixedK); ok {
			o.ElemFixedK = append(o.ElemFixedK, ee)
		}
	}
}

// eqs returns the global equation numbers of the DOFs of element e
func (o *ForceField) eqs(e ele.Element, offset int) (eqs []int) {
	for _, n := range e.Verts() {
		for k := 0; k < NdofNode; k++ {
			eqs = append(eqs, offset+NdofNode*n+k)
		}
	}
	return
}

// DenseAdder implements ele.Putter for gonum dense matrices
type DenseAdder struct {
	*mat.Dense
}

// Put adds x to the (i,j) entry
func (o DenseAdder) Put(i, j int, x float64) {
	o.Set(i, j, o.At(i, j)+x)
}
