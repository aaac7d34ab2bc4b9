// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elements for solid mechanics
package solid

import (
	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/beamplast/inp"
	sld "github.com/cpmech/beamplast/mdl/solid"
	"github.com/cpmech/beamplast/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// BeamPlast represents an elastoplastic 3D beam element with rectangular cross-section
//
//                 y                    local frame: x along the beam (a → b)
//                 ^                    section: [-ydim/2, ydim/2] × [-zdim/2, zdim/2]
//                 |
//      (a)========|================(b)----> x
//                ,'
//               z          DOFs per node: [ux uy uz θx θy θz]
//
//  Forces are integrated with 3×3×3 Gauss points; each point follows the
//  radial return of the material model. The stiffness is either the closed-form
//  elastic matrix (Kprec), the integrated elastic matrix (Ke) or, while any
//  point is plastic, the integrated tangent matrix (Kt).
//
type BeamPlast struct {

	// basic data
	Ident int         // element Id
	Nodes []int       // indices of rigid nodes [2]
	X0    []ele.Rigid // rest configuration [2]
	Mdl   sld.Small   // material model
	Opt   inp.Options // options
	Verb  bool        // verbose

	// properties (derived)
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
	L    float64 // length
	Zdim float64 // section dimension along z
	Ydim float64 // section dimension along y
	Iy   float64 // second moment of area about y
	Iz   float64 // second moment of area about z
	J    float64 // polar moment of area
	A    float64 // cross-sectional area

	// integration and interpolation
	Shp *shp.BeamShape // shape structure
	Ips []shp.Ipoint   // integration points [27]

	// matrices
	C     *mat.Dense // generalised Hooke's operator [6][6]
	Ke    *mat.Dense // elastic stiffness by integration [12][12]
	Kt    *mat.Dense // tangent stiffness [12][12]
	Kprec *mat.Dense // closed-form elastic stiffness [12][12]
	K     *mat.Dense // stiffness in global frame, as selected by the last step [12][12]
	T     *mat.Dense // global-to-local transformation [12][12]

	// corotational frame and history
	Frame  Corot         // element frame
	XLast  []ele.Rigid   // configuration of the last successful step [2]
	States []*sld.State  // states @ integration points [27]
	Mstate sld.MechState // aggregate state

	// scratchpad
	work []*sld.State // states being updated
	ue   []float64    // local displacements
	ul   []float64    // local displacements @ last step
	du   []float64    // displacement increment
	fl   []float64    // local forces
	dε   []float64    // strain increment
	B    *mat.Dense   // strain-displacement matrix [6][12]
	D    *mat.Dense   // tangent operator [6][6]
	btd  *mat.Dense   // Bᵀ⋅D [12][6]
	bdb  *mat.Dense   // Bᵀ⋅D⋅B [12][12]
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("beamplast", func(sim *inp.Simulation, edat *inp.BeamData) *ele.Info {
		return &ele.Info{
			Dofs: [][]string{ele.RigidDofs, ele.RigidDofs},
			Y2F:  ele.RigidY2F,
			Nip:  shp.NipBeam,
		}
	})

	// element allocator
	ele.SetAllocator("beamplast", func(sim *inp.Simulation, edat *inp.BeamData, id int, x0 []ele.Rigid) (ele.Element, error) {

		// model
		m := sim.MatModels.Get(edat.Mat)
		if m == nil {
			return nil, chk.Err("cannot find material %q for beam {id=%d}", edat.Mat, id)
		}

		// new element
		o := new(BeamPlast)
		err := o.Init(id, edat.Verts, m.Sld, sim.Options)
		if err != nil {
			return nil, err
		}
		o.Verb = sim.Data.Verbose
		err = o.SetBeam(x0[edat.Verts[0]], x0[edat.Verts[1]], edat.Ydim, edat.Zdim)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}

// Init allocates data structures
func (o *BeamPlast) Init(id int, verts []int, mdl sld.Small, opt inp.Options) (err error) {
	if len(verts) != 2 {
		return chk.Err("beam element needs 2 nodes. %d is invalid", len(verts))
	}
	if mdl == nil {
		return chk.Err("beam element needs a material model")
	}
	o.Ident = id
	o.Nodes = []int{verts[0], verts[1]}
	o.Mdl = mdl
	o.Opt = opt
	o.X0 = make([]ele.Rigid, 2)
	o.XLast = make([]ele.Rigid, 2)

	// matrices
	nu := shp.NdofBeam
	o.C = mat.NewDense(sld.Nvoigt, sld.Nvoigt, nil)
	o.Ke = mat.NewDense(nu, nu, nil)
	o.Kt = mat.NewDense(nu, nu, nil)
	o.Kprec = mat.NewDense(nu, nu, nil)
	o.K = mat.NewDense(nu, nu, nil)
	o.T = mat.NewDense(nu, nu, nil)

	// states
	o.States = make([]*sld.State, shp.NipBeam)
	o.work = make([]*sld.State, shp.NipBeam)
	for i := 0; i < shp.NipBeam; i++ {
		o.States[i] = mdl.InitIntVars()
		o.work[i] = mdl.InitIntVars()
	}

	// scratchpad
	o.ue = make([]float64, nu)
	o.ul = make([]float64, nu)
	o.du = make([]float64, nu)
	o.fl = make([]float64, nu)
	o.dε = make([]float64, sld.Nvoigt)
	o.B = mat.NewDense(sld.Nvoigt, nu, nil)
	o.D = mat.NewDense(sld.Nvoigt, sld.Nvoigt, nil)
	o.btd = mat.NewDense(nu, sld.Nvoigt, nil)
	o.bdb = mat.NewDense(nu, nu, nil)
	return
}

// SetBeam sets the rest configuration and section of the beam, then recomputes all constants
//  Note: the history is cleared
func (o *BeamPlast) SetBeam(xa, xb ele.Rigid, ydim, zdim float64) (err error) {
	if ydim <= 0 || zdim <= 0 {
		return chk.Err("invalid section: dimensions must be positive. ydim = %g and zdim = %g are incorrect", ydim, zdim)
	}
	o.X0[0], o.X0[1] = xa, xb
	o.Ydim, o.Zdim = ydim, zdim
	return o.Recompute()
}

// Recompute computes properties, integration points and stiffness matrices
//  Note: the history is cleared
func (o *BeamPlast) Recompute() (err error) {

	// frame and length
	err = o.Frame.Init(o.X0[0], o.X0[1])
	if err != nil {
		return
	}
	o.L = o.Frame.L

	// properties
	o.E, o.Nu = o.Mdl.GetElast()
	if o.E <= 0 {
		return chk.Err("invalid parameters: Young's modulus must be positive. E = %g is incorrect", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("invalid parameters: Poisson's coefficient must be in (-1, 0.5). nu = %g is incorrect", o.Nu)
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.A = o.Ydim * o.Zdim
	o.Iz = o.Zdim * o.Ydim * o.Ydim * o.Ydim / 12.0
	o.Iy = o.Ydim * o.Zdim * o.Zdim * o.Zdim / 12.0
	o.J = o.Iy + o.Iz

	// shape and integration points
	var φy, φz float64
	if o.Opt.Timoshenko {
		φy, φz = o.shearFactors()
	}
	o.Shp = shp.NewBeamShape(o.L, φy, φz)
	o.Ips, err = shp.BeamIps(o.L, o.Ydim, o.Zdim, shp.NipDir)
	if err != nil {
		return
	}

	// matrices
	o.Mdl.ElastD(o.C)
	o.calcKe()
	o.calcKprec()
	o.Reset()
	return
}

// Id returns the element Id
func (o *BeamPlast) Id() int { return o.Ident }

// SetId sets the element Id
func (o *BeamPlast) SetId(id int) { o.Ident = id }

// Verts returns the indices of the rigid nodes
func (o *BeamPlast) Verts() []int { return o.Nodes }

// Reset restores the rest configuration and clears the history
func (o *BeamPlast) Reset() {
	for i := 0; i < shp.NipBeam; i++ {
		o.Mdl.ResetIntVars(o.States[i])
	}
	o.Mstate = sld.Elastic
	copy(o.XLast, o.X0)
	o.Frame.Update(o.X0[0])
	o.Kt.Copy(o.Ke)
	o.setK()
}

// CalcForce computes the restoring forces/torques fe [12] (global frame) and updates the history
//  Note: the history is only modified if all integration points succeed
func (o *BeamPlast) CalcForce(fe []float64, sol *ele.Solution) (err error) {

	// displacement increment
	xa, xb := sol.X[o.Nodes[0]], sol.X[o.Nodes[1]]
	o.Frame.LocalDisp(o.ul, o.XLast[0], o.XLast[1])
	o.Frame.LocalDisp(o.ue, xa, xb)
	for i := range o.du {
		o.du[i] = o.ue[i] - o.ul[i]
	}

	// update states and integrate forces
	for i := range o.fl {
		o.fl[i] = 0
	}
	dε := mat.NewVecDense(sld.Nvoigt, o.dε)
	du := mat.NewVecDense(shp.NdofBeam, o.du)
	fl := mat.NewVecDense(shp.NdofBeam, o.fl)
	var tmp mat.VecDense
	for idx, ip := range o.Ips {
		o.work[idx].Set(o.States[idx])
		o.Shp.CalcB(o.B, ip)
		dε.MulVec(o.B, du)
		err = o.Mdl.Update(o.work[idx], o.dε)
		if err != nil {
			return chk.Err("element %d, point %d: %v", o.Ident, idx, err)
		}
		tmp.MulVec(o.B.T(), mat.NewVecDense(sld.Nvoigt, o.work[idx].Sig))
		fl.AddScaledVec(fl, ip[3], &tmp)
	}

	// tangent stiffness
	mstate := sld.Aggregate(o.work)
	if mstate == sld.Plastic {
		err = o.calcKt(o.work)
		if err != nil {
			return
		}
	}

	// commit
	for idx := range o.States {
		o.States[idx].Set(o.work[idx])
	}
	if o.Verb && mstate != o.Mstate {
		io.Pfyel("beamplast %d: %v → %v\n", o.Ident, o.Mstate, mstate)
	}
	o.Mstate = mstate
	o.XLast[0], o.XLast[1] = xa, xb
	o.Frame.Update(xa)
	o.setK()

	// restoring forces in global frame: fe = -Tᵀ⋅fl
	f := mat.NewVecDense(shp.NdofBeam, fe)
	f.MulVec(o.T.T(), fl)
	f.ScaleVec(-1, f)
	return
}

// AddToKb adds -kFactor⋅K to global matrix
func (o *BeamPlast) AddToKb(Kb ele.Putter, eqs []int, kFactor float64) {
	for i, I := range eqs {
		for j, J := range eqs {
			Kb.Put(I, J, -kFactor*o.K.At(i, j))
		}
	}
}

// MulK computes dfe -= kFactor⋅K⋅due
func (o *BeamPlast) MulK(dfe, due []float64, kFactor float64) {
	var tmp mat.VecDense
	tmp.MulVec(o.K, mat.NewVecDense(shp.NdofBeam, due))
	f := mat.NewVecDense(shp.NdofBeam, dfe)
	f.AddScaledVec(f, -kFactor, &tmp)
}

// LocalK returns the stiffness selected by the last step in the local frame
//  Precomputed option: Kprec; any point plastic: Kt; otherwise: Ke
func (o *BeamPlast) LocalK() *mat.Dense {
	if o.Opt.Precomputed {
		return o.Kprec
	}
	if o.Mstate == sld.Plastic {
		return o.Kt
	}
	return o.Ke
}

// PotentialEnergy is not available for elastoplastic beams
func (o *BeamPlast) PotentialEnergy(sol *ele.Solution) (energy float64, err error) {
	return 0, chk.Err("potential energy of beamplast elements is not implemented")
}

// OutIpCoords returns the local coordinates of integration points
func (o *BeamPlast) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.Ips))
	for idx, ip := range o.Ips {
		C[idx] = []float64{ip[0], ip[1], ip[2]}
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *BeamPlast) OutIpKeys() []string {
	return []string{"sxx", "syy", "szz", "sxy", "syz", "szx", "q", "ep", "sy", "state"}
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *BeamPlast) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	nip := len(o.Ips)
	ξ := make([]float64, sld.Nvoigt)
	for idx, s := range o.States {
		for i, key := range []string{"sxx", "syy", "szz", "sxy", "syz", "szx"} {
			M.Set(key, idx, nip, s.Sig[i])
			ξ[i] = s.Sig[i] - s.Back[i]
		}
		M.Set("q", idx, nip, sld.EquivStress(ξ))
		M.Set("ep", idx, nip, s.EpsPeff)
		M.Set("sy", idx, nip, s.Sy)
		M.Set("state", idx, nip, float64(s.Mstate))
	}
}

// Encode encodes internal variables
func (o *BeamPlast) Encode(enc ele.Encoder) (err error) {
	err = enc.Encode(o.States)
	if err != nil {
		return
	}
	return enc.Encode(o.XLast)
}

// Decode decodes internal variables
func (o *BeamPlast) Decode(dec ele.Decoder) (err error) {
	err = dec.Decode(&o.States)
	if err != nil {
		return
	}
	err = dec.Decode(&o.XLast)
	if err != nil {
		return
	}
	if len(o.States) != shp.NipBeam || len(o.XLast) != 2 {
		return chk.Err("cannot decode beamplast %d: wrong number of states or nodes", o.Ident)
	}
	o.Mstate = sld.Aggregate(o.States)
	if o.Mstate == sld.Plastic {
		err = o.calcKt(o.States)
		if err != nil {
			return
		}
	}
	o.Frame.Update(o.XLast[0])
	o.setK()
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// shearFactors returns the Timoshenko factors φ = 12 E I / (G As L²) with As = A
func (o *BeamPlast) shearFactors() (φy, φz float64) {
	den := o.G * o.A * o.L * o.L
	return 12.0 * o.E * o.Iz / den, 12.0 * o.E * o.Iy / den
}

// setK computes the global stiffness K = Tᵀ⋅Kl⋅T for the current frame
func (o *BeamPlast) setK() {
	o.Frame.CalcT(o.T)
	o.K.Product(o.T.T(), o.LocalK(), o.T)
}

// calcKe integrates Ke = ∫ Bᵀ⋅C⋅B dV
func (o *BeamPlast) calcKe() {
	o.Ke.Zero()
	for _, ip := range o.Ips {
		o.Shp.CalcB(o.B, ip)
		o.addBtDB(o.Ke, o.C, ip[3])
	}
}

// calcKt integrates Kt = ∫ Bᵀ⋅D⋅B dV with D from states
func (o *BeamPlast) calcKt(states []*sld.State) (err error) {
	o.Kt.Zero()
	for idx, ip := range o.Ips {
		if o.Opt.Consistent {
			err = o.Mdl.CalcD(o.D, states[idx])
		} else {
			err = o.Mdl.ContD(o.D, states[idx])
		}
		if err != nil {
			return chk.Err("element %d, point %d: cannot compute tangent operator: %v", o.Ident, idx, err)
		}
		o.Shp.CalcB(o.B, ip)
		o.addBtDB(o.Kt, o.D, ip[3])
	}
	if o.Opt.Symmetric {
		var sym mat.Dense
		sym.Add(o.Kt, o.Kt.T())
		o.Kt.Scale(0.5, &sym)
	}
	return
}

// addBtDB adds w⋅Bᵀ⋅D⋅B to K
func (o *BeamPlast) addBtDB(K, D *mat.Dense, w float64) {
	o.btd.Mul(o.B.T(), D)
	o.bdb.Mul(o.btd, o.B)
	o.bdb.Scale(w, o.bdb)
	K.Add(K, o.bdb)
}

// calcKprec computes the closed-form elastic stiffness (Przemieniecki)
//  Note: shear factors are zero for Euler-Bernoulli beams
func (o *BeamPlast) calcKprec() {
	var φy, φz float64
	if o.Opt.Timoshenko {
		φy, φz = o.shearFactors()
	}
	E, L := o.E, o.L
	L2, L3 := L*L, L*L*L
	ay, az := 1.0+φy, 1.0+φz
	EA := E * o.A / L
	GJ := o.G * o.J / L
	k := o.Kprec
	k.Zero()
	set := func(i, j int, v float64) {
		k.Set(i, j, v)
		k.Set(j, i, v)
	}

	// axial and torsion
	set(0, 0, EA)
	set(0, 6, -EA)
	set(6, 6, EA)
	set(3, 3, GJ)
	set(3, 9, -GJ)
	set(9, 9, GJ)

	// bending in x-y plane (about z)
	set(1, 1, 12.0*E*o.Iz/(L3*ay))
	set(1, 5, 6.0*E*o.Iz/(L2*ay))
	set(1, 7, -12.0*E*o.Iz/(L3*ay))
	set(1, 11, 6.0*E*o.Iz/(L2*ay))
	set(5, 5, (4.0+φy)*E*o.Iz/(L*ay))
	set(5, 7, -6.0*E*o.Iz/(L2*ay))
	set(5, 11, (2.0-φy)*E*o.Iz/(L*ay))
	set(7, 7, 12.0*E*o.Iz/(L3*ay))
	set(7, 11, -6.0*E*o.Iz/(L2*ay))
	set(11, 11, (4.0+φy)*E*o.Iz/(L*ay))

	// bending in x-z plane (about y)
	set(2, 2, 12.0*E*o.Iy/(L3*az))
	set(2, 4, -6.0*E*o.Iy/(L2*az))
	set(2, 8, -12.0*E*o.Iy/(L3*az))
	set(2, 10, -6.0*E*o.Iy/(L2*az))
	set(4, 4, (4.0+φz)*E*o.Iy/(L*az))
	set(4, 8, 6.0*E*o.Iy/(L2*az))
	set(4, 10, (2.0-φz)*E*o.Iy/(L*az))
	set(8, 8, 12.0*E*o.Iy/(L3*az))
	set(8, 10, 6.0*E*o.Iy/(L2*az))
	set(10, 10, (4.0+φz)*E*o.Iy/(L*az))
}
