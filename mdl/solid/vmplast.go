// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// VonMises implements Von Mises plasticity with linear mixed hardening and radial return
//
//  f = q(σ - α) - σy
//
//  σy grows with β H Δλ (isotropic share β)
//  α  translates with (2/3)(1-β) H Δλ ∂q/∂σ
//
type VonMises struct {

	// parameters
	E       float64   // Young's modulus
	Nu      float64   // Poisson's coefficient
	K       float64   // bulk modulus
	G       float64   // shear modulus
	Sy0     float64   // initial yield stress
	Beta    float64   // isotropic share of hardening: 1 → isotropic; 0 → kinematic
	Perfect bool      // perfect plasticity (no hardening)
	Hard    Hardening // hardening law

	// settings
	Ftol    float64 // tolerance on yield function, relative to σy
	Ntol    float64 // tolerance of Newton's method, relative to σy
	NmaxIt  int     // max number of iterations in Newton's method
	NsubMax int     // max number of halvings when sub-stepping
	Verbose bool    // show messages

	// auxiliary
	C *mat.Dense // elastic Voigt operator
}

// add model to factory
func init() {
	allocators["vm"] = func() Small { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(prms dbf.Params) (err error) {

	// defaults
	o.Beta = 1
	o.Ftol = 1e-8
	o.Ntol = 1e-10
	o.NmaxIt = 25
	o.NsubMax = 4

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "sY":
			o.Sy0 = p.V
		case "beta":
			o.Beta = p.V
		case "perfect":
			o.Perfect = p.V > 0
		case "ftol":
			o.Ftol = p.V
		case "nmaxit":
			o.NmaxIt = int(p.V)
		case "nsubmax":
			o.NsubMax = int(p.V)
		case "verbose":
			o.Verbose = p.V > 0
		}
	}

	// check
	if o.E <= 0 {
		return chk.Err("invalid parameters: Young's modulus must be positive. E = %g is incorrect", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("invalid parameters: Poisson's coefficient must be in (-1, 0.5). nu = %g is incorrect", o.Nu)
	}
	if o.Sy0 <= 0 {
		return chk.Err("invalid parameters: yield stress must be positive. sY = %g is incorrect", o.Sy0)
	}
	if o.Beta < 0 || o.Beta > 1 {
		return chk.Err("invalid parameters: isotropic share must be in [0, 1]. beta = %g is incorrect", o.Beta)
	}

	// elastic moduli
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.C = mat.NewDense(Nvoigt, Nvoigt, nil)
	o.ElastD(o.C)

	// hardening
	if o.Perfect {
		return
	}
	return o.Hard.Init(o.Sy0, prms)
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 210e9},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sY", V: 250e6},
		&dbf.P{N: "beta", V: 1},
		&dbf.P{N: "law", V: 0},
		&dbf.P{N: "H", V: 2e9},
	}
}

// InitIntVars allocates a fresh state
func (o *VonMises) InitIntVars() *State {
	return NewState(o.Sy0)
}

// ResetIntVars clears the history of s
func (o *VonMises) ResetIntVars(s *State) {
	s.Reset(o.Sy0)
}

// GetElast returns elastic constants
func (o *VonMises) GetElast() (E, nu float64) {
	return o.E, o.Nu
}

// ElastD computes the isotropic elastic operator C = K 1⊗1 + 2G Idev (Voigt, engineering shear)
func (o *VonMises) ElastD(C *mat.Dense) {
	a := o.K + 4.0*o.G/3.0
	b := o.K - 2.0*o.G/3.0
	for i := 0; i < Nvoigt; i++ {
		for j := 0; j < Nvoigt; j++ {
			switch {
			case i < 3 && j < 3 && i == j:
				C.Set(i, j, a)
			case i < 3 && j < 3:
				C.Set(i, j, b)
			case i == j:
				C.Set(i, j, o.G)
			default:
				C.Set(i, j, 0)
			}
		}
	}
}

// Update updates stresses for given strain increment
//  Note: if the return mapping fails, the increment is split into 2, 4, ... 2^NsubMax
//        sub-steps; the state is only modified on success
func (o *VonMises) Update(s *State, Δε []float64) (err error) {
	err = o.update(s, Δε)
	if err == nil {
		return
	}
	tmp := s.GetCopy()
	δε := make([]float64, Nvoigt)
	for nsub := 2; nsub <= 1<<uint(o.NsubMax); nsub *= 2 {
		if o.Verbose {
			io.Pfyel("vm: sub-stepping with %d steps after: %v\n", nsub, err)
		}
		tmp.Set(s)
		for i := 0; i < Nvoigt; i++ {
			δε[i] = Δε[i] / float64(nsub)
		}
		err = nil
		for k := 0; k < nsub; k++ {
			err = o.update(tmp, δε)
			if err != nil {
				break
			}
		}
		if err == nil {
			s.Set(tmp)
			return
		}
	}
	return chk.Err("return mapping failed with %d sub-steps: %v", 1<<uint(o.NsubMax), err)
}

// update performs one elastic predictor / plastic corrector step
func (o *VonMises) update(s *State, Δε []float64) (err error) {

	// trial stress
	Δσ := make([]float64, Nvoigt)
	σtr := make([]float64, Nvoigt)
	ξtr := make([]float64, Nvoigt)
	mat.NewVecDense(Nvoigt, Δσ).MulVec(o.C, mat.NewVecDense(Nvoigt, Δε))
	for i := 0; i < Nvoigt; i++ {
		σtr[i] = s.Sig[i] + Δσ[i]
		ξtr[i] = σtr[i] - s.Back[i]
	}
	qtr := EquivStress(ξtr)
	ftr := qtr - s.Sy

	// elastic update
	if ftr <= o.Ftol*s.Sy {
		mstate := s.Mstate
		if mstate == Plastic {
			n := make([]float64, Nvoigt)
			ξ := make([]float64, Nvoigt)
			for i := 0; i < Nvoigt; i++ {
				ξ[i] = s.Sig[i] - s.Back[i]
			}
			YieldGrad(n, ξ)
			if VoigtDot(n, Δσ) < 0 {
				mstate = PostPlastic
			}
		}
		copy(s.SigTr, σtr)
		copy(s.Sig, σtr)
		s.Dlam = 0
		s.Mstate = mstate
		return
	}

	// plastic multiplier
	Δλ, H, err := o.dlam(qtr, s.Sy, s.EpsPeff)
	if err != nil {
		return
	}

	// flow direction
	n := make([]float64, Nvoigt)
	YieldGrad(n, ξtr)
	c := math.Sqrt(1.5)
	Hi, Hk := o.Beta*H, (1.0-o.Beta)*H

	// corrected values
	σ := make([]float64, Nvoigt)
	α := make([]float64, Nvoigt)
	εp := make([]float64, Nvoigt)
	for i := 0; i < Nvoigt; i++ {
		σ[i] = σtr[i] - 2.0*o.G*c*Δλ*n[i]
		α[i] = s.Back[i] + Hk*Δλ*n[i]/c
		εp[i] = s.EpsP[i] + Δλ*c*n[i]
		if i > 2 {
			εp[i] += Δλ * c * n[i]
		}
	}
	σy := s.Sy + Hi*Δλ

	// check
	ξ := make([]float64, Nvoigt)
	for i := 0; i < Nvoigt; i++ {
		ξ[i] = σ[i] - α[i]
	}
	if f := EquivStress(ξ) - σy; f > o.Ftol*σy {
		return chk.Err("return mapping did not reach the yield surface: f = %g, σy = %g", f, σy)
	}

	// commit
	copy(s.SigTr, σtr)
	copy(s.Sig, σ)
	copy(s.Back, α)
	copy(s.EpsP, εp)
	s.EpsPeff += Δλ
	s.Sy = σy
	s.Dlam = Δλ
	s.Hp = H
	s.Mstate = Plastic
	return
}

// dlam solves the consistency condition for Δλ
//
//  r(Δλ) = qtr - σy - (3G + H) Δλ = 0
//
//  Note: for stress-based hardening, H is evaluated at the current σy (explicit)
func (o *VonMises) dlam(qtr, σy, ep float64) (Δλ, H float64, err error) {

	// perfect plasticity
	if o.Perfect {
		return (qtr - σy) / (3.0 * o.G), 0, nil
	}

	// modulus independent of Δλ
	if o.Hard.Kind != HardStrain {
		H = o.Hard.Modulus(σy, ep)
		return (qtr - σy) / (3.0*o.G + H), H, nil
	}

	// Newton's method
	H = o.Hard.Modulus(σy, ep)
	Δλ = (qtr - σy) / (3.0*o.G + H)
	for it := 0; it < o.NmaxIt; it++ {
		H = o.Hard.Modulus(σy, ep+Δλ)
		r := qtr - σy - (3.0*o.G+H)*Δλ
		if math.Abs(r) <= o.Ntol*σy {
			if Δλ <= 0 {
				return 0, 0, chk.Err("Newton's method returned non-positive Δλ = %g", Δλ)
			}
			return
		}
		_, dHdep := o.Hard.DModulus(σy, ep+Δλ)
		drdΔλ := -(3.0*o.G + H + dHdep*Δλ)
		Δλ -= r / drdΔλ
	}
	return 0, 0, chk.Err("Newton's method did not converge after %d iterations", o.NmaxIt)
}

// CalcD computes D = dσ_new/dε_new consistent with Update
//
//  A = (I + Δλ Dα Hq)⁻¹    with  Dα = C + (2/3)(1-β) H T
//  b = Dα g + (2/3)(1-β) H' Δλ T g
//  u = g - Δλ Hq A b
//  D = C - Δλ C Hq A C - (C u) ⊗ (gᵀ A C) / (gᵀ A b + β (H + H' Δλ))
//
//  where g = ∂q/∂σ, Hq = ∂²q/∂σ∂σ, H' = dH/dε̄p and T = diag(1,1,1,½,½,½)
func (o *VonMises) CalcD(D *mat.Dense, s *State) (err error) {

	// elastic
	D.Copy(o.C)
	if s.Mstate != Plastic {
		return
	}

	// derivatives of q
	ξ := make([]float64, Nvoigt)
	for i := 0; i < Nvoigt; i++ {
		ξ[i] = s.Sig[i] - s.Back[i]
	}
	gs := make([]float64, Nvoigt)
	YieldDeriv(gs, ξ)
	g := mat.NewVecDense(Nvoigt, gs)
	Hq := mat.NewDense(Nvoigt, Nvoigt, nil)
	YieldHessian(Hq, ξ, s.Sy)

	// moduli
	H, dH := s.Hp, 0.0
	if !o.Perfect && o.Hard.Kind == HardStrain {
		_, dHdep := o.Hard.DModulus(s.Sy, s.EpsPeff)
		dH = dHdep * s.Dlam
	}
	Hi, Hk := o.Beta*(H+dH), (1.0-o.Beta)*H
	Dα := mat.DenseCopyOf(o.C)
	Tg := mat.NewVecDense(Nvoigt, nil)
	for i := 0; i < Nvoigt; i++ {
		t := 1.0
		if i > 2 {
			t = 0.5
		}
		Dα.Set(i, i, Dα.At(i, i)+2.0*Hk*t/3.0)
		Tg.SetVec(i, t*g.AtVec(i))
	}

	// A = (I + Δλ Dα Hq)⁻¹
	var M, A mat.Dense
	M.Mul(Dα, Hq)
	M.Scale(s.Dlam, &M)
	for i := 0; i < Nvoigt; i++ {
		M.Set(i, i, M.At(i, i)+1.0)
	}
	err = A.Inverse(&M)
	if err != nil {
		return chk.Err("cannot compute consistent tangent: %v", err)
	}

	// D = C - Δλ C Hq A C
	var CHq, CHqA, CHqAC mat.Dense
	CHq.Mul(o.C, Hq)
	CHqA.Mul(&CHq, &A)
	CHqAC.Mul(&CHqA, o.C)
	D.Sub(o.C, scaled(s.Dlam, &CHqAC))

	// u = g - Δλ Hq A b
	var b, Ab, HqAb, u, Cu, AC mat.VecDense
	b.MulVec(Dα, g)
	b.AddScaledVec(&b, 2.0*(1.0-o.Beta)*dH/3.0, Tg)
	Ab.MulVec(&A, &b)
	HqAb.MulVec(Hq, &Ab)
	u.AddScaledVec(g, -s.Dlam, &HqAb)
	Cu.MulVec(o.C, &u)

	// w = (gᵀ A C)ᵀ
	var tmp mat.Dense
	tmp.Mul(&A, o.C)
	AC.MulVec(tmp.T(), g)

	// rank-one correction
	den := mat.Dot(g, &Ab) + Hi
	if den <= 0 {
		return chk.Err("cannot compute consistent tangent: denominator = %g is non-positive", den)
	}
	D.RankOne(D, -1.0/den, &Cu, &AC)
	return
}

// ContD computes D = dσ_new/dε_new continuum, with the flow direction at the elastic predictor
//
//  D = C - (C g) ⊗ (C g) / (gᵀ C g + H)
//
func (o *VonMises) ContD(D *mat.Dense, s *State) (err error) {
	D.Copy(o.C)
	if s.Mstate != Plastic {
		return
	}
	ξ := make([]float64, Nvoigt)
	for i := 0; i < Nvoigt; i++ {
		ξ[i] = s.SigTr[i] - s.Back[i]
	}
	gs := make([]float64, Nvoigt)
	if q := YieldDeriv(gs, ξ); q == 0 {
		return
	}
	g := mat.NewVecDense(Nvoigt, gs)
	var Cg mat.VecDense
	Cg.MulVec(o.C, g)
	den := mat.Dot(g, &Cg) + s.Hp
	D.RankOne(D, -1.0/den, &Cg, &Cg)
	return
}

// scaled returns α⋅a
func scaled(α float64, a mat.Matrix) *mat.Dense {
	var res mat.Dense
	res.Scale(α, a)
	return &res
}
