// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// MechState defines the mechanical state of an integration point
type MechState int

// mechanical states
const (
	Elastic     MechState = iota // never yielded
	Plastic                      // yielded during the last step
	PostPlastic                  // yielded before, unloading elastically now
)

// String returns the name of the mechanical state
func (o MechState) String() string {
	switch o {
	case Elastic:
		return "elastic"
	case Plastic:
		return "plastic"
	case PostPlastic:
		return "postplastic"
	}
	return "unknown"
}

// Aggregate returns the state of a group of points:
//  Elastic if all points are Elastic; Plastic if any point is Plastic; PostPlastic otherwise
func Aggregate(states []*State) MechState {
	res := Elastic
	for _, s := range states {
		switch s.Mstate {
		case Plastic:
			return Plastic
		case PostPlastic:
			res = PostPlastic
		}
	}
	return res
}

// State holds the history of one integration point
type State struct {
	Mstate  MechState // mechanical state
	Sig     []float64 // σ: stress at the end of the last step [6]
	SigTr   []float64 // σtr: elastic predictor of the last step [6]
	EpsP    []float64 // εp: plastic strain (engineering shear) [6]
	EpsPeff float64   // ε̄p: effective plastic strain
	Back    []float64 // α: back stress [6]
	Sy      float64   // σy: current yield stress
	Dlam    float64   // Δλ: plastic multiplier of the last step
	Hp      float64   // H: plastic modulus used by the last return mapping
}

// NewState allocates a fresh (elastic, no history) state
func NewState(sy0 float64) *State {
	return &State{
		Sig:   make([]float64, Nvoigt),
		SigTr: make([]float64, Nvoigt),
		EpsP:  make([]float64, Nvoigt),
		Back:  make([]float64, Nvoigt),
		Sy:    sy0,
	}
}

// Reset clears the history
func (o *State) Reset(sy0 float64) {
	o.Mstate = Elastic
	for i := 0; i < Nvoigt; i++ {
		o.Sig[i], o.SigTr[i], o.EpsP[i], o.Back[i] = 0, 0, 0, 0
	}
	o.EpsPeff = 0
	o.Sy = sy0
	o.Dlam = 0
	o.Hp = 0
}

// Set copies states
//  Note: this and other states must have been allocated with NewState
func (o *State) Set(other *State) {
	o.Mstate = other.Mstate
	copy(o.Sig, other.Sig)
	copy(o.SigTr, other.SigTr)
	copy(o.EpsP, other.EpsP)
	copy(o.Back, other.Back)
	o.EpsPeff = other.EpsPeff
	o.Sy = other.Sy
	o.Dlam = other.Dlam
	o.Hp = other.Hp
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(o.Sy)
	other.Set(o)
	return other
}
