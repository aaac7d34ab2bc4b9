// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// full9 converts a stress-like Voigt vector into the 9 components of the full tensor (row-major)
func full9(v []float64) (a []float64) {
	m := VoigtToFull2(v)
	a = make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i*3+j] = m[i][j]
		}
	}
	return
}

// dot9 computes a:b with full tensors
func dot9(a, b []float64) (res float64) {
	for i := 0; i < 9; i++ {
		res += a[i] * b[i]
	}
	return
}

// equiv9 computes the Von Mises equivalent stress with the full tensor
func equiv9(σ []float64) float64 {
	p := (σ[0] + σ[4] + σ[8]) / 3.0
	s := make([]float64, 9)
	copy(s, σ)
	s[0] -= p
	s[4] -= p
	s[8] -= p
	return math.Sqrt(1.5 * dot9(s, s))
}

func randVoigt(rnd *rand.Rand, scale float64) (v []float64) {
	v = make([]float64, Nvoigt)
	for i := 0; i < Nvoigt; i++ {
		v[i] = scale * (2.0*rnd.Float64() - 1.0)
	}
	return
}

func Test_voigt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt01")

	σ := []float64{1, 2, 3, 4, 5, 6}
	a := VoigtToFull2(σ)
	chk.Deep2(tst, "σ", 1e-15, a, [][]float64{
		{1, 4, 6},
		{4, 2, 5},
		{6, 5, 3},
	})
	chk.Array(tst, "σ back", 1e-15, FullToVoigt2(a), σ)

	ε := []float64{1, 2, 3, 4, 5, 6}
	e := StrainToFull2(ε)
	chk.Deep2(tst, "ε", 1e-15, e, [][]float64{
		{1, 2, 3},
		{2, 2, 2.5},
		{3, 2.5, 3},
	})
	chk.Array(tst, "ε back", 1e-15, FullToStrain2(e), ε)

	for m, ij := range VoigtIJ {
		chk.Int(tst, io.Sf("idx(%d,%d)", ij[0], ij[1]), VoigtIdx(ij[0], ij[1]), m)
		chk.Int(tst, io.Sf("idx(%d,%d)", ij[1], ij[0]), VoigtIdx(ij[1], ij[0]), m)
	}
}

func Test_voigt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt02")

	// random operator with minor symmetries
	rnd := rand.New(rand.NewSource(1234))
	C := make([][]float64, Nvoigt)
	for a := 0; a < Nvoigt; a++ {
		C[a] = randVoigt(rnd, 10)
	}

	// round trip
	A := VoigtToFull4(C)
	chk.Deep2(tst, "C back", 1e-15, FullToVoigt4(A), C)

	// action on engineering strains
	for k := 0; k < 20; k++ {
		γ := randVoigt(rnd, 1e-3)
		e := StrainToFull2(γ)
		σv := make([]float64, Nvoigt)
		for a := 0; a < Nvoigt; a++ {
			for b := 0; b < Nvoigt; b++ {
				σv[a] += C[a][b] * γ[b]
			}
		}
		σf := make([][]float64, 3)
		for i := 0; i < 3; i++ {
			σf[i] = make([]float64, 3)
			for j := 0; j < 3; j++ {
				for m := 0; m < 3; m++ {
					for n := 0; n < 3; n++ {
						σf[i][j] += A[i][j][m][n] * e[m][n]
					}
				}
			}
		}
		chk.Array(tst, io.Sf("σ = C:ε (%d)", k), 1e-15, FullToVoigt2(σf), σv)
	}
}

func Test_voigt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt03")

	rnd := rand.New(rand.NewSource(4321))
	s := make([]float64, Nvoigt)
	for k := 0; k < 100; k++ {
		a := randVoigt(rnd, 100)
		b := randVoigt(rnd, 100)
		a9, b9 := full9(a), full9(b)
		chk.Float64(tst, "a:b", 1e-10, VoigtDot(a, b), dot9(a9, b9))
		chk.Float64(tst, "|a|", 1e-11, VoigtNorm(a), math.Sqrt(dot9(a9, a9)))
		chk.Float64(tst, "tr(a)", 1e-13, VoigtTrace(a), a9[0]+a9[4]+a9[8])
		VoigtDev(s, a)
		chk.Float64(tst, "tr(dev(a))", 1e-13, VoigtTrace(s), 0)
		chk.Float64(tst, "q", 1e-11, EquivStress(a), equiv9(a9))
	}
}
