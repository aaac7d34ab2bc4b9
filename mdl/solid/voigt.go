// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Voigt notation
//
//   index:   0    1    2    3    4    5
//   stress: σxx  σyy  σzz  σxy  σyz  σzx   (tensor components)
//   strain: εxx  εyy  εzz  γxy  γyz  γzx   (engineering shear: γ = 2 ε)
//
// A Voigt order-4 operator C maps engineering strains to stresses: σ = C γ.
// With minor symmetries, C[a][b] == Cfull[i(a)][j(a)][k(b)][l(b)]

// Nvoigt is the number of Voigt components of a symmetric 3D tensor
const Nvoigt = 6

// VoigtIJ maps a Voigt index to (i,j) tensor indices
var VoigtIJ = [Nvoigt][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {2, 0}}

// voigtIdx maps tensor indices (i,j) to Voigt index
var voigtIdx = [3][3]int{
	{0, 3, 5},
	{3, 1, 4},
	{5, 4, 2},
}

// VoigtIdx returns the Voigt index corresponding to (i,j)
func VoigtIdx(i, j int) int {
	return voigtIdx[i][j]
}

// VoigtToFull2 converts a stress-like Voigt vector to a 3x3 tensor
func VoigtToFull2(v []float64) (a [][]float64) {
	a = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = v[voigtIdx[i][j]]
		}
	}
	return
}

// FullToVoigt2 converts a 3x3 (symmetric) tensor to a stress-like Voigt vector
//  Note: the symmetric part of a is taken
func FullToVoigt2(a [][]float64) (v []float64) {
	v = make([]float64, Nvoigt)
	for m, ij := range VoigtIJ {
		v[m] = (a[ij[0]][ij[1]] + a[ij[1]][ij[0]]) / 2.0
	}
	return
}

// StrainToFull2 converts a strain-like (engineering) Voigt vector to a 3x3 tensor
func StrainToFull2(v []float64) (a [][]float64) {
	a = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m := voigtIdx[i][j]
			if m < 3 {
				a[i][j] = v[m]
			} else {
				a[i][j] = v[m] / 2.0
			}
		}
	}
	return
}

// FullToStrain2 converts a 3x3 strain tensor to a strain-like (engineering) Voigt vector
func FullToStrain2(a [][]float64) (v []float64) {
	v = make([]float64, Nvoigt)
	for m, ij := range VoigtIJ {
		if m < 3 {
			v[m] = a[ij[0]][ij[0]]
			continue
		}
		v[m] = a[ij[0]][ij[1]] + a[ij[1]][ij[0]]
	}
	return
}

// VoigtToFull4 converts a 6x6 Voigt operator into a 3x3x3x3 tensor with minor symmetries
func VoigtToFull4(C [][]float64) (A [][][][]float64) {
	A = alloc4(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					A[i][j][k][l] = C[voigtIdx[i][j]][voigtIdx[k][l]]
				}
			}
		}
	}
	return
}

// FullToVoigt4 converts a 3x3x3x3 tensor with minor symmetries into a 6x6 Voigt operator
func FullToVoigt4(A [][][][]float64) (C [][]float64) {
	C = utl.Alloc(Nvoigt, Nvoigt)
	for a, ij := range VoigtIJ {
		for b, kl := range VoigtIJ {
			C[a][b] = A[ij[0]][ij[1]][kl[0]][kl[1]]
		}
	}
	return
}

// VoigtDot returns the double contraction a:b of two stress-like Voigt vectors
func VoigtDot(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + 2.0*(a[3]*b[3]+a[4]*b[4]+a[5]*b[5])
}

// VoigtNorm returns the Frobenius norm of a stress-like Voigt vector
func VoigtNorm(a []float64) float64 {
	return math.Sqrt(VoigtDot(a, a))
}

// VoigtTrace returns the trace of a Voigt vector
func VoigtTrace(a []float64) float64 {
	return a[0] + a[1] + a[2]
}

// VoigtDev computes the deviator s of a stress-like Voigt vector a
//  Note: s and a may be the same slice
func VoigtDev(s, a []float64) {
	p := VoigtTrace(a) / 3.0
	s[0], s[1], s[2] = a[0]-p, a[1]-p, a[2]-p
	s[3], s[4], s[5] = a[3], a[4], a[5]
}

// alloc4 allocates a 4th order tensor with dimension n
func alloc4(n int) (A [][][][]float64) {
	A = make([][][][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = make([][][]float64, n)
		for j := 0; j < n; j++ {
			A[i][j] = utl.Alloc(n, n)
		}
	}
	return
}
