// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"fmt"
	goio "io"
	"math"
	"strings"

	"github.com/cpmech/beamplast/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// WriteTo writes the element record as text with the following order of fields:
//
//  E ν L zDim yDim G Iy Iz J A Ke Kt Kprec
//
//  Note: matrices are written row by row; one line per scalar/matrix
func (o *BeamPlast) WriteTo(w goio.Writer) (n int64, err error) {
	var b strings.Builder
	for _, v := range o.scalars() {
		b.WriteString(io.Sf("%.17g\n", *v))
	}
	for _, K := range []*mat.Dense{o.Ke, o.Kt, o.Kprec} {
		r, c := K.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if i+j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(io.Sf("%.17g", K.At(i, j)))
			}
		}
		b.WriteString("\n")
	}
	m, err := goio.WriteString(w, b.String())
	return int64(m), err
}

// ReadFrom reads the element record written by WriteTo
//  Note: the shape structure and integration points are recomputed; the history is kept.
//        E and ν must match the material model
func (o *BeamPlast) ReadFrom(r goio.Reader) (n int64, err error) {
	cr := &countingReader{r: r}
	vals := make([]float64, 10+3*shp.NdofBeam*shp.NdofBeam)
	for i := range vals {
		_, err = fmt.Fscan(cr, &vals[i])
		if err != nil {
			return cr.n, chk.Err("cannot read beamplast record: value %d: %v", i, err)
		}
	}
	L := vals[2]
	if math.Abs(L-o.Frame.L) > 1e-9*o.Frame.L {
		return cr.n, chk.Err("cannot read beamplast record: length %g does not match rest configuration (%g)", L, o.Frame.L)
	}
	E, ν := o.Mdl.GetElast()
	if math.Abs(vals[0]-E) > 1e-12*E || math.Abs(vals[1]-ν) > 1e-12 {
		return cr.n, chk.Err("cannot read beamplast record: E = %g and ν = %g do not match the material model (E = %g, ν = %g)", vals[0], vals[1], E, ν)
	}
	for i, v := range o.scalars() {
		*v = vals[i]
	}
	k := 10
	for _, K := range []*mat.Dense{o.Ke, o.Kt, o.Kprec} {
		for i := 0; i < shp.NdofBeam; i++ {
			for j := 0; j < shp.NdofBeam; j++ {
				K.Set(i, j, vals[k])
				k++
			}
		}
	}

	// derived
	var φy, φz float64
	if o.Opt.Timoshenko {
		φy, φz = o.shearFactors()
	}
	o.Shp = shp.NewBeamShape(o.L, φy, φz)
	o.Ips, err = shp.BeamIps(o.L, o.Ydim, o.Zdim, shp.NipDir)
	if err != nil {
		return cr.n, err
	}
	o.setK()
	return cr.n, nil
}

// scalars returns pointers to the scalar fields in record order
func (o *BeamPlast) scalars() []*float64 {
	return []*float64{&o.E, &o.Nu, &o.L, &o.Zdim, &o.Ydim, &o.G, &o.Iy, &o.Iz, &o.J, &o.A}
}

// countingReader counts the bytes read
type countingReader struct {
	r goio.Reader
	n int64
}

func (o *countingReader) Read(p []byte) (n int, err error) {
	n, err = o.r.Read(p)
	o.n += int64(n)
	return
}
