// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of load path results; tables and plots
package out

import (
	"bytes"
	goio "io"
	"text/tabwriter"

	"github.com/cpmech/beamplast/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Keys holds the keys of all series in History
var Keys = []string{"amount", "qmax", "epmax", "nplast", "f", "m"}

// History holds the series of results along a load path
type History struct {
	Node   int       // node where reactions are collected
	Amount []float64 // amount of prescribed field
	Qmax   []float64 // max equivalent stress
	EpMax  []float64 // max effective plastic strain
	Nplast []float64 // number of plastic integration points
	F      []float64 // norm of reaction force @ Node
	M      []float64 // norm of reaction moment @ Node
}

// NewHistory collects results of all steps
func NewHistory(res []*fem.Step, node int) (o *History, err error) {
	o = &History{Node: node}
	for k, r := range res {
		if node < 0 || node >= len(r.F) {
			return nil, chk.Err("step %d: node %d is out of range [0, %d)", k, node, len(r.F))
		}
		o.Amount = append(o.Amount, r.Amount)
		o.Qmax = append(o.Qmax, r.Qmax)
		o.EpMax = append(o.EpMax, r.EpMax)
		o.Nplast = append(o.Nplast, float64(r.Nplast))
		o.F = append(o.F, r3.Norm(r.F[node].Lin))
		o.M = append(o.M, r3.Norm(r.F[node].Ang))
	}
	return
}

// Get returns the series corresponding to key
func (o *History) Get(key string) (res []float64, err error) {
	switch key {
	case "amount":
		return o.Amount, nil
	case "qmax":
		return o.Qmax, nil
	case "epmax":
		return o.EpMax, nil
	case "nplast":
		return o.Nplast, nil
	case "f":
		return o.F, nil
	case "m":
		return o.M, nil
	}
	return nil, chk.Err("cannot find series %q. keys available are: %v", key, Keys)
}

// Label returns a label with units for key
func Label(key string) string {
	switch key {
	case "amount":
		return "amount"
	case "qmax":
		return "max q [Pa]"
	case "epmax":
		return "max εp"
	case "nplast":
		return "plastic points"
	case "f":
		return "|f| [N]"
	case "m":
		return "|m| [N⋅m]"
	}
	return key
}

// Peak returns the index and value of the largest entry of series key
func (o *History) Peak(key string) (idx int, val float64, err error) {
	v, err := o.Get(key)
	if err != nil {
		return
	}
	if len(v) == 0 {
		return -1, 0, chk.Err("history is empty")
	}
	idx = floats.MaxIdx(v)
	return idx, v[idx], nil
}

// Print writes a table with all series
func (o *History) Print(w goio.Writer) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "step\tamount\tqmax\tepmax\tnplast\t|f|\t|m|\t\n")
	for k := range o.Amount {
		io.Ff(&buf, "%d\t%g\t%.6e\t%.6e\t%d\t%.6e\t%.6e\t\n", k, o.Amount[k], o.Qmax[k], o.EpMax[k], int(o.Nplast[k]), o.F[k], o.M[k])
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, err = tw.Write(buf.Bytes())
	if err != nil {
		return
	}
	return tw.Flush()
}
