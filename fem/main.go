// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the force field of elastoplastic beams and a driver
// running prescribed load paths
package fem

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/beamplast/ele"
	"github.com/cpmech/beamplast/inp"
	sld "github.com/cpmech/beamplast/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Step holds the results of one load step
type Step struct {
	Amount float64       // amount of prescribed field
	F      []ele.Deriv   // restoring forces/torques @ nodes
	Ips    []*ele.IpsMap // values @ integration points of each element; nil for inactive elements
	Nplast int           // number of plastic integration points
	Qmax   float64       // max equivalent stress
	EpMax  float64       // max effective plastic strain
}

// Main holds all data for a simulation with prescribed kinematics
type Main struct {
	Sim     *inp.Simulation // simulation data
	FF      *ForceField     // force field with all elements
	Load    *Loading        // prescribed configurations
	X       []ele.Rigid     // current configuration
	Res     []*Step         // results of all steps
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.Sim, err = inp.ReadSim(simfilepath, false)
	if err != nil {
		return nil, err
	}
	o.ShowMsg = verbose || o.Sim.Data.Verbose
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}
	o.FF, err = NewForceField(o.Sim, o.ShowMsg)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> %d elements allocated (%d invalid)\n", o.FF.ActiveElems(), len(o.FF.Invalid))
	}
	kind := o.Sim.Loading.Kind
	if kind == "" {
		kind = "stretch"
	}
	o.Load, err = NewLoading(kind, o.FF.X0)
	if err != nil {
		return nil, err
	}
	o.X = make([]ele.Rigid, o.FF.Nnodes())
	copy(o.X, o.FF.X0)
	return
}

// Run runs all steps of the prescribed load path
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %q loading with %d steps\n", o.Load.Kind, len(o.Sim.Loading.Amounts))
	}

	// loop over steps
	for k, amount := range o.Sim.Loading.Amounts {
		err = o.RunStep(amount)
		if err != nil {
			return chk.Err("step %d (amount = %g) failed:\n%v", k, amount, err)
		}
		if o.ShowMsg {
			r := o.Res[len(o.Res)-1]
			io.Pf("%4d : amount = %12.5e  qmax = %12.5e  epmax = %12.5e  nplast = %3d\n", k, amount, r.Qmax, r.EpMax, r.Nplast)
		}
	}
	return
}

// RunStep sets the configuration for the given amount, computes forces and records results
func (o *Main) RunStep(amount float64) (err error) {
	o.Load.Config(o.X, amount)
	res := &Step{Amount: amount, F: make([]ele.Deriv, len(o.X))}
	err = o.FF.AddForce(res.F, o.X, nil)
	if err != nil {
		return
	}
	res.Ips = o.FF.IpsValues()
	for _, M := range res.Ips {
		if M == nil {
			continue
		}
		for idx, st := range (*M)["state"] {
			if sld.MechState(st) == sld.Plastic {
				res.Nplast++
			}
			if q := M.Get("q", idx); q > res.Qmax {
				res.Qmax = q
			}
			if ep := M.Get("ep", idx); ep > res.EpMax {
				res.EpMax = ep
			}
		}
	}
	o.Res = append(o.Res, res)
	return
}

// SaveIvs saves the internal variables of all elements to <dirout>/<key>.ivs
func (o *Main) SaveIvs() (fn string, err error) {
	var buf bytes.Buffer
	err = o.FF.Encode(&buf)
	if err != nil {
		return
	}
	err = os.MkdirAll(o.Sim.DirOut, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for output results (%s): %v", o.Sim.DirOut, err)
	}
	fn = filepath.Join(o.Sim.DirOut, o.Sim.Key+".ivs")
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return "", chk.Err("cannot save internal variables:\n%v", err)
	}
	return
}

// ReadIvs reads the internal variables of all elements saved with SaveIvs
func (o *Main) ReadIvs(fn string) (err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read internal variables:\n%v", err)
	}
	return o.FF.Decode(bytes.NewReader(b))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.Pfgreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
