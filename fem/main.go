// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver for borehole heat exchangers coupled to the soil
package fem

import (
	"time"

	"github.com/cguevaramorel/ogs/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Domain  *Domain         // domain with all boreholes
	Solver  Solver          // finite element method solver; e.g. implicit
	Output  OutputFunc      // called at output times; may be nil
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev, true)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domain
	o.Domain, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, err
	}

	// allocate solver
	if alloc, ok := allocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Domain, &o.Sim.Solver)
	} else {
		return nil, chk.Err("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// Run runs FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial values
	err = o.Domain.SetIniVals(0)
	if err != nil {
		return
	}
	if o.Sim.Data.ListBcs {
		io.Pf("%v", o.Domain.EssenBcs.List(o.Sim.Control.Tf))
	}

	// message
	if o.ShowMsg {
		io.Pf("> Running FE solver\n")
	}

	// time loop
	return o.Solver.Run(&o.Sim.Control, o.Output, o.ShowMsg)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
