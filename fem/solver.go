// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
)

// OutputFunc is called at output times
type OutputFunc func(d *Domain) (err error)

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(ctrl *inp.TimeControl, output OutputFunc, verbose bool) (err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain, dat *inp.SolverData) Solver)

// Implicit solves the problem with the implicit Euler method
//
//   ( M/Δt + K(y) ) y = M/Δt yold    subject to    A y = c(y)
//
// Picard iterations update the inflow temperatures c(y) and the flow-dependent K(y).
type Implicit struct {
	Dom *Domain         // domain
	Dat *inp.SolverData // solver data
	Nit int             // number of iterations of last step
}

// add solver to database
func init() {
	allocators["imp"] = func(dom *Domain, dat *inp.SolverData) Solver {
		return &Implicit{Dom: dom, Dat: dat}
	}
}

// Run runs the time loop from the current time in Sol up to ctrl.Tf
func (o *Implicit) Run(ctrl *inp.TimeControl, output OutputFunc, verbose bool) (err error) {

	// initial output
	d := o.Dom
	if output != nil {
		err = output(d)
		if err != nil {
			return
		}
	}

	// time loop
	t := d.Sol.T
	tout := t + ctrl.DtOut
	ϵ := 1e-10 * ctrl.Dt
	var Δt float64
	var lasttimestep bool
	for t < ctrl.Tf-ϵ {

		// time increment
		Δt = ctrl.Dt
		if t+Δt >= ctrl.Tf-ϵ {
			Δt = ctrl.Tf - t
			lasttimestep = true
		}

		// time update
		t += Δt
		d.Sol.T = t
		d.Sol.Dt = Δt
		d.Sol.Backup()

		// message
		if verbose && !o.Dat.ShowR {
			io.Pf("%30.15f\r", t)
		}

		// flow rates
		err = d.UpdateFlowRates(t)
		if err != nil {
			return
		}

		// iterations
		err = o.iterations(t)
		if err != nil {
			return
		}

		// perform output
		if t >= tout-ϵ || lasttimestep {
			if output != nil {
				err = output(d)
				if err != nil {
					return
				}
			}
			tout += ctrl.DtOut
		}
	}
	if verbose && !o.Dat.ShowR {
		io.Pf("\n")
	}
	return
}

// iterations runs Picard iterations until the largest change of temperatures is below Atol
func (o *Implicit) iterations(t float64) (err error) {

	// message
	d := o.Dom
	var dymax float64
	if o.Dat.ShowR {
		io.Pf("\n%13s%4s%23s\n", "t", "it", "max|Δy|")
	}

	// iterations
	for o.Nit = 1; o.Nit <= o.Dat.NmaxIt; o.Nit++ {

		// inflow temperatures from current outflow temperatures
		err = d.UpdateInflows(t)
		if err != nil {
			return
		}

		// solve
		dymax, err = d.Solve()
		if err != nil {
			return
		}
		if o.Dat.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", t, o.Nit, dymax)
		}

		// check convergence
		if o.Nit > 1 && dymax < o.Dat.Atol {
			log.WithFields(log.Fields{"t": t, "it": o.Nit, "dymax": dymax}).Debug("time step converged")
			return
		}
	}
	return chk.Err("Picard iterations did not converge after %d iterations at t=%g. max|Δy|=%g", o.Dat.NmaxIt, t, dymax)
}
