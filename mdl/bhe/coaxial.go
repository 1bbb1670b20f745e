// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Coaxial holds the resistance network of coaxial exchangers
//
//  Unknowns: T_i1 (inflow), T_o1 (outflow), T_g1 (grout)
//  Exchange: Φ_f?g (annulus-grout), Φ_ff (inner pipe-annulus), Φ_gs (grout-soil)
//
//  In CXA, the refrigerant enters through the annulus and leaves through the inner pipe;
//  in CXC, it enters through the inner pipe and leaves through the annulus.
type Coaxial struct {
	Base

	// flow
	Inner   FlowProps // inner pipe
	Annulus FlowProps // annulus

	// cross-section areas
	CsaInner, CsaAnnulus, CsaG float64

	annulusIn bool // refrigerant enters through the annulus (CXA)
}

// CXA implements a coaxial BHE with annular inlet
type CXA struct {
	Coaxial
}

// CXC implements a coaxial BHE with centred inlet
type CXC struct {
	Coaxial
}

// add models to factory
func init() {
	allocators["CXA"] = func() Model { return &CXA{Coaxial{annulusIn: true}} }
	allocators["CXC"] = func() Model { return &CXC{Coaxial{annulusIn: false}} }
}

// Topology returns "CXA"
func (o *CXA) Topology() string { return "CXA" }

// Topology returns "CXC"
func (o *CXC) Topology() string { return "CXC" }

// Init initialises model
func (o *Coaxial) Init(cfg *Config, curves Curves) (err error) {
	D := cfg.Geo.Diameter
	ri, ro := cfg.Pipe.Rin, cfg.Pipe.Rout
	rw := ri + cfg.Pipe.Bin // outer radius of inner pipe
	if rw >= ro {
		return chk.Err("BHE %q: inner pipe (r_inner + b_in = %g) does not fit into outer pipe (r_outer = %g)", cfg.Name, rw, ro)
	}
	rb := ro + cfg.Pipe.Bout // outer radius of outer pipe
	if 2*rb >= D {
		return chk.Err("BHE %q: outer pipe (r_outer + b_out = %g) does not fit into borehole (diameter = %g)", cfg.Name, rb, D)
	}
	o.CsaInner = math.Pi * ri * ri
	o.CsaAnnulus = math.Pi * (ro*ro - rw*rw)
	o.CsaG = math.Pi * (0.25*D*D - rb*rb)
	return o.init(cfg, curves, 3, o.calcCoaxial)
}

// NumUnknowns returns the number of unknowns
func (o *Coaxial) NumUnknowns() int { return 3 }

// NumGroutZones returns the number of grout zones
func (o *Coaxial) NumGroutZones() int { return 1 }

// BcPairs returns the (inflow, outflow) unknowns
func (o *Coaxial) BcPairs() [][2]int { return [][2]int{{0, 1}} }

// calcCoaxial computes flow properties and the resistance network
func (o *Coaxial) calcCoaxial() (err error) {
	p, L := &o.Cfg.Pipe, o.Cfg.Geo.Length
	o.Inner = PipeFlow(p.Rin, L, &o.Cfg.Fluid, o.Qr)
	o.Annulus = AnnulusFlow(p.Rout, p.Rin+p.Bin, L, &o.Cfg.Fluid, o.Qr)
	o.resistances()
	return
}

// resistances computes the thermal resistances; see [2]
func (o *Coaxial) resistances() {

	// auxiliary
	D := o.Cfg.Geo.Diameter
	λr, λg, λp := o.Cfg.Fluid.Lambda, o.Cfg.Grout.Lambda, o.Cfg.Pipe.LambdaP
	ri, ro := o.Cfg.Pipe.Rin, o.Cfg.Pipe.Rout
	rw, rb := ri+o.Cfg.Pipe.Bin, ro+o.Cfg.Pipe.Bout
	ext, rarb := &o.Cfg.Rext, &o.Cfg.RaRb
	dh := 2.0 * (ro - rw)

	// advective resistances: inner pipe, annulus to inner pipe wall, annulus to outer pipe wall
	RadvInner := 1.0 / (o.Inner.Nu * λr * math.Pi)
	RadvA := dh / (o.Annulus.Nu * λr * math.Pi * 2.0 * rw)
	RadvB := dh / (o.Annulus.Nu * λr * math.Pi * 2.0 * ro)

	// pipe walls
	RconInner := math.Log(rw/ri) / (2.0 * math.Pi * λp)
	RconOuter := math.Log(rb/ro) / (2.0 * math.Pi * λp)

	// grout
	d0 := 2.0 * rb
	chi := math.Log(math.Sqrt(D*D+d0*d0)/math.Sqrt2/d0) / math.Log(D/d0)
	var Rg float64
	if rarb.Use {
		Rg = rarb.Rb - RadvB - RconOuter
	} else {
		Rg = math.Log(D/d0) / (2.0 * math.Pi * λg)
	}
	r := &o.Res
	r.G = Rg

	// annulus-grout, inner pipe-annulus and grout-soil
	Rfg := RadvB + RconOuter + chi*Rg
	r.Ff = RadvInner + RadvA + RconInner
	r.Gs = (1 - chi) * Rg
	if ext.Use {
		if o.annulusIn {
			Rfg = ext.Rfig
		} else {
			Rfg = ext.Rfog
		}
		r.Ff, r.Gs = ext.Rff, ext.Rgs
	}
	if o.annulusIn {
		r.Fig = Rfg
	} else {
		r.Fog = Rfg
	}
	o.setPhi(Rfg, r.Ff, r.Gs)
}

// channel returns the velocity and cross-section area of fluid unknown idx
func (o *Coaxial) channel(idx int) (u, csa float64) {
	if (idx == 0) == o.annulusIn {
		return o.Annulus.U, o.CsaAnnulus
	}
	return o.Inner.U, o.CsaInner
}

// MassCoeff returns the coefficient of mass matrix
func (o *Coaxial) MassCoeff(idx int) float64 {
	switch idx {
	case 0, 1:
		_, csa := o.channel(idx)
		return o.fluidMass(csa)
	case 2:
		return o.groutMass(o.CsaG)
	}
	o.invalid("mass coefficient", idx)
	return 0
}

// LaplaceCoeff returns the coefficient of Laplace matrix
func (o *Coaxial) LaplaceCoeff(idx int) float64 {
	switch idx {
	case 0, 1:
		return o.fluidLaplace(o.channel(idx))
	case 2:
		return o.groutLaplace(o.CsaG)
	}
	o.invalid("laplace coefficient", idx)
	return 0
}

// AdvectionVector returns the advection vector
func (o *Coaxial) AdvectionVector(idx int) []float64 {
	switch idx {
	case 0:
		u, csa := o.channel(idx)
		return o.fluidAdvection(u, csa, -1)
	case 1:
		u, csa := o.channel(idx)
		return o.fluidAdvection(u, csa, +1)
	case 2:
		return []float64{0, 0, 0}
	}
	o.invalid("advection vector", idx)
	return nil
}

// AddRMatrices adds the contribution of exchange term to the R, R_πs and R_s matrices
func (o *Coaxial) AddRMatrices(term, nn int, loc [][]float64, R, Rps, Rs [][]float64) {
	switch term {
	case 0: // annulus-grout
		if o.annulusIn {
			addExchange(R, loc, nn, 0, 2)
		} else {
			addExchange(R, loc, nn, 1, 2)
		}
	case 1: // ff
		addExchange(R, loc, nn, 0, 1)
	case 2: // gs
		addSoilExchange(R, Rps, Rs, loc, nn, 2)
	default:
		o.invalid("R matrices", term)
	}
}
