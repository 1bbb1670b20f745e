// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// U1 implements a single U-tube BHE
//
//  Unknowns: T_i1 (inflow pipe), T_o1 (outflow pipe), T_g1, T_g2 (grout zones)
//  Exchange: Φ_fig (i1-g1), Φ_fog (o1-g2), Φ_gg (g1-g2), Φ_gs (g1,g2-soil)
type U1 struct {
	Base

	// flow
	U  float64 // velocity in each pipe
	Nu float64 // Nusselt number in each pipe

	// cross-section areas
	CsaI, CsaO, CsaG float64
}

// add model to factory
func init() {
	allocators["1U"] = func() Model { return new(U1) }
}

// Init initialises model
func (o *U1) Init(cfg *Config, curves Curves) (err error) {
	if cfg.Pipe.Omega <= 0 {
		return chk.Err("BHE %q: shank spacing omega must be positive. omega=%g", cfg.Name, cfg.Pipe.Omega)
	}
	D, ri, ro := cfg.Geo.Diameter, cfg.Pipe.Rin, cfg.Pipe.Rout
	o.CsaI = math.Pi * ri * ri
	o.CsaO = math.Pi * ri * ri
	o.CsaG = math.Pi * (0.125*D*D - ro*ro)
	return o.init(cfg, curves, 4, o.calc1U)
}

// Topology returns "1U"
func (o *U1) Topology() string { return "1U" }

// NumUnknowns returns the number of unknowns
func (o *U1) NumUnknowns() int { return 4 }

// NumGroutZones returns the number of grout zones
func (o *U1) NumGroutZones() int { return 2 }

// BcPairs returns the (inflow, outflow) unknowns
func (o *U1) BcPairs() [][2]int { return [][2]int{{0, 1}} }

// calc1U computes flow properties and the resistance network
func (o *U1) calc1U() (err error) {
	p := PipeFlow(o.Cfg.Pipe.Rin, o.Cfg.Geo.Length, &o.Cfg.Fluid, o.Qr)
	o.U, o.Nu = p.U, p.Nu
	return o.resistances()
}

// resistances computes the thermal resistances; see Eqs. 29-52 in [1]
func (o *U1) resistances() (err error) {

	// auxiliary
	D := o.Cfg.Geo.Diameter
	ω := o.Cfg.Pipe.Omega
	λr, λg, λp := o.Cfg.Fluid.Lambda, o.Cfg.Grout.Lambda, o.Cfg.Pipe.LambdaP
	ri, ro := o.Cfg.Pipe.Rin, o.Cfg.Pipe.Rout
	ext, rarb := &o.Cfg.Rext, &o.Cfg.RaRb

	// advective and pipe wall resistances
	Radv := 1.0 / (o.Nu * λr * math.Pi)
	Rcon := math.Log(ro/ri) / (2.0 * math.Pi * λp)

	// grout
	d0 := 2.0 * ro
	chi := math.Log(math.Sqrt(D*D+2*d0*d0)/2/d0) / math.Log(D/math.Sqrt2/d0)
	var Rg float64
	if rarb.Use {
		Rg = 2*rarb.Rb - Radv - Rcon
	} else {
		Rg = math.Acosh((D*D+d0*d0-ω*ω)/(2*D*d0)) / (2 * math.Pi * λg) * (1.601 - 0.888*ω/D)
	}
	r := &o.Res
	r.G = Rg

	// fluid-grout
	if ext.Use {
		r.Fig, r.Fog = ext.Rfig, ext.Rfog
	} else {
		r.Fig = Radv + Rcon + chi*Rg
		r.Fog = Radv + Rcon + chi*Rg
	}

	// grout-soil
	if ext.Use {
		r.Gs = ext.Rgs
	} else {
		r.Gs = (1 - chi) * Rg
	}

	// grout-grout
	var Rar float64
	if rarb.Use {
		Rar = rarb.Ra - 2*(Radv+Rcon)
	} else {
		Rar = math.Acosh((2.0*ω*ω-d0*d0)/d0/d0) / (2.0 * math.Pi * λg)
	}
	if ext.Use {
		r.Gg1 = ext.Rgg1
	} else {
		r.Gg1 = interGroutResistance(r.Gs, Rar, chi*Rg)
	}
	if math.IsInf(r.Gg1, 0) || math.IsNaN(r.Gg1) {
		return chk.Err("BHE %q: grout thermal resistance is not a finite number. R_gg=%g", o.Cfg.Name, r.Gg1)
	}

	// correction
	o.Chi, err = correctChi(o.Cfg.Name, chi, groutConstraint(r.Gg1, r.Gs) < 0, ext.Use || rarb.Use, func(chi float64) bool {
		r.Gs = (1 - chi) * Rg
		r.Gg1 = interGroutResistance(r.Gs, Rar, chi*Rg)
		return groutConstraint(r.Gg1, r.Gs) < 0
	})
	if err != nil {
		return
	}
	o.setPhi(r.Fig, r.Fog, r.Gg1, r.Gs)
	return
}

// MassCoeff returns the coefficient of mass matrix
func (o *U1) MassCoeff(idx int) float64 {
	switch idx {
	case 0:
		return o.fluidMass(o.CsaI)
	case 1:
		return o.fluidMass(o.CsaO)
	case 2, 3:
		return o.groutMass(o.CsaG)
	}
	o.invalid("mass coefficient", idx)
	return 0
}

// LaplaceCoeff returns the coefficient of Laplace matrix
func (o *U1) LaplaceCoeff(idx int) float64 {
	switch idx {
	case 0:
		return o.fluidLaplace(o.U, o.CsaI)
	case 1:
		return o.fluidLaplace(o.U, o.CsaO)
	case 2, 3:
		return o.groutLaplace(o.CsaG)
	}
	o.invalid("laplace coefficient", idx)
	return 0
}

// AdvectionVector returns the advection vector
func (o *U1) AdvectionVector(idx int) []float64 {
	switch idx {
	case 0:
		return o.fluidAdvection(o.U, o.CsaI, -1)
	case 1:
		return o.fluidAdvection(o.U, o.CsaO, +1)
	case 2, 3:
		return []float64{0, 0, 0}
	}
	o.invalid("advection vector", idx)
	return nil
}

// AddRMatrices adds the contribution of exchange term to the R, R_πs and R_s matrices
func (o *U1) AddRMatrices(term, nn int, loc [][]float64, R, Rps, Rs [][]float64) {
	switch term {
	case 0: // fig
		addExchange(R, loc, nn, 0, 2)
	case 1: // fog
		addExchange(R, loc, nn, 1, 3)
	case 2: // gg
		addExchange(R, loc, nn, 2, 3)
	case 3: // gs
		addSoilExchange(R, Rps, Rs, loc, nn, 2)
		addSoilExchange(R, Rps, Rs, loc, nn, 3)
	default:
		o.invalid("R matrices", term)
	}
}
