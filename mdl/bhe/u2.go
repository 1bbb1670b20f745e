// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DischargeType defines how the flow is divided among the circuits of a 2U exchanger
type DischargeType int

// discharge types
const (
	Parallel DischargeType = iota // flow is split between the two U-tubes
	Serial                        // the two U-tubes are connected in series
)

// DischargeTypeFromString parses "parallel" or "serial"; an empty string means parallel
func DischargeTypeFromString(s string) (DischargeType, error) {
	switch s {
	case "", "parallel", "PARALLEL":
		return Parallel, nil
	case "serial", "SERIAL":
		return Serial, nil
	}
	return Parallel, chk.Err("discharge type %q is not available", s)
}

func (d DischargeType) String() string {
	if d == Serial {
		return "serial"
	}
	return "parallel"
}

// U2 implements a double U-tube BHE
//
//  Unknowns: T_i1, T_i2 (inflow pipes), T_o1, T_o2 (outflow pipes), T_g1..T_g4 (grout zones)
//  Exchange: Φ_fig (i1-g1, i2-g2), Φ_fog (o1-g3, o2-g4), Φ_gg1 (g1-g3, g2-g4),
//            Φ_gg2 (g1-g2, g3-g4), Φ_gs (g1..g4-soil)
type U2 struct {
	Base

	// flow
	U  float64 // velocity in each pipe
	Nu float64 // Nusselt number in each pipe

	// cross-section areas
	CsaI, CsaO, CsaG float64
}

// add model to factory
func init() {
	allocators["2U"] = func() Model { return new(U2) }
}

// Init initialises model
func (o *U2) Init(cfg *Config, curves Curves) (err error) {
	if cfg.Pipe.Omega <= 0 {
		return chk.Err("BHE %q: shank spacing omega must be positive. omega=%g", cfg.Name, cfg.Pipe.Omega)
	}
	D, ri, ro := cfg.Geo.Diameter, cfg.Pipe.Rin, cfg.Pipe.Rout
	o.CsaI = math.Pi * ri * ri
	o.CsaO = math.Pi * ri * ri
	o.CsaG = math.Pi * (0.0625*D*D - ro*ro)
	return o.init(cfg, curves, 5, o.calc2U)
}

// Topology returns "2U"
func (o *U2) Topology() string { return "2U" }

// NumUnknowns returns the number of unknowns
func (o *U2) NumUnknowns() int { return 8 }

// NumGroutZones returns the number of grout zones
func (o *U2) NumGroutZones() int { return 4 }

// BcPairs returns the (inflow, outflow) unknowns of both circuits
func (o *U2) BcPairs() [][2]int { return [][2]int{{0, 2}, {1, 3}} }

// calc2U computes flow properties and the resistance network
func (o *U2) calc2U() (err error) {
	ri, L := o.Cfg.Pipe.Rin, o.Cfg.Geo.Length
	f := &o.Cfg.Fluid
	o.U = PipeFlowVelocity(o.Qr, ri)
	if o.Cfg.Discharge == Parallel {
		o.U *= 0.5
	}
	Re := ReynoldsNumber(math.Abs(o.U), 2.0*ri, f.Mu, f.Rho)
	Pr := PrandtlNumber(f.Mu, f.Cp, f.Lambda)
	o.Nu = NusseltNumber2U(Re, Pr, 2.0*ri, L)
	return o.resistances()
}

// resistances computes the thermal resistances; see [1] and [2]
//  Note: the analytic grout resistance divides by λg² as in the calibrated correlation
func (o *U2) resistances() (err error) {

	// auxiliary
	D := o.Cfg.Geo.Diameter
	λr, λg, λp := o.Cfg.Fluid.Lambda, o.Cfg.Grout.Lambda, o.Cfg.Pipe.LambdaP
	ri, ro := o.Cfg.Pipe.Rin, o.Cfg.Pipe.Rout
	ext, rarb := &o.Cfg.Rext, &o.Cfg.RaRb

	// advective and pipe wall resistances
	Radv := 1.0 / (o.Nu * λr * math.Pi)
	Rcon := math.Log(ro/ri) / (2.0 * math.Pi * λp)

	// grout
	d0 := 2.0 * ri
	s := o.Cfg.Pipe.Omega * math.Sqrt2
	chi := math.Log(math.Sqrt(D*D+4*d0*d0)/2/math.Sqrt2/d0) / math.Log(D/2/d0)
	var Rg float64
	if rarb.Use {
		Rg = 4*rarb.Rb - Radv - Rcon
	} else {
		Rg = math.Acosh((D*D+d0*d0-s*s)/(2*D*d0)) / (2 * math.Pi * λg * λg) * (3.098 - 4.432*s/D + 2.364*s*s/D/D)
	}
	r := &o.Res
	r.G = Rg

	// fluid-grout
	if ext.Use {
		r.Fig, r.Fog = ext.Rfig, ext.Rfog
	} else {
		r.Fig = 2*Radv + 2*Rcon + chi*Rg
		r.Fog = 2*Radv + 2*Rcon + chi*Rg
	}

	// grout-soil
	if ext.Use {
		r.Gs = ext.Rgs
	} else {
		r.Gs = (1 - chi) * Rg
	}

	// grout-grout
	var Rar1, Rar2 float64
	if rarb.Use {
		Rar1 = (2.0 + math.Sqrt2) * Rg * (rarb.Ra - Radv - Rcon) / (Rg + rarb.Ra - Radv - Rcon)
		Rar2 = math.Sqrt2 * Rar1
	} else {
		Rar1 = math.Acosh((s*s-d0*d0)/d0/d0) / (2.0 * math.Pi * λg)
		Rar2 = math.Acosh((2.0*s*s-d0*d0)/d0/d0) / (2.0 * math.Pi * λg)
	}
	if ext.Use {
		r.Gg1, r.Gg2 = ext.Rgg1, ext.Rgg2
	} else {
		r.Gg1 = interGroutResistance(r.Gs, Rar1, chi*Rg)
		r.Gg2 = interGroutResistance(r.Gs, Rar2, chi*Rg)
	}
	for _, v := range []float64{r.Gg1, r.Gg2} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return chk.Err("BHE %q: grout thermal resistance is not a finite number. R_gg1=%g, R_gg2=%g", o.Cfg.Name, r.Gg1, r.Gg2)
		}
	}

	// correction
	violated := func() bool {
		return groutConstraint(r.Gg1, r.Gs) < 0 || groutConstraint(r.Gg2, r.Gs) < 0
	}
	o.Chi, err = correctChi(o.Cfg.Name, chi, violated(), ext.Use || rarb.Use, func(chi float64) bool {
		r.Gs = (1 - chi) * Rg
		r.Gg1 = interGroutResistance(r.Gs, Rar1, chi*Rg)
		r.Gg2 = interGroutResistance(r.Gs, Rar2, chi*Rg)
		return violated()
	})
	if err != nil {
		return
	}
	o.setPhi(r.Fig, r.Fog, r.Gg1, r.Gg2, r.Gs)
	return
}

// MassCoeff returns the coefficient of mass matrix
func (o *U2) MassCoeff(idx int) float64 {
	switch idx {
	case 0, 1:
		return o.fluidMass(o.CsaI)
	case 2, 3:
		return o.fluidMass(o.CsaO)
	case 4, 5, 6, 7:
		return o.groutMass(o.CsaG)
	}
	o.invalid("mass coefficient", idx)
	return 0
}

// LaplaceCoeff returns the coefficient of Laplace matrix
func (o *U2) LaplaceCoeff(idx int) float64 {
	switch idx {
	case 0, 1:
		return o.fluidLaplace(o.U, o.CsaI)
	case 2, 3:
		return o.fluidLaplace(o.U, o.CsaO)
	case 4, 5, 6, 7:
		return o.groutLaplace(o.CsaG)
	}
	o.invalid("laplace coefficient", idx)
	return 0
}

// AdvectionVector returns the advection vector
func (o *U2) AdvectionVector(idx int) []float64 {
	switch idx {
	case 0, 1:
		return o.fluidAdvection(o.U, o.CsaI, -1)
	case 2, 3:
		return o.fluidAdvection(o.U, o.CsaO, +1)
	case 4, 5, 6, 7:
		return []float64{0, 0, 0}
	}
	o.invalid("advection vector", idx)
	return nil
}

// AddRMatrices adds the contribution of exchange term to the R, R_πs and R_s matrices
func (o *U2) AddRMatrices(term, nn int, loc [][]float64, R, Rps, Rs [][]float64) {
	switch term {
	case 0: // fig
		addExchange(R, loc, nn, 0, 4)
		addExchange(R, loc, nn, 1, 5)
	case 1: // fog
		addExchange(R, loc, nn, 2, 6)
		addExchange(R, loc, nn, 3, 7)
	case 2: // gg1
		addExchange(R, loc, nn, 4, 6)
		addExchange(R, loc, nn, 5, 7)
	case 3: // gg2
		addExchange(R, loc, nn, 4, 5)
		addExchange(R, loc, nn, 6, 7)
	case 4: // gs
		for g := 4; g < 8; g++ {
			addSoilExchange(R, Rps, Rs, loc, nn, g)
		}
	default:
		o.invalid("R matrices", term)
	}
}
