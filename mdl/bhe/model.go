// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bhe implements thermal-resistance network models of borehole heat exchangers (BHE)
//  References:
//   [1] Diersch HJG, Bauer D, Heidemann W, Rühaak W and Schätzl P (2011) Finite element
//       modeling of borehole heat exchanger systems: Part 1. Fundamentals. Computers &
//       Geosciences, 37(8), 1122-1135, http://dx.doi.org/10.1016/j.cageo.2010.08.003
//   [2] Diersch HJG (2013) FEFLOW White Papers Vol. V, DHI-WASY GmbH
package bhe

import (
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
)

// Model defines a BHE: a resistance network of a given topology (1U, 2U, CXA, CXC)
// together with the state of its inflow boundary condition.
//
//  Unknowns are ordered as: fluid channels first, then grout zones. Exchange terms index the
//  conductances Φ; e.g. for 1U: Φ_fig, Φ_fog, Φ_gg, Φ_gs.
//
//  Note: the network state is modified by Init, UpdateFlowRate, UpdateFlowRateFromCurve and
//  TinByTout; the remaining methods only read it.
type Model interface {
	Init(cfg *Config, curves Curves) error // initialises model and computes the network
	Name() string                          // name of BHE
	Topology() string                      // "1U", "2U", "CXA" or "CXC"
	Params() *Config                       // input data

	// unknowns and coefficients
	NumUnknowns() int                                                   // number of temperature unknowns
	NumGroutZones() int                                                 // number of grout zones
	NumExchangeTerms() int                                              // number of conductances Φ
	MassCoeff(idx int) float64                                          // coefficient of mass matrix
	LaplaceCoeff(idx int) float64                                       // coefficient of Laplace matrix
	AdvectionVector(idx int) []float64                                  // [3] advection along the borehole axis (z)
	HeatExchangeCoeff(idx int) float64                                  // conductance Φ of exchange term idx
	AddRMatrices(term, nn int, loc [][]float64, R, Rps, Rs [][]float64) // adds exchange term to R blocks
	BcPairs() [][2]int                                                  // (inflow, outflow) unknowns of each circuit

	// flow rate and boundary condition
	FlowRate() float64                          // current flow rate Q_r
	UpdateFlowRate(flowRate float64) error      // sets Q_r and recomputes the network
	UpdateFlowRateFromCurve(t float64) error    // sets Q_r from flow_rate_curve, if any
	TinByTout(Tout, t float64) (float64, error) // inflow temperature from outflow temperature

	base() *Base
}

// New returns a new model
func New(topology string) (Model, error) {
	allocator, ok := allocators[topology]
	if !ok {
		return nil, chk.Err("model %q is not available in 'bhe' database", topology)
	}
	return allocator(), nil
}

// NewWithConfig allocates and initialises a new model
func NewWithConfig(topology string, cfg *Config, curves Curves) (mdl Model, err error) {
	mdl, err = New(topology)
	if err != nil {
		return
	}
	err = mdl.Init(cfg, curves)
	if err != nil {
		mdl = nil
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Base holds data shared by all topologies
type Base struct {
	Cfg Config      // input data
	Bnd *Boundary   // inflow boundary
	Qr  float64     // current flow rate
	Phi []float64   // conductances Φ of exchange terms
	Chi []float64   // χ after each correction step; empty if no correction was applied
	Res Resistances // current resistances

	calc func() error // recomputes velocities, Nusselt numbers and the network
}

// Resistances holds the thermal resistances of a network. Unused entries are zero.
type Resistances struct {
	Fig float64 // fluid(inflow) to grout
	Fog float64 // fluid(outflow) to grout
	Ff  float64 // fluid to fluid (coaxial)
	Gg1 float64 // grout to grout
	Gg2 float64 // grout to grout (2U)
	Gs  float64 // grout to soil
	G   float64 // grout bulk
}

// init initialises the base structure
func (o *Base) init(cfg *Config, curves Curves, nterms int, calc func() error) (err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	o.Cfg = *cfg
	o.Bnd, err = NewBoundary(&o.Cfg, curves)
	if err != nil {
		return
	}
	o.Qr = cfg.FlowRate
	o.Phi = make([]float64, nterms)
	o.calc = calc
	return o.calc()
}

func (o *Base) base() *Base { return o }

// Name returns the name of BHE
func (o *Base) Name() string { return o.Cfg.Name }

// Params returns the input data
func (o *Base) Params() *Config { return &o.Cfg }

// FlowRate returns the current flow rate
func (o *Base) FlowRate() float64 { return o.Qr }

// UpdateFlowRate sets the flow rate and recomputes all flow dependent coefficients
func (o *Base) UpdateFlowRate(flowRate float64) error {
	log.WithFields(log.Fields{"bhe": o.Cfg.Name, "Q_r": flowRate}).Debug("flow rate updated")
	o.Qr = flowRate
	return o.calc()
}

// UpdateFlowRateFromCurve sets the flow rate from flow_rate_curve at time t, if available
func (o *Base) UpdateFlowRateFromCurve(t float64) error {
	if o.Bnd.FlowRateCurve == nil {
		return nil
	}
	return o.UpdateFlowRate(o.Bnd.FlowRateCurve.Value(t))
}

// TinByTout computes the inflow temperature from the outflow temperature at time t
func (o *Base) TinByTout(Tout, t float64) (float64, error) {
	return o.Bnd.TinByTout(o, &o.Cfg.Fluid, Tout, t)
}

// NumExchangeTerms returns the number of conductances
func (o *Base) NumExchangeTerms() int { return len(o.Phi) }

// HeatExchangeCoeff returns the conductance of exchange term idx
func (o *Base) HeatExchangeCoeff(idx int) float64 {
	if idx < 0 || idx >= len(o.Phi) {
		chk.Panic("BHE %q: index of heat exchange coefficient %d is invalid", o.Cfg.Name, idx)
	}
	return o.Phi[idx]
}

// setPhi computes Φ = 1/R for all exchange terms
func (o *Base) setPhi(R ...float64) {
	for i, r := range R {
		o.Phi[i] = 1.0 / r
	}
}

// fluid and grout coefficients ////////////////////////////////////////////////////////////////////

func (o *Base) fluidMass(csa float64) float64 {
	return o.Cfg.Fluid.Rho * o.Cfg.Fluid.Cp * csa
}

func (o *Base) fluidLaplace(u, csa float64) float64 {
	f := &o.Cfg.Fluid
	if u < 0 {
		u = -u
	}
	return (f.Lambda + f.Rho*f.Cp*f.AlphaL*u) * csa
}

// fluidAdvection returns the advection vector; sign is -1 for downward (inflow) and +1 for
// upward (outflow) channels
func (o *Base) fluidAdvection(u, csa, sign float64) []float64 {
	return []float64{0, 0, sign * o.Cfg.Fluid.Rho * o.Cfg.Fluid.Cp * u * csa}
}

func (o *Base) groutMass(csa float64) float64 {
	g := &o.Cfg.Grout
	return (1.0 - g.Porosity) * g.Rho * g.Cp * csa
}

func (o *Base) groutLaplace(csa float64) float64 {
	g := &o.Cfg.Grout
	return (1.0 - g.Porosity) * g.Lambda * csa
}

func (o *Base) invalid(what string, idx int) {
	chk.Panic("BHE %q: index of unknown %d is invalid for %s", o.Cfg.Name, idx, what)
}

// R matrices ///////////////////////////////////////////////////////////////////////////////////////

// addExchange adds the exchange between unknowns a and b to R
//   R[a,a] += loc   R[b,b] += loc   R[a,b] -= loc   R[b,a] -= loc
func addExchange(R, loc [][]float64, nn, a, b int) {
	for i := 0; i < nn; i++ {
		for j := 0; j < nn; j++ {
			v := loc[i][j]
			R[a*nn+i][a*nn+j] += v
			R[b*nn+i][b*nn+j] += v
			R[a*nn+i][b*nn+j] -= v
			R[b*nn+i][a*nn+j] -= v
		}
	}
}

// addSoilExchange adds the exchange between grout unknown g and the soil
//   R[g,g] += loc   Rps[g,s] -= loc   Rs[s,s] += loc
func addSoilExchange(R, Rps, Rs, loc [][]float64, nn, g int) {
	for i := 0; i < nn; i++ {
		for j := 0; j < nn; j++ {
			v := loc[i][j]
			R[g*nn+i][g*nn+j] += v
			Rps[g*nn+i][j] -= v
			Rs[i][j] += v
		}
	}
}
