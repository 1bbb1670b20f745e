// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"

	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
)

// EpsFlowRate is the flow rate assigned to a switched-off BHE
const EpsFlowRate = 1.0e-12

// BoundaryType defines how the inflow temperature is obtained
type BoundaryType int

// boundary types
const (
	FixedInflowTemp BoundaryType = iota
	FixedInflowTempCurve
	PowerInWatt
	FixedTempDiff
	PowerInWattCurveFixedDt
	BuildingPowerInWattCurveFixedDt
	BuildingPowerInWattCurveFixedFlowRate
	PowerInWattCurveFixedFlowRate
)

var boundaryNames = map[BoundaryType]string{
	FixedInflowTemp:                       "FIXED_INFLOW_TEMP",
	FixedInflowTempCurve:                  "FIXED_INFLOW_TEMP_CURVE",
	PowerInWatt:                           "POWER_IN_WATT",
	FixedTempDiff:                         "FIXED_TEMP_DIFF",
	PowerInWattCurveFixedDt:               "POWER_IN_WATT_CURVE_FIXED_DT",
	BuildingPowerInWattCurveFixedDt:       "BHE_BOUND_BUILDING_POWER_IN_WATT_CURVE_FIXED_DT",
	BuildingPowerInWattCurveFixedFlowRate: "BHE_BOUND_BUILDING_POWER_IN_WATT_CURVE_FIXED_FLOW_RATE",
	PowerInWattCurveFixedFlowRate:         "POWER_IN_WATT_CURVE_FIXED_FLOW_RATE",
}

func (b BoundaryType) String() string {
	if s, ok := boundaryNames[b]; ok {
		return s
	}
	return "UNKNOWN"
}

// BoundaryTypeFromString parses a boundary type
func BoundaryTypeFromString(s string) (BoundaryType, error) {
	for b, name := range boundaryNames {
		if name == s {
			return b, nil
		}
	}
	return 0, chk.Err("boundary type %q is not available", s)
}

// RequiredCurves returns the names of curves required by this boundary type
func (b BoundaryType) RequiredCurves() []string {
	switch b {
	case FixedInflowTempCurve:
		return []string{InflowTempCurve}
	case PowerInWattCurveFixedDt, PowerInWattCurveFixedFlowRate:
		return []string{PowerCurve}
	case BuildingPowerInWattCurveFixedDt, BuildingPowerInWattCurveFixedFlowRate:
		return []string{PowerCurve, HeatingCopCurve, CoolingCopCurve}
	}
	return nil
}

// flowRateUpdater is implemented by resistance networks whose coefficients depend on the flow rate
type flowRateUpdater interface {
	FlowRate() float64
	UpdateFlowRate(flowRate float64) error
}

// Boundary holds the state of the inflow boundary condition
type Boundary struct {

	// input
	Type      BoundaryType // boundary type
	Power     float64      // power [W]
	DeltaT    float64      // inflow-outflow temperature difference
	Threshold float64      // switch-off power threshold
	InflowT   float64      // fixed inflow temperature

	// curves
	PowerCurve    Curve // power versus time (or building load versus time)
	FlowRateCurve Curve // flow rate versus time; may be nil
	HeatingCop    Curve // heating COP versus outflow temperature
	CoolingCop    Curve // cooling COP versus outflow temperature
	InflowCurve   Curve // inflow temperature versus time

	// derived
	name    string  // name of BHE; for messages
	off     bool    // switched off with EpsFlowRate
	qBefore float64 // flow rate before switch-off
}

// NewBoundary returns a new boundary state. Curves required by the boundary type are
// resolved from curves; a missing curve is an error.
func NewBoundary(cfg *Config, curves Curves) (o *Boundary, err error) {
	o = &Boundary{
		Type:      cfg.Bound,
		Power:     cfg.Power,
		DeltaT:    cfg.DeltaT,
		Threshold: cfg.Threshold,
		InflowT:   cfg.InflowT,
		name:      cfg.Name,
	}
	if _, ok := boundaryNames[o.Type]; !ok {
		return nil, chk.Err("BHE %q: boundary type %d is invalid", cfg.Name, o.Type)
	}
	for _, name := range o.Type.RequiredCurves() {
		var c Curve
		if c, err = curves.Get(name); err != nil {
			return nil, chk.Err("BHE %q with boundary %v:\n%v", cfg.Name, o.Type, err)
		}
		switch name {
		case PowerCurve:
			o.PowerCurve = c
		case HeatingCopCurve:
			o.HeatingCop = c
		case CoolingCopCurve:
			o.CoolingCop = c
		case InflowTempCurve:
			o.InflowCurve = c
		}
	}
	if cfg.UseQcurve {
		if o.FlowRateCurve, err = curves.Get(FlowRateCurve); err != nil {
			return nil, chk.Err("BHE %q:\n%v", cfg.Name, err)
		}
	}
	return
}

// TinByTout computes the inflow temperature from the outflow temperature at time t.
// The flow rate of net is updated when the boundary type requires it.
func (o *Boundary) TinByTout(net flowRateUpdater, fluid *Refrigerant, Tout, t float64) (Tin float64, err error) {
	ρc := fluid.Rho * fluid.Cp
	switch o.Type {

	case FixedInflowTemp:
		return o.InflowT, nil

	case FixedInflowTempCurve:
		return o.InflowCurve.Value(t), nil

	case PowerInWatt:
		if err = o.flowFromCurve(net, t); err != nil {
			return
		}
		return o.Power/net.FlowRate()/ρc + Tout, nil

	case FixedTempDiff:
		if err = o.flowFromCurve(net, t); err != nil {
			return
		}
		return Tout + o.DeltaT, nil

	case PowerInWattCurveFixedDt:
		P := o.PowerCurve.Value(t)
		s := 1.0
		if P < 0 {
			s = -1.0
		}
		return o.fixedDt(net, ρc, P, s, Tout)

	case BuildingPowerInWattCurveFixedDt:
		Pb := o.PowerCurve.Value(t)
		s := 1.0
		if Pb <= 0 {
			s = -1.0
		}
		return o.fixedDt(net, ρc, o.buildingToBhe(Pb, Tout), s, Tout)

	case BuildingPowerInWattCurveFixedFlowRate:
		P := o.buildingToBhe(o.PowerCurve.Value(t), Tout)
		return o.fixedFlowRate(net, ρc, P, Tout, t)

	case PowerInWattCurveFixedFlowRate:
		return o.fixedFlowRate(net, ρc, o.PowerCurve.Value(t), Tout, t)
	}

	log.WithFields(log.Fields{"bhe": o.name, "type": int(o.Type)}).Debug("unmatched boundary type: inflow temperature equals outflow temperature")
	return Tout, nil
}

// buildingToBhe converts the building load Pb into the power extracted from (or injected into)
// the ground using the COP of the heat pump at the outflow temperature
func (o *Boundary) buildingToBhe(Pb, Tout float64) float64 {
	if Pb <= 0 {
		cop := o.HeatingCop.Value(Tout)
		return Pb * (cop - 1.0) / cop
	}
	cop := o.CoolingCop.Value(Tout)
	return Pb * (cop + 1.0) / cop
}

// fixedDt solves the flow rate from ΔT; s is the sign of ΔT
func (o *Boundary) fixedDt(net flowRateUpdater, ρc, P, s, Tout float64) (Tin float64, err error) {
	if math.Abs(P) > o.Threshold {
		o.off = false
		if err = net.UpdateFlowRate(P / (s * o.DeltaT) / ρc); err != nil {
			return
		}
		return Tout + s*o.DeltaT, nil
	}
	return Tout, o.switchOff(net)
}

// fixedFlowRate solves ΔT from the (fixed or curve driven) flow rate
func (o *Boundary) fixedFlowRate(net flowRateUpdater, ρc, P, Tout, t float64) (Tin float64, err error) {
	if o.FlowRateCurve != nil {
		o.off = false
		err = net.UpdateFlowRate(o.FlowRateCurve.Value(t))
	} else if o.off {
		o.off = false
		err = net.UpdateFlowRate(o.qBefore)
	}
	if err != nil {
		return
	}
	if math.Abs(P) < o.Threshold {
		return Tout, o.switchOff(net)
	}
	o.DeltaT = P / net.FlowRate() / ρc
	return Tout + o.DeltaT, nil
}

// switchOff sets the flow rate to EpsFlowRate
func (o *Boundary) switchOff(net flowRateUpdater) error {
	if !o.off {
		o.qBefore = net.FlowRate()
		o.off = true
	}
	return net.UpdateFlowRate(EpsFlowRate)
}

// flowFromCurve updates the flow rate from the flow rate curve, if any
func (o *Boundary) flowFromCurve(net flowRateUpdater, t float64) error {
	if o.FlowRateCurve == nil {
		return nil
	}
	return net.UpdateFlowRate(o.FlowRateCurve.Value(t))
}
