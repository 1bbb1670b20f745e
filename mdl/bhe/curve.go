// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import "github.com/cpmech/gosl/chk"

// names of curves used by boundary types
const (
	PowerCurve      = "power_in_watt_curve"
	FlowRateCurve   = "flow_rate_curve"
	HeatingCopCurve = "heating_cop_curve"
	CoolingCopCurve = "cooling_cop_curve"
	InflowTempCurve = "inflow_temperature_curve"
)

// Curve defines a scalar function y(x); e.g. power versus time or COP versus temperature.
// Curves must not be modified after being handed to a BHE; they may be shared.
type Curve interface {
	Value(x float64) float64
}

// Curves maps curve names to curves
type Curves map[string]Curve

// Get returns the curve named name
func (o Curves) Get(name string) (c Curve, err error) {
	c, ok := o[name]
	if !ok || c == nil {
		err = chk.Err("required curve %q cannot be found in the BHE parameters", name)
	}
	return
}

// CurveFunc adapts a function to the Curve interface
type CurveFunc func(x float64) float64

// Value returns f(x)
func (f CurveFunc) Value(x float64) float64 { return f(x) }
