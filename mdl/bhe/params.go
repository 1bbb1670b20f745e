// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Geometry holds the borehole geometry
type Geometry struct {
	Length   float64 // borehole length
	Diameter float64 // borehole diameter
}

// Pipe holds the pipe parameters
//  Note: in coaxial exchangers, Rin refers to the inner pipe and Rout to the outer pipe;
//        the wall thicknesses Bin and Bout then belong to the inner and outer pipes
type Pipe struct {
	Rin     float64 // inner radius
	Rout    float64 // outer radius
	Bin     float64 // wall thickness of inflow (or inner) pipe
	Bout    float64 // wall thickness of outflow (or outer) pipe
	LambdaP float64 // thermal conductivity of pipe wall
	Omega   float64 // shank spacing: distance between pipe centres (U-types only)
}

// Refrigerant holds the refrigerant properties
type Refrigerant struct {
	Mu     float64 // dynamic viscosity
	Rho    float64 // density
	Lambda float64 // thermal conductivity
	Cp     float64 // specific heat capacity
	AlphaL float64 // longitudinal dispersivity
}

// Grout holds the grout properties
type Grout struct {
	Rho      float64 // density
	Porosity float64 // porosity
	Cp       float64 // specific heat capacity
	Lambda   float64 // thermal conductivity
}

// ExternRaRb holds externally defined borehole resistances
type ExternRaRb struct {
	Use bool    // use Ra and Rb instead of the analytic grout resistance
	Ra  float64 // borehole internal thermal resistance
	Rb  float64 // borehole thermal resistance
}

// ExternResistances holds user defined thermal resistances
type ExternResistances struct {
	Use  bool    // use the values below directly
	Rfig float64 // fluid(inflow) to grout
	Rfog float64 // fluid(outflow) to grout
	Rgg1 float64 // grout to grout (first pair)
	Rgg2 float64 // grout to grout (second pair, 2U only)
	Rgs  float64 // grout to soil
	Rff  float64 // fluid to fluid (coaxial only)
}

// Config holds all data required to allocate a BHE model
type Config struct {
	Name      string            // name of BHE; e.g. the polyline name
	Geo       Geometry          // borehole geometry
	Pipe      Pipe              // pipes
	Fluid     Refrigerant       // refrigerant
	Grout     Grout             // grout
	RaRb      ExternRaRb        // external Ra/Rb
	Rext      ExternResistances // external resistances
	Bound     BoundaryType      // type of boundary at the inlet
	Discharge DischargeType     // parallel or serial discharge (2U only)
	FlowRate  float64           // total refrigerant flow rate Q_r
	Power     float64           // power [W] for POWER_IN_WATT
	DeltaT    float64           // inflow-outflow temperature difference
	Threshold float64           // power threshold to switch off the BHE
	InflowT   float64           // inflow temperature for FIXED_INFLOW_TEMP
	UseQcurve bool              // use flow_rate_curve
}

// Init initialises this structure with parameters
func (o *Config) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "length":
			o.Geo.Length = p.V
		case "diameter":
			o.Geo.Diameter = p.V
		case "r_inner":
			o.Pipe.Rin = p.V
		case "r_outer":
			o.Pipe.Rout = p.V
		case "b_in":
			o.Pipe.Bin = p.V
		case "b_out":
			o.Pipe.Bout = p.V
		case "lambda_p":
			o.Pipe.LambdaP = p.V
		case "omega":
			o.Pipe.Omega = p.V
		case "mu_r":
			o.Fluid.Mu = p.V
		case "rho_r":
			o.Fluid.Rho = p.V
		case "lambda_r":
			o.Fluid.Lambda = p.V
		case "cp_r":
			o.Fluid.Cp = p.V
		case "alpha_L":
			o.Fluid.AlphaL = p.V
		case "rho_g":
			o.Grout.Rho = p.V
		case "porosity_g":
			o.Grout.Porosity = p.V
		case "cp_g":
			o.Grout.Cp = p.V
		case "lambda_g":
			o.Grout.Lambda = p.V
		case "Ra":
			o.RaRb.Use = true
			o.RaRb.Ra = p.V
		case "Rb":
			o.RaRb.Use = true
			o.RaRb.Rb = p.V
		case "R_fig":
			o.Rext.Use = true
			o.Rext.Rfig = p.V
		case "R_fog":
			o.Rext.Use = true
			o.Rext.Rfog = p.V
		case "R_gg1":
			o.Rext.Use = true
			o.Rext.Rgg1 = p.V
		case "R_gg2":
			o.Rext.Use = true
			o.Rext.Rgg2 = p.V
		case "R_gs":
			o.Rext.Use = true
			o.Rext.Rgs = p.V
		case "R_ff":
			o.Rext.Use = true
			o.Rext.Rff = p.V
		case "Q_r":
			o.FlowRate = p.V
		case "power":
			o.Power = p.V
		case "delta_T":
			o.DeltaT = p.V
		case "threshold":
			o.Threshold = p.V
		case "T_in":
			o.InflowT = p.V
		default:
			return chk.Err("BHE %q: parameter named %q is invalid", o.Name, p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note: the example corresponds to a 1U exchanger with water as refrigerant
func (o Config) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "length", V: 18.0},
			&dbf.P{N: "diameter", V: 0.13},
			&dbf.P{N: "r_inner", V: 0.0127},
			&dbf.P{N: "r_outer", V: 0.016},
			&dbf.P{N: "b_in", V: 0.0029},
			&dbf.P{N: "b_out", V: 0.0029},
			&dbf.P{N: "lambda_p", V: 0.39},
			&dbf.P{N: "omega", V: 0.06},
			&dbf.P{N: "mu_r", V: 0.00054741},
			&dbf.P{N: "rho_r", V: 988.1},
			&dbf.P{N: "lambda_r", V: 0.6405},
			&dbf.P{N: "cp_r", V: 4180},
			&dbf.P{N: "alpha_L", V: 1.0e-4},
			&dbf.P{N: "rho_g", V: 2190},
			&dbf.P{N: "porosity_g", V: 0},
			&dbf.P{N: "cp_g", V: 1735.160},
			&dbf.P{N: "lambda_g", V: 0.806},
			&dbf.P{N: "Q_r", V: 21.86 / 86400},
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "length", V: o.Geo.Length},
		&dbf.P{N: "diameter", V: o.Geo.Diameter},
		&dbf.P{N: "r_inner", V: o.Pipe.Rin},
		&dbf.P{N: "r_outer", V: o.Pipe.Rout},
		&dbf.P{N: "b_in", V: o.Pipe.Bin},
		&dbf.P{N: "b_out", V: o.Pipe.Bout},
		&dbf.P{N: "lambda_p", V: o.Pipe.LambdaP},
		&dbf.P{N: "omega", V: o.Pipe.Omega},
		&dbf.P{N: "mu_r", V: o.Fluid.Mu},
		&dbf.P{N: "rho_r", V: o.Fluid.Rho},
		&dbf.P{N: "lambda_r", V: o.Fluid.Lambda},
		&dbf.P{N: "cp_r", V: o.Fluid.Cp},
		&dbf.P{N: "alpha_L", V: o.Fluid.AlphaL},
		&dbf.P{N: "rho_g", V: o.Grout.Rho},
		&dbf.P{N: "porosity_g", V: o.Grout.Porosity},
		&dbf.P{N: "cp_g", V: o.Grout.Cp},
		&dbf.P{N: "lambda_g", V: o.Grout.Lambda},
		&dbf.P{N: "Q_r", V: o.FlowRate},
	}
	if o.RaRb.Use {
		prms = append(prms, &dbf.P{N: "Ra", V: o.RaRb.Ra}, &dbf.P{N: "Rb", V: o.RaRb.Rb})
	}
	if o.Rext.Use {
		prms = append(prms,
			&dbf.P{N: "R_fig", V: o.Rext.Rfig},
			&dbf.P{N: "R_fog", V: o.Rext.Rfog},
			&dbf.P{N: "R_gg1", V: o.Rext.Rgg1},
			&dbf.P{N: "R_gg2", V: o.Rext.Rgg2},
			&dbf.P{N: "R_gs", V: o.Rext.Rgs},
			&dbf.P{N: "R_ff", V: o.Rext.Rff},
		)
	}
	switch o.Bound {
	case PowerInWatt:
		prms = append(prms, &dbf.P{N: "power", V: o.Power}, &dbf.P{N: "threshold", V: o.Threshold})
	case FixedTempDiff:
		prms = append(prms, &dbf.P{N: "delta_T", V: o.DeltaT})
	case FixedInflowTemp:
		prms = append(prms, &dbf.P{N: "T_in", V: o.InflowT})
	case PowerInWattCurveFixedDt, BuildingPowerInWattCurveFixedDt:
		prms = append(prms, &dbf.P{N: "delta_T", V: o.DeltaT}, &dbf.P{N: "threshold", V: o.Threshold})
	case PowerInWattCurveFixedFlowRate, BuildingPowerInWattCurveFixedFlowRate:
		prms = append(prms, &dbf.P{N: "threshold", V: o.Threshold})
	}
	return prms
}

// Validate checks the invariants of geometry and material data
func (o *Config) Validate() (err error) {
	if o.Geo.Length <= 0 || o.Geo.Diameter <= 0 {
		return chk.Err("BHE %q: length and diameter must be positive. length=%g, diameter=%g", o.Name, o.Geo.Length, o.Geo.Diameter)
	}
	if o.Pipe.Rin <= 0 || o.Pipe.Rin >= o.Pipe.Rout {
		return chk.Err("BHE %q: pipe radii must satisfy 0 < r_inner < r_outer. r_inner=%g, r_outer=%g", o.Name, o.Pipe.Rin, o.Pipe.Rout)
	}
	if o.Pipe.LambdaP <= 0 {
		return chk.Err("BHE %q: thermal conductivity of pipe wall must be positive. lambda_p=%g", o.Name, o.Pipe.LambdaP)
	}
	f := o.Fluid
	if f.Mu <= 0 || f.Rho <= 0 || f.Lambda <= 0 || f.Cp <= 0 || f.AlphaL < 0 {
		return chk.Err("BHE %q: refrigerant properties must be positive. mu_r=%g, rho_r=%g, lambda_r=%g, cp_r=%g, alpha_L=%g", o.Name, f.Mu, f.Rho, f.Lambda, f.Cp, f.AlphaL)
	}
	g := o.Grout
	if g.Porosity < 0 || g.Porosity > 1 {
		return chk.Err("BHE %q: grout porosity must be in [0,1]. porosity_g=%g", o.Name, g.Porosity)
	}
	if g.Rho <= 0 || g.Cp <= 0 || g.Lambda <= 0 {
		return chk.Err("BHE %q: grout properties must be positive. rho_g=%g, cp_g=%g, lambda_g=%g", o.Name, g.Rho, g.Cp, g.Lambda)
	}
	if o.FlowRate <= 0 {
		return chk.Err("BHE %q: flow rate must be positive. Q_r=%g", o.Name, o.FlowRate)
	}
	switch o.Bound {
	case FixedTempDiff, PowerInWattCurveFixedDt, BuildingPowerInWattCurveFixedDt:
		if o.DeltaT == 0 {
			return chk.Err("BHE %q: temperature difference of boundary %v must not be zero", o.Name, o.Bound)
		}
	}
	return
}
