// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import "math"

// regime limits of pipe flow
const (
	ReLaminar   = 2300.0  // Re below this value: laminar
	ReTurbulent = 10000.0 // Re above this value: turbulent
)

// ReynoldsNumber computes Re = u・d・ρ/μ
func ReynoldsNumber(velocity, diameter, viscosity, density float64) float64 {
	return velocity * diameter / (viscosity / density)
}

// PrandtlNumber computes Pr = μ・cp/λ
func PrandtlNumber(viscosity, heatCapacity, conductivity float64) float64 {
	return viscosity * heatCapacity / conductivity
}

// gnielinski computes the Gnielinski-type correlation for friction factor ξ
func gnielinski(xi, Re, Pr float64) float64 {
	return (xi / 8.0 * Re * Pr) / (1.0 + 12.7*math.Sqrt(xi/8.0)*(math.Pow(Pr, 2.0/3.0)-1.0))
}

// frictionFactor computes ξ = (1.8・log10(Re) - 1.5)⁻²
func frictionFactor(Re float64) float64 {
	return math.Pow(1.8*math.Log10(Re)-1.5, -2.0)
}

// NusseltNumber computes the Nusselt number of pipe flow
//
//   Re < 2300          : 4.364
//   2300 ≤ Re < 10000  : (1-γ)・4.364 + γ・Nu_t(Re=10⁴)   with γ = (Re-2300)/7700
//   Re ≥ 10000         : Nu_t(Re)
//
//  where Nu_t includes the (1 + (d/L)^⅔) correction
func NusseltNumber(Re, Pr, diameter, length float64) float64 {
	if Re < ReLaminar {
		return 4.364
	}
	corr := 1.0 + math.Pow(diameter/length, 2.0/3.0)
	if Re < ReTurbulent {
		γ := (Re - ReLaminar) / (ReTurbulent - ReLaminar)
		return (1.0-γ)*4.364 + γ*gnielinski(0.0308, 1.0e4, Pr)*corr
	}
	return gnielinski(frictionFactor(Re), Re, Pr) * corr
}

// NusseltNumber2U computes the Nusselt number of pipe flow in double-U exchangers.
// It differs from NusseltNumber at Re == 10000 only: the transitional blend is used there
// (γ = 1) instead of the turbulent correlation.
func NusseltNumber2U(Re, Pr, diameter, length float64) float64 {
	if Re < ReLaminar {
		return 4.364
	}
	corr := 1.0 + math.Pow(diameter/length, 2.0/3.0)
	if Re <= ReTurbulent {
		γ := (Re - ReLaminar) / (ReTurbulent - ReLaminar)
		return (1.0-γ)*4.364 + γ*gnielinski(0.0308, 1.0e4, Pr)*corr
	}
	return gnielinski(frictionFactor(Re), Re, Pr) * corr
}

// NusseltNumberAnnulus computes the Nusselt number of annular flow
//  Input:
//   diameterRatio -- inner diameter / outer diameter of the annulus
//   aspectRatio   -- hydraulic diameter / length
func NusseltNumberAnnulus(Re, Pr, diameterRatio, aspectRatio float64) float64 {
	dr := diameterRatio
	if Re < ReLaminar {
		return 3.66 + (4.0-0.102/(dr+0.02))*math.Pow(dr, 0.04)
	}
	corr := (1.0 + math.Pow(aspectRatio, 2.0/3.0)) *
		((0.86*math.Pow(dr, 0.84) + 1.0 - 0.14*math.Pow(dr, 0.6)) / (1.0 + dr))
	if Re < ReTurbulent {
		γ := (Re - ReLaminar) / (ReTurbulent - ReLaminar)
		return (1.0-γ)*(3.66+(4.0-0.102/(dr+0.02)))*math.Pow(dr, 0.04) +
			γ*gnielinski(0.0308, 1.0e4, Pr)*corr
	}
	return gnielinski(frictionFactor(Re), Re, Pr) * corr
}

// PipeFlowVelocity computes u = Q/(π・r²)
func PipeFlowVelocity(flowRate, rInner float64) float64 {
	return flowRate / (math.Pi * rInner * rInner)
}

// AnnulusFlowVelocity computes u = Q/(π・(ro² - ri²))
func AnnulusFlowVelocity(flowRate, rOuter, rInner float64) float64 {
	return flowRate / (math.Pi * (rOuter*rOuter - rInner*rInner))
}

// FlowProps holds velocity and Nusselt number of one flow channel. Re does not depend on the
// direction of flow
type FlowProps struct {
	U  float64 // velocity
	Re float64 // Reynolds number
	Nu float64 // Nusselt number
}

// PipeFlow computes the flow properties inside a pipe of inner radius rInner
func PipeFlow(rInner, length float64, fluid *Refrigerant, flowRate float64) (p FlowProps) {
	Pr := PrandtlNumber(fluid.Mu, fluid.Cp, fluid.Lambda)
	p.U = PipeFlowVelocity(flowRate, rInner)
	p.Re = ReynoldsNumber(math.Abs(p.U), 2.0*rInner, fluid.Mu, fluid.Rho)
	p.Nu = NusseltNumber(p.Re, Pr, 2.0*rInner, length)
	return
}

// AnnulusFlow computes the flow properties inside the annulus between the outer pipe
// (inner radius rOuter) and the wall of the inner pipe (outer radius rInnerWall)
func AnnulusFlow(rOuter, rInnerWall, length float64, fluid *Refrigerant, flowRate float64) (p FlowProps) {
	Pr := PrandtlNumber(fluid.Mu, fluid.Cp, fluid.Lambda)
	p.U = AnnulusFlowVelocity(flowRate, rOuter, rInnerWall)
	dh := 2.0 * (rOuter - rInnerWall)
	p.Re = ReynoldsNumber(math.Abs(p.U), dh, fluid.Mu, fluid.Rho)
	p.Nu = NusseltNumberAnnulus(p.Re, Pr, rInnerWall/rOuter, dh/length)
	return
}
