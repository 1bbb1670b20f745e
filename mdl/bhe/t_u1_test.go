// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// exampleConfig returns the example 1U configuration with the given boundary type
func exampleConfig(tst *testing.T, bound BoundaryType) *Config {
	cfg := &Config{Name: "BHE1", Bound: bound}
	err := cfg.Init(cfg.GetPrms(true))
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	cfg.DeltaT = 3
	return cfg
}

// cte returns a constant curve
func cte(v float64) Curve {
	return CurveFunc(func(x float64) float64 { return v })
}

func Test_u1a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1a. fixed temperature difference")

	cfg := exampleConfig(tst, FixedTempDiff)
	cfg.DeltaT = 4.0
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, t := range []float64{0, 100, 1e6} {
		Tin, err := mdl.TinByTout(10.0, t)
		if err != nil {
			tst.Errorf("TinByTout failed: %v\n", err)
			return
		}
		chk.Float64(tst, "Tin", 1e-15, Tin, 14.0)
	}
	chk.Int(tst, "nunknowns", mdl.NumUnknowns(), 4)
	chk.Int(tst, "ngrout", mdl.NumGroutZones(), 2)
	chk.Int(tst, "nterms", mdl.NumExchangeTerms(), 4)
	chk.String(tst, mdl.Topology(), "1U")
}

func Test_u1b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1b. fixed power")

	cfg := exampleConfig(tst, PowerInWatt)
	cfg.Power = 1500
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	Q := 21.86 / 86400
	chk.Float64(tst, "Q_r", 1e-17, mdl.FlowRate(), Q)
	Tout := 12.0
	Tin, err := mdl.TinByTout(Tout, 0)
	if err != nil {
		tst.Errorf("TinByTout failed: %v\n", err)
		return
	}
	correct := Tout + 1500/(Q*4180*988.1)
	if math.Abs(Tin-correct)/correct > 1e-6 {
		tst.Errorf("Tin = %v is incorrect. %v was expected\n", Tin, correct)
	}
	chk.Float64(tst, "ΔT (hand)", 1e-6, Tin-Tout, 1.4354156034576888)

	// increasing the flow rate decreases |Tin - Tout|
	prev := math.Abs(Tin - Tout)
	for _, q := range []float64{2 * Q, 4 * Q, 8 * Q} {
		err = mdl.UpdateFlowRate(q)
		if err != nil {
			tst.Errorf("UpdateFlowRate failed: %v\n", err)
			return
		}
		Tin, err = mdl.TinByTout(Tout, 0)
		if err != nil {
			tst.Errorf("TinByTout failed: %v\n", err)
			return
		}
		ΔT := math.Abs(Tin - Tout)
		io.Pforan("Q = %v  ΔT = %v\n", q, ΔT)
		if ΔT >= prev {
			tst.Errorf("|Tin - Tout| should decrease with the flow rate: %v >= %v\n", ΔT, prev)
		}
		prev = ΔT
	}
}

func Test_u1c(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1c. correction procedure")

	// default geometry: no correction
	cfg := exampleConfig(tst, FixedTempDiff)
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*U1)
	chk.Int(tst, "no correction", len(o.Chi), 0)
	chk.Float64(tst, "R_gg", 1e-12, o.Res.Gg1, 0.3286229608459387)

	// pipes close to each other: three steps
	cfg.Pipe.Omega = 0.033
	mdl, err = NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o = mdl.(*U1)
	D, d0 := cfg.Geo.Diameter, 2*cfg.Pipe.Rout
	chi := math.Log(math.Sqrt(D*D+2*d0*d0)/2/d0) / math.Log(D/math.Sqrt2/d0)
	io.Pforan("χ = %v  steps = %v\n", chi, o.Chi)
	chk.Array(tst, "χ steps", 1e-15, o.Chi, []float64{chi * 0.66, chi * 0.66 * 0.5, 0})
	chk.Float64(tst, "R_gs", 1e-12, o.Res.Gs, o.Res.G)
	chk.Float64(tst, "R_gg", 1e-12, o.Res.Gg1, 0.11401046990457223)
	if math.IsInf(o.Res.Gg1, 0) || math.IsNaN(o.Res.Gg1) || o.Res.Gg1 <= 0 {
		tst.Errorf("R_gg must be finite and positive after correction\n")
	}

	// conductances are reciprocals of resistances
	r := o.Res
	for i, R := range []float64{r.Fig, r.Fog, r.Gg1, r.Gs} {
		chk.Float64(tst, io.Sf("1/Φ%d", i), 1e-15, 1.0/mdl.HeatExchangeCoeff(i), R)
	}
}

func Test_u1d(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1d. user defined resistances")

	cfg := exampleConfig(tst, FixedTempDiff)
	cfg.Pipe.Omega = 0.033 // would require correction otherwise
	cfg.Rext = ExternResistances{Use: true, Rfig: 0.1, Rfog: 0.2, Rgg1: 0.3, Rgs: 0.4}
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*U1)
	chk.Int(tst, "no correction", len(o.Chi), 0)
	chk.Array(tst, "Φ", 1e-15, o.Phi, []float64{1 / 0.1, 1 / 0.2, 1 / 0.3, 1 / 0.4})

	// negative constraint with user defined resistances
	cfg.Rext.Rgg1 = -0.1
	_, err = NewWithConfig("1U", cfg, nil)
	if err == nil {
		tst.Errorf("correction with user defined resistances should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// non-finite R_gg
	cfg.Rext.Rgg1 = math.Inf(1)
	_, err = NewWithConfig("1U", cfg, nil)
	if err == nil {
		tst.Errorf("infinite R_gg should have failed\n")
	}
}

func Test_u1e(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1e. Ra and Rb")

	cfg := exampleConfig(tst, FixedTempDiff)
	cfg.RaRb = ExternRaRb{Use: true, Ra: 0.45, Rb: 0.12}
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*U1)
	Radv := 1.0 / (o.Nu * cfg.Fluid.Lambda * math.Pi)
	Rcon := math.Log(cfg.Pipe.Rout/cfg.Pipe.Rin) / (2.0 * math.Pi * cfg.Pipe.LambdaP)
	chk.Float64(tst, "R_g", 1e-15, o.Res.G, 2*0.12-Radv-Rcon)
	for i := 0; i < 4; i++ {
		if o.Phi[i] <= 0 || math.IsInf(o.Phi[i], 0) {
			tst.Errorf("Φ%d = %v must be finite and positive\n", i, o.Phi[i])
		}
	}
	chk.Float64(tst, "R_gg", 1e-12, o.Res.Gg1, 0.12424795095887342)

	// Ra too small: negative constraint cannot be corrected
	cfg.RaRb.Ra = 0.35
	_, err = NewWithConfig("1U", cfg, nil)
	if err == nil {
		tst.Errorf("correction with Ra and Rb should have failed\n")
	}
}

func Test_u1f(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1f. coefficients")

	cfg := exampleConfig(tst, FixedTempDiff)
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := mdl.(*U1)
	ρc := 988.1 * 4180.0
	csaP := math.Pi * 0.0127 * 0.0127
	csaG := math.Pi * (0.125*0.13*0.13 - 0.016*0.016)
	chk.Float64(tst, "mass i1", 1e-9, mdl.MassCoeff(0), ρc*csaP)
	chk.Float64(tst, "mass o1", 1e-9, mdl.MassCoeff(1), ρc*csaP)
	chk.Float64(tst, "mass g1", 1e-9, mdl.MassCoeff(2), 2190*1735.160*csaG)
	chk.Float64(tst, "mass g2", 1e-9, mdl.MassCoeff(3), 2190*1735.160*csaG)
	chk.Float64(tst, "laplace i1", 1e-12, mdl.LaplaceCoeff(0), (0.6405+ρc*1e-4*o.U)*csaP)
	chk.Float64(tst, "laplace g1", 1e-15, mdl.LaplaceCoeff(2), 0.806*csaG)
	chk.Array(tst, "adv i1", 1e-12, mdl.AdvectionVector(0), []float64{0, 0, -ρc * o.U * csaP})
	chk.Array(tst, "adv o1", 1e-12, mdl.AdvectionVector(1), []float64{0, 0, ρc * o.U * csaP})
	chk.Array(tst, "adv g1", 1e-15, mdl.AdvectionVector(2), []float64{0, 0, 0})

	// invalid index
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("invalid index should have panicked\n")
		}
	}()
	mdl.HeatExchangeCoeff(4)
}

func Test_u1g(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1g. R matrices")

	cfg := exampleConfig(tst, FixedTempDiff)
	mdl, err := NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	checkRMatrices(tst, mdl)
}

func Test_u1h(tst *testing.T) {

	//verbose()
	chk.PrintTitle("u1h. configuration errors")

	// missing curve
	cfg := exampleConfig(tst, PowerInWattCurveFixedDt)
	_, err := NewWithConfig("1U", cfg, Curves{})
	if err == nil {
		tst.Errorf("missing power curve should have failed\n")
	}
	io.Pforan("%v\n", err)

	// missing flow rate curve
	cfg = exampleConfig(tst, PowerInWatt)
	cfg.UseQcurve = true
	_, err = NewWithConfig("1U", cfg, Curves{"power_in_watt_curve": cte(1)})
	if err == nil {
		tst.Errorf("missing flow rate curve should have failed\n")
	}

	// invalid geometry
	cfg = exampleConfig(tst, PowerInWatt)
	cfg.Pipe.Rin = cfg.Pipe.Rout
	_, err = NewWithConfig("1U", cfg, nil)
	if err == nil {
		tst.Errorf("r_inner == r_outer should have failed\n")
	}

	// zero temperature difference
	for _, bound := range []BoundaryType{FixedTempDiff, PowerInWattCurveFixedDt, BuildingPowerInWattCurveFixedDt} {
		cfg = exampleConfig(tst, bound)
		cfg.DeltaT = 0
		curves := Curves{PowerCurve: cte(1000), HeatingCopCurve: cte(4), CoolingCopCurve: cte(4)}
		_, err = NewWithConfig("1U", cfg, curves)
		if err == nil {
			tst.Errorf("%v with delta_T = 0 should have failed\n", bound)
			continue
		}
		io.Pforan("%v\n", err)
	}

	// invalid topology
	_, err = New("3U")
	if err == nil {
		tst.Errorf("3U should not be available\n")
	}

	// boundary type strings
	for b, name := range boundaryNames {
		res, err := BoundaryTypeFromString(name)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Int(tst, name, int(res), int(b))
		chk.String(tst, b.String(), name)
	}
	_, err = BoundaryTypeFromString("FIXED_POWER")
	if err == nil {
		tst.Errorf("FIXED_POWER should not be available\n")
	}
}

// checkRMatrices assembles all exchange terms with one node and checks that the resulting
// coupling matrix [soil, bhe] is symmetric with zero row sums
func checkRMatrices(tst *testing.T, mdl Model) {
	n := mdl.NumUnknowns()
	R := make([][]float64, n)
	Rps := make([][]float64, n)
	for i := 0; i < n; i++ {
		R[i] = make([]float64, n)
		Rps[i] = make([]float64, 1)
	}
	Rs := [][]float64{{0}}
	for k := 0; k < mdl.NumExchangeTerms(); k++ {
		loc := [][]float64{{mdl.HeatExchangeCoeff(k)}}
		mdl.AddRMatrices(k, 1, loc, R, Rps, Rs)
	}
	K := make([][]float64, n+1)
	for i := range K {
		K[i] = make([]float64, n+1)
	}
	K[0][0] = Rs[0][0]
	for i := 0; i < n; i++ {
		K[0][1+i] = Rps[i][0]
		K[1+i][0] = Rps[i][0]
		for j := 0; j < n; j++ {
			K[1+i][1+j] = R[i][j]
		}
	}
	for i := 0; i <= n; i++ {
		sum := 0.0
		for j := 0; j <= n; j++ {
			sum += K[i][j]
			chk.Float64(tst, io.Sf("K%d%d-K%d%d", i, j, j, i), 1e-15, K[i][j], K[j][i])
		}
		chk.Float64(tst, io.Sf("row %d", i), 1e-10, sum, 0)
	}
	if chk.Verbose {
		io.Pf("K =\n%v\n", K)
	}
}
