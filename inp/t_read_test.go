// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/bhe1u.sim", "", false, false)
	require.NoError(tst, err)

	// global data
	assert.Equal(tst, "bhe1u", sim.Key)
	assert.Equal(tst, "/tmp/ogs/inp", sim.DirOut)
	assert.Equal(tst, "imp", sim.Solver.Type)
	assert.Equal(tst, 10, sim.Solver.NmaxIt)
	chk.Float64(tst, "atol", 1e-17, sim.Solver.Atol, 1e-6)
	chk.Float64(tst, "tf", 1e-17, sim.Control.Tf, 7200)
	chk.Float64(tst, "dt", 1e-17, sim.Control.Dt, 600)
	chk.Float64(tst, "dtout", 1e-17, sim.Control.DtOut, 1200)
	chk.Float64(tst, "Tsoil", 1e-17, sim.SoilTemp.Value(123), 10)

	// functions from materials file are appended
	require.NotNil(tst, sim.MatModels)
	assert.Len(tst, sim.Functions, 4)
	_, err = sim.Functions.Get("cop")
	assert.NoError(tst, err)

	// models
	require.Len(tst, sim.Models, 2)
	m1, m2 := sim.Models[0], sim.Models[1]
	assert.Equal(tst, "BHE1", m1.Name())
	assert.Equal(tst, "1U", m1.Topology())
	assert.Equal(tst, bhe.PowerInWattCurveFixedDt, m1.Params().Bound)
	chk.Float64(tst, "rin from pe100", 1e-17, m1.Params().Pipe.Rin, 0.0127)
	chk.Float64(tst, "cp from water", 1e-17, m1.Params().Fluid.Cp, 4180)
	chk.Float64(tst, "lambda_g from bentonite", 1e-17, m1.Params().Grout.Lambda, 0.806)
	chk.Float64(tst, "delta_T", 1e-17, m1.Params().DeltaT, 4)
	assert.Equal(tst, "CXA", m2.Topology())
	assert.Equal(tst, bhe.FixedInflowTemp, m2.Params().Bound)
	chk.Float64(tst, "r_inner own", 1e-17, m2.Params().Pipe.Rin, 0.024)

	// flow rate curve
	err = m2.UpdateFlowRateFromCurve(3600)
	require.NoError(tst, err)
	chk.Float64(tst, "Q_r(3600)", 1e-15, m2.FlowRate(), 3.75e-4)

	// meshes
	require.Len(tst, sim.Meshes, 2)
	msh := sim.Meshes[0]
	io.Pforan("%v\n", msh)
	assert.Len(tst, msh.Verts, 13)
	assert.Len(tst, msh.Cells, 6)
	chk.Ints(tst, "cell 0", msh.Cells[0].Verts, []int{0, 2, 1})
	chk.Float64(tst, "bot", 1e-14, msh.Bot.C[2], -18)
	msh = sim.Meshes[1]
	assert.Len(tst, msh.Verts, 11)
	assert.Equal(tst, "lin2", msh.Cells[0].Type)
	chk.Float64(tst, "top", 1e-17, msh.Top.C[2], -1)
	chk.Float64(tst, "bot", 1e-14, msh.Bot.C[2], -51)

	// info
	var buf bytes.Buffer
	require.NoError(tst, sim.GetInfo(&buf))
	assert.Contains(tst, buf.String(), "POWER_IN_WATT_CURVE_FIXED_DT")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim, err := ReadSim("data/bhe1u.sim", "second", false, false)
	require.NoError(tst, err)
	assert.Equal(tst, "bhe1u-second", sim.Key)

	_, err = ReadSim("data/duplicated.sim", "", false, false)
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "more than once")

	_, err = ReadSim("data/nonexistent.sim", "", false, false)
	assert.Error(tst, err)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "bhe.mat")
	require.NoError(tst, err)
	require.NotNil(tst, mdb.Get("water"))
	assert.Equal(tst, "refrigerant", mdb.Get("water").Type)
	assert.Nil(tst, mdb.Get("steel"))

	own := mdb.Get("pe100").Prms[:1]
	prms, err := mdb.Merge([]string{"water", "pe100"}, own)
	require.NoError(tst, err)
	assert.Len(tst, prms, 5+6+1)
	assert.Equal(tst, "mu_r", prms[0].N)
	assert.Equal(tst, "r_inner", prms[len(prms)-1].N)

	_, err = mdb.Merge([]string{"steel"}, nil)
	assert.Error(tst, err)

	_, err = ReadMat("data", "nonexistent.mat")
	assert.Error(tst, err)

	_, err = ReadMat("data", "badmat.mat")
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "lambda_g")
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01")

	xs, ys, err := ReadTable("data/load.csv")
	require.NoError(tst, err)
	chk.Array(tst, "xs", 1e-17, xs, []float64{0, 3600, 7200, 10800})
	chk.Array(tst, "ys", 1e-17, ys, []float64{0, 1000, 1000, -500})

	funcs := FuncsData{
		&FuncData{Name: "load", Type: "pwl", File: "load.csv"},
		&FuncData{Name: "bad", Type: "pwl", Xs: []float64{0}, Ys: []float64{1}},
		&FuncData{Name: "bogus", Type: "nonexistent"},
	}
	funcs.fixPaths("data")
	load, err := funcs.Get("load")
	require.NoError(tst, err)
	chk.Float64(tst, "load(1800)", 1e-12, load.Value(1800), 500)
	chk.Float64(tst, "load(9000)", 1e-12, load.Value(9000), 250)
	chk.Float64(tst, "load(-10)", 1e-17, load.Value(-10), 0)
	chk.Float64(tst, "load(1e6)", 1e-17, load.Value(1e6), -500)

	zero, err := funcs.Get("zero")
	require.NoError(tst, err)
	chk.Float64(tst, "zero", 1e-17, zero.Value(1), 0)

	_, err = funcs.Get("bad")
	assert.Error(tst, err)
	_, err = funcs.Get("missing")
	assert.Error(tst, err)
	_, err = funcs.Get("bogus")
	require.Error(tst, err)
	assert.Contains(tst, err.Error(), "bogus")

	curves, err := funcs.Curves(map[string]string{bhe.PowerCurve: "load"})
	require.NoError(tst, err)
	_, err = curves.Get(bhe.PowerCurve)
	assert.NoError(tst, err)
	_, err = funcs.Curves(map[string]string{bhe.PowerCurve: "missing"})
	assert.Error(tst, err)

	_, err = NewPiecewiseLinear([]float64{0, 1}, []float64{0})
	assert.Error(tst, err)
	_, err = NewPiecewiseLinear([]float64{0, 1}, []float64{2, 3})
	assert.NoError(tst, err)

	io.Pforan("%v\n", funcs)
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01")

	msh, err := NewLineMesh(2, 10, 4, "lin2")
	require.NoError(tst, err)
	assert.Len(tst, msh.Verts, 5)
	assert.Equal(tst, TagTop, msh.Top.Tag)
	assert.Equal(tst, TagBot, msh.Bot.Tag)
	for i, v := range msh.Verts {
		chk.Float64(tst, io.Sf("z%d", i), 1e-15, v.C[2], 2-2.5*float64(i))
	}
	chk.Ints(tst, "cell 3", msh.Cells[3].Verts, []int{3, 4})

	_, err = NewLineMesh(0, 10, 0, "lin2")
	assert.Error(tst, err)
	_, err = NewLineMesh(0, -1, 2, "lin2")
	assert.Error(tst, err)
	_, err = NewLineMesh(0, 10, 2, "qua4")
	assert.Error(tst, err)
}
