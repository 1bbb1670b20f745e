// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cguevaramorel/ogs/inp"
	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// twoNodes returns two nodes with dofs Ts and i1 numbered from 0
func twoNodes() []*Node {
	a := NewNode(&inp.Vertex{Id: 0, Tag: inp.TagTop, C: []float64{0, 0, 0}})
	b := NewNode(&inp.Vertex{Id: 1, Tag: inp.TagBot, C: []float64{0, 0, -1}})
	eq := a.AddDofAndEq("Ts", 0)
	eq = a.AddDofAndEq("i1", eq)
	eq = b.AddDofAndEq("Ts", eq)
	b.AddDofAndEq("i1", eq)
	return []*Node{a, b}
}

func Test_ebc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ebc01. set, replace and build")

	nodes := twoNodes()
	assert.Equal(tst, 3, nodes[1].GetEq("i1"))
	assert.Equal(tst, -1, nodes[1].GetEq("o1"))
	assert.Nil(tst, nodes[0].GetDof("g1"))
	assert.Equal(tst, `{ "vid":1, "z":-1, "dofs":[{"Ts":2}, {"i1":3}] }`, nodes[1].String())

	var e EssentialBcs
	e.Init()
	err := e.Set("Ts", nil, Zero)
	require.Error(tst, err)

	T10 := bhe.CurveFunc(func(float64) float64 { return 10 })
	require.NoError(tst, e.Set("Ts", nodes, T10))
	require.NoError(tst, e.Set("g1", nodes, T10)) // no node has g1
	assert.Len(tst, e.Bcs, 2)

	// multi-point constraint: y[3] - y[1] = 0
	e.SetTied("bottom", nodes[1].GetDof("i1"), nodes[0].GetDof("i1"))
	assert.Len(tst, e.Bcs, 3)

	// replace constraint on equation 3
	T15 := bhe.CurveFunc(func(float64) float64 { return 15 })
	e.set_eqs("inflow", []int{3}, []float64{1}, T15)
	assert.Len(tst, e.Bcs, 3)

	// sorted by smallest equation
	ny := 4
	nλ := e.Build(ny)
	require.Equal(tst, 3, nλ)
	keys := []string{e.Bcs[0].Key, e.Bcs[1].Key, e.Bcs[2].Key}
	assert.Equal(tst, []string{"Ts", "Ts", "inflow"}, keys)
	assert.Equal(tst, []int{3}, e.Bcs[2].Eqs)

	// augmented system
	Kb := mat.NewDense(ny+nλ, ny+nλ, nil)
	fb := make([]float64, ny+nλ)
	e.AddToKb(Kb, ny)
	e.AddToRhs(fb, ny, 100)
	assert.Equal(tst, 1.0, Kb.At(ny, 0))
	assert.Equal(tst, 1.0, Kb.At(2, ny+1))
	assert.Equal(tst, 1.0, Kb.At(ny+2, 3))
	assert.Equal(tst, []float64{0, 0, 0, 0, 10, 10, 15}, fb)
	assert.Contains(tst, e.List(100), "inflow")
}

func Test_ebc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ebc02. sorting keeps coefficients")

	nodes := twoNodes()
	var e EssentialBcs
	e.Init()
	e.SetTied("bottom", nodes[1].GetDof("i1"), nodes[0].GetDof("Ts"))
	e.set_eqs("inflow", []int{1}, []float64{1}, Zero)
	require.Equal(tst, 2, e.Build(4))

	// tied constraint has smallest equation 0 and comes first
	assert.Equal(tst, "bottom", e.Bcs[0].Key)
	assert.Equal(tst, []int{3, 0}, e.Bcs[0].Eqs)
	assert.Equal(tst, 1.0, e.A.At(0, 3))
	assert.Equal(tst, -1.0, e.A.At(0, 0))
	assert.Equal(tst, 1.0, e.A.At(1, 1))
	assert.Equal(tst, 0, (&EssentialBcs{}).Build(4))
}
