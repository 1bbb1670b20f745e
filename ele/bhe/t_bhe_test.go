// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"math"
	"testing"

	"github.com/cguevaramorel/ogs/ele"
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// model1U returns the example 1U model
func model1U(tst *testing.T) bhe.Model {
	cfg := &bhe.Config{Name: "BHE1", Bound: bhe.FixedTempDiff}
	err := cfg.Init(cfg.GetPrms(true))
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	cfg.DeltaT = 3
	mdl, err := bhe.NewWithConfig("1U", cfg, nil)
	if err != nil {
		tst.Fatalf("NewWithConfig failed: %v\n", err)
	}
	return mdl
}

// element2m returns a vertical element from z=0 to z=-2
func element2m(tst *testing.T, mdl bhe.Model, ctype string) *Element {
	cell := &inp.Cell{Id: 0, Tag: -1, Type: ctype, Verts: []int{0, 1}}
	x := [][]float64{{0, 0}, {0, 0}, {0, -2}}
	if ctype == "lin3" {
		cell.Verts = []int{0, 2, 1}
		x = [][]float64{{0, 0, 0}, {0, 0, 0}, {0, -2, -1}}
	}
	o, err := New(mdl, cell, x, 0)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	return o
}

// fakeModel overrides the number of unknowns of a model
type fakeModel struct {
	bhe.Model
	nu, ng int
}

func (o fakeModel) NumUnknowns() int   { return o.nu }
func (o fakeModel) NumGroutZones() int { return o.ng }

func Test_bhe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bhe01. keys")

	mdl := model1U(tst)
	chk.Strings(tst, "1U", Keys(mdl), []string{"Ts", "i1", "o1", "g1", "g2"})
	chk.Strings(tst, "2U", Keys(fakeModel{nu: 8, ng: 4}), []string{"Ts", "i1", "i2", "o1", "o2", "g1", "g2", "g3", "g4"})
	chk.Strings(tst, "CX", Keys(fakeModel{nu: 3, ng: 1}), []string{"Ts", "i1", "o1", "g1"})

	_, err := New(mdl, &inp.Cell{Type: "qua4", Verts: []int{0, 1, 2, 3}}, nil, 0)
	if err == nil {
		tst.Errorf("qua4 should fail\n")
	}
}

func Test_bhe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bhe02. local matrices")

	mdl := model1U(tst)
	for _, ctype := range []string{"lin2", "lin3"} {
		io.Pforan("%s\n", ctype)
		o := element2m(tst, mdl, ctype)
		err := o.Assemble()
		if err != nil {
			tst.Errorf("Assemble failed: %v\n", err)
			return
		}
		nn := o.Nn
		nloc := (1 + o.Nu) * nn

		// uniform temperature => no flux
		for i := 0; i < nloc; i++ {
			sum := 0.0
			for j := 0; j < nloc; j++ {
				sum += o.K[i][j]
			}
			chk.Float64(tst, io.Sf("ΣK[%d]", i), 1e-9, sum, 0)
		}

		// mass of each block
		chk.Deep2(tst, "M", 1e-17, blockOf(o.M, nn, 0, 0), make2(nn))
		for k := 0; k < o.Nu; k++ {
			ΣM := 2 * mdl.MassCoeff(k)
			chk.Float64(tst, io.Sf("ΣM%d", k), 1e-12*math.Abs(ΣM), sumOf(blockOf(o.M, nn, 1+k, 1+k)), ΣM)
			for i := 0; i < nloc; i++ {
				for j := 0; j < nloc; j++ {
					if math.Abs(o.M[i][j]-o.M[j][i]) > 1e-15 {
						tst.Errorf("M is not symmetric\n")
						return
					}
				}
			}
		}

		// exchange with soil
		φgs := mdl.HeatExchangeCoeff(3)
		chk.Float64(tst, "ΣKss", 1e-12, sumOf(blockOf(o.K, nn, 0, 0)), 2*2*φgs)
		chk.Float64(tst, "ΣKs,g1", 1e-12, sumOf(blockOf(o.K, nn, 0, 3)), -2*φgs)
		chk.Float64(tst, "ΣKg2,s", 1e-12, sumOf(blockOf(o.K, nn, 4, 0)), -2*φgs)
		chk.Float64(tst, "ΣKs,i1", 1e-17, sumOf(blockOf(o.K, nn, 0, 1)), 0)
	}
}

func Test_bhe03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bhe03. global assembly")

	mdl := model1U(tst)
	o := element2m(tst, mdl, "lin2")

	// equations
	ndof := 1 + o.Nu
	err := o.SetEqs([][]int{{0, 1}})
	if err == nil {
		tst.Errorf("SetEqs should fail\n")
	}
	eqs := [][]int{make([]int, ndof), make([]int, ndof)}
	for m := 0; m < 2; m++ {
		for k := 0; k < ndof; k++ {
			eqs[m][k] = m*ndof + k
		}
	}
	err = o.SetEqs(eqs)
	if err != nil {
		tst.Errorf("SetEqs failed: %v\n", err)
		return
	}
	chk.Ints(tst, "Umap", o.Umap, []int{0, 5, 1, 6, 2, 7, 3, 8, 4, 9})

	// steady uniform state
	ny := 2 * ndof
	sol := ele.NewSolution(ny, 0)
	sol.Dt = 60
	for i := 0; i < ny; i++ {
		sol.Y[i] = 12
	}
	sol.Backup()
	Kb := mat.NewDense(ny, ny, nil)
	fb := make([]float64, ny)
	err = o.AddToKb(Kb, sol)
	if err != nil {
		tst.Errorf("AddToKb failed: %v\n", err)
		return
	}
	err = o.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed: %v\n", err)
		return
	}
	var r mat.VecDense
	r.MulVec(Kb, mat.NewVecDense(ny, sol.Y))
	for i := 0; i < ny; i++ {
		chk.Float64(tst, io.Sf("Kb・y - fb @ %d", i), 1e-9, r.AtVec(i)-fb[i], 0)
	}

	// heat flow to soil
	for m := 0; m < 2; m++ {
		sol.Y[eqs[m][0]] = 10 // Ts
	}
	φgs := mdl.HeatExchangeCoeff(3)
	q, err := o.SoilHeatRate(sol)
	if err != nil {
		tst.Errorf("SoilHeatRate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "q", 1e-12, q, 2*2*2*φgs)

	M := ele.NewIpsMap()
	err = o.OutIpVals(M, sol)
	if err != nil {
		tst.Errorf("OutIpVals failed: %v\n", err)
		return
	}
	chk.Array(tst, "qgs", 1e-12, (*M)["qgs"], []float64{4 * φgs, 4 * φgs})
	chk.Strings(tst, "keys", o.OutIpKeys(), []string{"qgs"})
	chk.Strings(tst, "map keys", M.Keys(), []string{"qgs"})
	chk.Float64(tst, "Get(Tg)", 1e-17, M.Get("Tg", 0), 0)
	C := o.OutIpCoords()
	chk.Float64(tst, "z0+z1", 1e-15, C[0][2]+C[1][2], -2)
}

// blockOf returns block (I,J) of size nn of a
func blockOf(a [][]float64, nn, I, J int) (b [][]float64) {
	b = make2(nn)
	for i := 0; i < nn; i++ {
		for j := 0; j < nn; j++ {
			b[i][j] = a[I*nn+i][J*nn+j]
		}
	}
	return
}

func make2(n int) (a [][]float64) {
	a = make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}

func sumOf(a [][]float64) (s float64) {
	for i := range a {
		for j := range a[i] {
			s += a[i][j]
		}
	}
	return
}
