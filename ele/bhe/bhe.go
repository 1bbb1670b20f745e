// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bhe implements line elements along borehole heat exchangers
package bhe

import (
	"github.com/cguevaramorel/ogs/ele"
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cguevaramorel/ogs/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SoilKey is the key of the soil temperature dof
const SoilKey = "Ts"

// Element implements a line element along one borehole heat exchanger coupled to the soil.
// Each unknown of the resistance network satisfies
//
//       ∂T     ∂   ┌   ∂T ┐      ∂T
//     m ── -  ──   │ Λ ── │ + a ── + Σ Φ (T - Tⱼ) = 0
//       ∂t     ∂s  └   ∂s ┘      ∂s
//
// where s is the arc length from the head of the borehole downwards.
//
//  Local equations are ordered in blocks of nodes:
//      [Ts @ all nodes | unknown 0 @ all nodes | unknown 1 @ all nodes | ...]
type Element struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [3][nnode]
	Mdl  bhe.Model   // resistance network
	Shp  *shp.Shape  // shape structure
	Nn   int         // number of nodes
	Nu   int         // number of BHE unknowns per node
	Umap []int       // assembly map (location array/element equations)

	// integration points
	IpsElem []shp.Ipoint // integration points of element

	// local matrices
	M [][]float64 // [nloc][nloc] mass matrix
	K [][]float64 // [nloc][nloc] conductance matrix including exchange terms

	// scratchpad
	nn   [][]float64 // [nn][nn] ∫ Nᵀ N ds
	loc  [][]float64 // [nn][nn] Φ ∫ Nᵀ N ds
	r    [][]float64 // [nu*nn][nu*nn] exchange between BHE unknowns
	rps  [][]float64 // [nu*nn][nn] exchange between BHE unknowns and soil
	rs   [][]float64 // [nn][nn] exchange with soil
	tang []float64   // [3] unit tangent vector
}

// Keys returns the dof keys of a node of BHE elements with model mdl. ex: 1U => Ts, i1, o1, g1, g2
//  Note: fluid unknowns are inflow channels followed by outflow channels; then grout zones
func Keys(mdl bhe.Model) (keys []string) {
	ng := mdl.NumGroutZones()
	nf := mdl.NumUnknowns() - ng
	keys = append(keys, SoilKey)
	for i := 0; i < nf/2; i++ {
		keys = append(keys, io.Sf("i%d", i+1))
	}
	for i := 0; i < nf/2; i++ {
		keys = append(keys, io.Sf("o%d", i+1))
	}
	for i := 0; i < ng; i++ {
		keys = append(keys, io.Sf("g%d", i+1))
	}
	return
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("bhe", func(sim *inp.Simulation, ibhe int, cell *inp.Cell) *ele.Info {
		var info ele.Info
		keys := Keys(sim.Models[ibhe])
		info.Dofs = make([][]string, len(cell.Verts))
		for m := range cell.Verts {
			info.Dofs[m] = keys
		}
		info.T1vars = keys[1:]
		return &info
	})

	// element allocator
	ele.SetAllocator("bhe", func(sim *inp.Simulation, ibhe int, cell *inp.Cell, x [][]float64) ele.Element {
		o, err := New(sim.Models[ibhe], cell, x, sim.Bhes[ibhe].Elem.Nip)
		if err != nil {
			chk.Panic("cannot allocate BHE element {id=%d}:\n%v", cell.Id, err)
		}
		return o
	})
}

// New returns a new element
//  nip -- number of integration points; 0 => default
func New(mdl bhe.Model, cell *inp.Cell, x [][]float64, nip int) (o *Element, err error) {

	// basic data
	o = new(Element)
	o.Cell = cell
	o.X = x
	o.Mdl = mdl
	o.Shp = shp.Get(cell.Type, 0)
	if o.Shp == nil {
		return nil, chk.Err("shape %q is not available for BHE elements", cell.Type)
	}
	o.Nn = o.Shp.Nverts
	o.Nu = mdl.NumUnknowns()

	// integration points
	o.IpsElem, err = shp.GetIps(cell.Type, nip)
	if err != nil {
		return nil, err
	}

	// local matrices
	nloc := (1 + o.Nu) * o.Nn
	o.M = utl.Alloc(nloc, nloc)
	o.K = utl.Alloc(nloc, nloc)

	// scratchpad
	o.nn = utl.Alloc(o.Nn, o.Nn)
	o.loc = utl.Alloc(o.Nn, o.Nn)
	o.r = utl.Alloc(o.Nu*o.Nn, o.Nu*o.Nn)
	o.rps = utl.Alloc(o.Nu*o.Nn, o.Nn)
	o.rs = utl.Alloc(o.Nn, o.Nn)
	o.tang = make([]float64, 3)
	return
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Element) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Element) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != o.Nn {
		return chk.Err("BHE element {id=%d}: number of nodes in eqs is incorrect. %d != %d", o.Cell.Id, len(eqs), o.Nn)
	}
	o.Umap = make([]int, (1+o.Nu)*o.Nn)
	for m := 0; m < o.Nn; m++ {
		if len(eqs[m]) != 1+o.Nu {
			return chk.Err("BHE element {id=%d}: number of dofs at node %d is incorrect. %d != %d", o.Cell.Id, m, len(eqs[m]), 1+o.Nu)
		}
		for k := 0; k <= o.Nu; k++ {
			o.Umap[k*o.Nn+m] = eqs[m][k]
		}
	}
	return
}

// AddToRhs adds M/Δt・yold to global vector fb
func (o *Element) AddToRhs(fb []float64, sol *ele.Solution) (err error) {
	err = o.Assemble()
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			fb[I] += o.M[i][j] * sol.Yold[J] / sol.Dt
		}
	}
	return
}

// AddToKb adds M/Δt + K to global matrix Kb
func (o *Element) AddToKb(Kb *mat.Dense, sol *ele.Solution) (err error) {
	err = o.Assemble()
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.M[i][j]/sol.Dt+o.K[i][j])
		}
	}
	return
}

// Assemble computes the local M and K matrices with the current coefficients of the model
func (o *Element) Assemble() (err error) {

	// clear matrices
	fill(o.M, 0)
	fill(o.K, 0)
	fill(o.nn, 0)

	// for each integration point
	nn := o.Nn
	for _, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		S := o.Shp.S
		G := o.Shp.Gvec
		coef := o.Shp.J * ip[3]
		floats.ScaleTo(o.tang, 1.0/o.Shp.J, o.Shp.Jvec3d)

		// ∫ Nᵀ N ds
		for m := 0; m < nn; m++ {
			for n := 0; n < nn; n++ {
				o.nn[m][n] += coef * S[m] * S[n]
			}
		}

		// mass, diffusion and advection of each unknown
		for k := 0; k < o.Nu; k++ {
			mass := o.Mdl.MassCoeff(k)
			lap := o.Mdl.LaplaceCoeff(k)
			adv := floats.Dot(o.Mdl.AdvectionVector(k), o.tang)
			b := (1 + k) * nn
			for m := 0; m < nn; m++ {
				for n := 0; n < nn; n++ {
					o.M[b+m][b+n] += coef * S[m] * S[n] * mass
					o.K[b+m][b+n] += coef * (G[m]*lap*G[n] + S[m]*adv*G[n])
				}
			}
		}
	}

	// exchange terms
	fill(o.r, 0)
	fill(o.rps, 0)
	fill(o.rs, 0)
	for t := 0; t < o.Mdl.NumExchangeTerms(); t++ {
		φ := o.Mdl.HeatExchangeCoeff(t)
		for m := 0; m < nn; m++ {
			for n := 0; n < nn; n++ {
				o.loc[m][n] = φ * o.nn[m][n]
			}
		}
		o.Mdl.AddRMatrices(t, nn, o.loc, o.r, o.rps, o.rs)
	}

	// K := K + [Rs  Rpsᵀ ; Rps  R]
	for i := 0; i < nn; i++ {
		for j := 0; j < nn; j++ {
			o.K[i][j] += o.rs[i][j]
		}
	}
	for a := 0; a < o.Nu*nn; a++ {
		for j := 0; j < nn; j++ {
			o.K[nn+a][j] += o.rps[a][j]
			o.K[j][nn+a] += o.rps[a][j]
		}
		for b := 0; b < o.Nu*nn; b++ {
			o.K[nn+a][nn+b] += o.r[a][b]
		}
	}
	return
}

// output ///////////////////////////////////////////////////////////////////////////////////////////

// OutIpCoords returns the coordinates of integration points
func (o *Element) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
//  qgs -- heat flow rate per unit length from grout to soil
func (o *Element) OutIpKeys() []string {
	return []string{"qgs"}
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Element) OutIpVals(M *ele.IpsMap, sol *ele.Solution) (err error) {
	nip := len(o.IpsElem)
	for idx, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, false)
		if err != nil {
			return
		}
		M.Set("qgs", idx, nip, o.qgs(sol))
	}
	return
}

// SoilHeatRate returns the heat flow rate from grout to soil integrated along the element
func (o *Element) SoilHeatRate(sol *ele.Solution) (q float64, err error) {
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		q += o.qgs(sol) * o.Shp.J * ip[3]
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// qgs computes the heat flow rate per unit length from grout to soil at the current S.
// Grout zones are the last unknowns and the grout-soil conductance is the last exchange term.
func (o *Element) qgs(sol *ele.Solution) (q float64) {
	nn := o.Nn
	ng := o.Mdl.NumGroutZones()
	φ := o.Mdl.HeatExchangeCoeff(o.Mdl.NumExchangeTerms() - 1)
	var ts float64
	for m := 0; m < nn; m++ {
		ts += o.Shp.S[m] * sol.Y[o.Umap[m]]
	}
	for g := o.Nu - ng; g < o.Nu; g++ {
		var tg float64
		for m := 0; m < nn; m++ {
			tg += o.Shp.S[m] * sol.Y[o.Umap[(1+g)*nn+m]]
		}
		q += φ * (tg - ts)
	}
	return
}

// fill sets all values of a to v
func fill(a [][]float64, v float64) {
	for i := range a {
		for j := range a[i] {
			a[i][j] = v
		}
	}
}
