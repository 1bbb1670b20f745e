// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBc holds information about essential bounday conditions such as constrained nodes.
// Lagrange multipliers are used to implement both single- and multi-point constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・y = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / y \   /  fb  \
//     |         | |   | = |      |
//     |_ A   0 _| \ λ /   \  c   /
//         Kb        yb
//
type EssentialBc struct {
	Key   string    // key such as 'Ts', 'i1', 'inflow', 'bottom'
	Eqs   []int     // equations numbers; more than one for multi-point constraints
	ValsA []float64 // values for matrix A
	Fcn   bhe.Curve // function that implements the "c" vector in  A・y = c
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs / constraints.
// Each constraint will have a unique Lagrange multiplier index.
type EssentialBcs struct {
	Bcs EbcArray   // active essential bcs / constraints
	A   *mat.Dense // matrix of coefficients 'A'
}

// Zero implements the zero function
var Zero = bhe.CurveFunc(func(float64) float64 { return 0 })

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.A = nil
}

// Build builds the structures required for assembling A matrix
//  nλ -- is the number of essential bcs / constraints == number of Lagrange multipliers
func (o *EssentialBcs) Build(ny int) (nλ int) {

	// skip if there are no constraints
	nλ = len(o.Bcs)
	if nλ == 0 {
		return
	}

	// sort bcs to number Lagrange multipliers in a fixed order
	sort.Sort(o.Bcs)

	// set matrix A
	o.A = mat.NewDense(nλ, ny, nil)
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			o.A.Set(i, eq, bc.ValsA[j])
		}
	}
	return
}

// AddToKb adds A and At to the augmented Kb matrix
func (o *EssentialBcs) AddToKb(Kb *mat.Dense, ny int) {
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			Kb.Set(ny+i, eq, bc.ValsA[j])
			Kb.Set(eq, ny+i, bc.ValsA[j])
		}
	}
}

// AddToRhs sets the c values of constraints into the augmented fb vector
func (o *EssentialBcs) AddToRhs(fb []float64, ny int, t float64) {
	for i, bc := range o.Bcs {
		fb[ny+i] = bc.Fcn.Value(t)
	}
}

// Set sets single-point constraints on dof key of all nodes
//  Note: nodes without key are skipped
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn bhe.Curve) (err error) {
	if len(nodes) == 0 {
		return chk.Err("cannot set essential boundary condition %q because list of nodes is empty", key)
	}
	for _, nod := range nodes {
		d := nod.GetDof(key)
		if d == nil {
			continue
		}
		o.set_eqs(key, []int{d.Eq}, []float64{1}, fcn)
	}
	return
}

// SetTied sets the multi-point constraint  y[a] - y[b] = 0
func (o *EssentialBcs) SetTied(key string, a, b *Dof) {
	o.set_eqs(key, []int{a.Eq, b.Eq}, []float64{1, -1}, Zero)
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%10s%24s%24s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%10s%24.13f%24.13f\n", bc.Eqs[0], bc.Key, bc.Fcn.Value(0), bc.Fcn.Value(t))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eqs sets/replace constraint and equations
func (o *EssentialBcs) set_eqs(key string, eqs []int, valsA []float64, fcn bhe.Curve) {

	// replace existent
	for _, eq := range eqs {
		for _, bc := range o.Bcs {
			for _, eqOld := range bc.Eqs {
				if eqOld == eq {
					bc.Key, bc.Eqs, bc.ValsA, bc.Fcn = key, eqs, valsA, fcn
					return
				}
			}
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssentialBc{key, eqs, valsA, fcn})
}

// functions to implement Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return minEq(o[i]) < minEq(o[j]) }

// minEq returns the smallest equation of bc without changing the order of Eqs (paired with ValsA)
func minEq(bc *EssentialBc) int {
	m := bc.Eqs[0]
	for _, eq := range bc.Eqs[1:] {
		if eq < m {
			m = eq
		}
	}
	return m
}
