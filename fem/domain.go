// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cguevaramorel/ogs/ele"
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Domain holds all Nodes and Elements of all boreholes in addition to the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	Sim     *inp.Simulation // [from FEM] input data
	ShowMsg bool            // show messages

	// nodes and elements
	Nodes    []*Node         // all nodes
	Elems    []ele.Element   // all elements
	Vid2node [][]*Node       // [nbhes][nverts] VertexId => node of each borehole
	Cid2elem [][]ele.Element // [nbhes][ncells] CellId => element of each borehole
	Heads    []*Head         // [nbhes] inflow/outflow at the head of each borehole

	// coefficients and prescribed values
	EssenBcs EssentialBcs // constraints (Lagrange multipliers)

	// dimensions
	Ny   int // total number of dofs, except λ
	Nlam int // total number of Lagrange multipliers
	Nyb  int // total number of equations: ny + nλ

	// solution and linear system
	Sol *ele.Solution // solution state
	Kb  *mat.Dense    // augmented matrix
	Fb  []float64     // augmented right-hand side
	yb  mat.VecDense  // augmented solution
}

// Head holds the equations at the head of one borehole and the state of its inflow condition.
// All inflow channels receive the same inflow temperature computed from the mean outflow
// temperature at the head.
type Head struct {
	Mdl bhe.Model // resistance network
	In  []int     // equations of inflow temperatures at the head
	Out []int     // equations of outflow temperatures at the head
	Tin float64   // current inflow temperature
}

// Value returns the current inflow temperature
func (o *Head) Value(t float64) float64 { return o.Tin }

// Update computes the inflow temperature from the outflow temperatures in y
func (o *Head) Update(y []float64, t float64) (err error) {
	o.Tin, err = o.Mdl.TinByTout(mean(y, o.Out), t)
	return
}

// Temps returns the mean inflow and outflow temperatures at the head
func (o *Head) Temps(y []float64) (tin, tout float64) {
	return mean(y, o.In), mean(y, o.Out)
}

// NewDomain allocates nodes, elements, equations and constraints of all boreholes
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.ShowMsg = verbose
	nbhes := len(sim.Bhes)
	o.Vid2node = make([][]*Node, nbhes)
	o.Cid2elem = make([][]ele.Element, nbhes)
	o.Heads = make([]*Head, nbhes)

	// nodes and equations
	for ibhe, msh := range sim.Meshes {
		o.Vid2node[ibhe] = make([]*Node, len(msh.Verts))
		o.Cid2elem[ibhe] = make([]ele.Element, len(msh.Cells))
		for _, cell := range msh.Cells {

			// information
			var info *ele.Info
			info, err = ele.GetInfo(sim, ibhe, cell)
			if err != nil {
				return
			}

			// nodes and dofs
			eqs := make([][]int, len(cell.Verts))
			for m, vid := range cell.Verts {
				nod := o.Vid2node[ibhe][vid]
				if nod == nil {
					nod = NewNode(msh.Verts[vid])
					o.Vid2node[ibhe][vid] = nod
					o.Nodes = append(o.Nodes, nod)
				}
				eqs[m] = make([]int, len(info.Dofs[m]))
				for k, key := range info.Dofs[m] {
					o.Ny = nod.AddDofAndEq(key, o.Ny)
					eqs[m][k] = nod.GetEq(key)
				}
			}

			// element
			var elem ele.Element
			elem, err = ele.New(sim, ibhe, cell)
			if err != nil {
				return
			}
			err = elem.SetEqs(eqs)
			if err != nil {
				return
			}
			o.Elems = append(o.Elems, elem)
			o.Cid2elem[ibhe][cell.Id] = elem
		}
	}

	// essential boundary conditions
	o.EssenBcs.Init()
	err = o.SetEssenBcs()
	if err != nil {
		return
	}

	// linear system
	o.Nlam = o.EssenBcs.Build(o.Ny)
	o.Nyb = o.Ny + o.Nlam
	o.Sol = ele.NewSolution(o.Ny, o.Nlam)
	o.Kb = mat.NewDense(o.Nyb, o.Nyb, nil)
	o.Fb = make([]float64, o.Nyb)
	if o.ShowMsg {
		io.Pf("> Domain: %d nodes, %d elements, %d dofs, %d constraints\n", len(o.Nodes), len(o.Elems), o.Ny, o.Nlam)
	}
	return
}

// SetEssenBcs sets the soil temperature at all nodes and, for each borehole, the inflow
// condition at the head and the connection of channels at the bottom
func (o *Domain) SetEssenBcs() (err error) {
	for ibhe, mdl := range o.Sim.Models {

		// soil
		err = o.EssenBcs.Set(soilKey, o.Vid2node[ibhe], o.Sim.SoilTemp)
		if err != nil {
			return
		}

		// head and bottom
		msh := o.Sim.Meshes[ibhe]
		top := o.Vid2node[ibhe][msh.Top.Id]
		bot := o.Vid2node[ibhe][msh.Bot.Id]
		head := &Head{Mdl: mdl}
		for _, pair := range mdl.BcPairs() {
			in, out := 1+pair[0], 1+pair[1]
			if in >= len(top.Dofs) || out >= len(top.Dofs) {
				return chk.Err("BHE %q: unknowns %v of inflow/outflow pair are not available at the head", mdl.Name(), pair)
			}
			head.In = append(head.In, top.Dofs[in].Eq)
			head.Out = append(head.Out, top.Dofs[out].Eq)
			o.EssenBcs.set_eqs("inflow", []int{top.Dofs[in].Eq}, []float64{1}, head)
			o.EssenBcs.SetTied("bottom", bot.Dofs[out], bot.Dofs[in])
		}
		o.Heads[ibhe] = head
	}
	return
}

// SetIniVals sets all temperatures to the soil temperature at time t
func (o *Domain) SetIniVals(t float64) (err error) {
	o.Sol.Reset()
	o.Sol.T = t
	T0 := o.Sim.SoilTemp.Value(t)
	for i := range o.Sol.Y {
		o.Sol.Y[i] = T0
	}
	o.Sol.Backup()
	for _, head := range o.Heads {
		head.Tin = T0
	}
	return
}

// UpdateFlowRates sets the flow rates of all boreholes from their flow rate curves, if any
func (o *Domain) UpdateFlowRates(t float64) (err error) {
	for _, mdl := range o.Sim.Models {
		err = mdl.UpdateFlowRateFromCurve(t)
		if err != nil {
			return
		}
	}
	return
}

// UpdateInflows computes the inflow temperatures from the current outflow temperatures
func (o *Domain) UpdateInflows(t float64) (err error) {
	for _, head := range o.Heads {
		err = head.Update(o.Sol.Y, t)
		if err != nil {
			return
		}
	}
	return
}

// Solve assembles and solves the linear system of the current time step. It returns the
// largest change of temperatures
func (o *Domain) Solve() (dymax float64, err error) {

	// assemble
	o.Kb.Zero()
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol)
		if err != nil {
			return
		}
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return
		}
	}
	o.EssenBcs.AddToKb(o.Kb, o.Ny)
	o.EssenBcs.AddToRhs(o.Fb, o.Ny, o.Sol.T)

	// solve
	err = o.yb.SolveVec(o.Kb, mat.NewVecDense(o.Nyb, o.Fb))
	if err != nil {
		return 0, chk.Err("cannot solve linear system at t=%g:\n%v", o.Sol.T, err)
	}

	// update
	for i := 0; i < o.Ny; i++ {
		y := o.yb.AtVec(i)
		dymax = math.Max(dymax, math.Abs(y-o.Sol.Y[i]))
		o.Sol.Y[i] = y
	}
	for i := 0; i < o.Nlam; i++ {
		o.Sol.L[i] = o.yb.AtVec(o.Ny + i)
	}
	return
}

// SoilHeatRate returns the heat flow rate from borehole ibhe to the soil
func (o *Domain) SoilHeatRate(ibhe int) (q float64, err error) {
	for _, e := range o.Cid2elem[ibhe] {
		if s, ok := e.(soilExchanger); ok {
			var qe float64
			qe, err = s.SoilHeatRate(o.Sol)
			if err != nil {
				return
			}
			q += qe
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// soilKey is the key of soil temperature dofs
const soilKey = "Ts"

// soilExchanger defines elements that exchange heat with the soil
type soilExchanger interface {
	SoilHeatRate(sol *ele.Solution) (float64, error)
}

// mean returns the mean of y at equations eqs
func mean(y []float64, eqs []int) (res float64) {
	for _, eq := range eqs {
		res += y[eq]
	}
	return res / float64(len(eqs))
}
