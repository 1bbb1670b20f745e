// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path; may be empty
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/ogs
	ListBcs bool   `json:"listbcs"` // list boundary conditions
}

// SolverData holds FEM solver data
type SolverData struct {
	Type   string  `json:"type"`   // solver type. "imp" => implicit Euler with Picard iterations
	NmaxIt int     `json:"nmaxit"` // max number of Picard iterations
	Atol   float64 `json:"atol"`   // absolute tolerance on max(|Δy|)
	ShowR  bool    `json:"showr"`  // show iterations
}

// SoilData holds data of the soil surrounding the boreholes
type SoilData struct {
	TempFcn string `json:"tempfcn"` // function of time with the soil temperature at the boreholes
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final time
	Dt    float64 `json:"dt"`    // time step size
	DtOut float64 `json:"dtout"` // time step size for output
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global simulation data
	Functions FuncsData   `json:"functions"` // all functions and curves
	Bhes      []*BheData  `json:"bhes"`      // borehole heat exchangers
	Soil      SoilData    `json:"soil"`      // soil data
	Solver    SolverData  `json:"solver"`    // FEM solver data
	Control   TimeControl `json:"control"`   // time control

	// derived
	DirOut    string      `json:"-"` // directory to save results
	Key       string      `json:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatModels *MatDb      `json:"-"` // materials; nil if Matfile is empty
	Models    []bhe.Model `json:"-"` // [nbhes] BHE models
	Meshes    []*Mesh     `json:"-"` // [nbhes] meshes along each borehole
	SoilTemp  bhe.Curve   `json:"-"` // soil temperature versus time
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/ogs/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		old, _ := filepath.Glob(filepath.Join(o.DirOut, o.Key+"*"))
		for _, fn := range old {
			os.Remove(fn)
		}
	}

	// functions and materials
	o.Functions.fixPaths(dir)
	if o.Data.Matfile != "" {
		o.MatModels, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read materials file:\n%v", err)
		}
		o.Functions = append(o.Functions, o.MatModels.Functions...)
	}

	// soil
	if o.Soil.TempFcn == "" {
		return nil, chk.Err("ReadSim: soil temperature function (tempfcn) must be given")
	}
	o.SoilTemp, err = o.Functions.Get(o.Soil.TempFcn)
	if err != nil {
		return nil, chk.Err("ReadSim: soil temperature:\n%v", err)
	}

	// time control
	o.Control.PostProcess()

	// boreholes
	if len(o.Bhes) == 0 {
		return nil, chk.Err("ReadSim: at least one BHE must be given")
	}
	names := make(map[string]bool)
	o.Models = make([]bhe.Model, len(o.Bhes))
	o.Meshes = make([]*Mesh, len(o.Bhes))
	for i, dat := range o.Bhes {
		if names[dat.Name] {
			return nil, chk.Err("ReadSim: BHE named %q is defined more than once", dat.Name)
		}
		names[dat.Name] = true
		dat.Elem.PostProcess()
		o.Models[i], err = dat.Model(o.Functions, o.MatModels)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot allocate BHE model:\n%v", err)
		}
		o.Meshes[i], err = NewLineMesh(dat.Top, o.Models[i].Params().Geo.Length, dat.Elem.Nelems, dat.Elem.Cell)
		if err != nil {
			return nil, chk.Err("ReadSim: BHE %q:\n%v", dat.Name, err)
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.Type = "imp"
	o.NmaxIt = 20
	o.Atol = 1e-6
}

// PostProcess fixes zero values of time control
func (o *TimeControl) PostProcess() {
	if o.Tf < 1e-14 {
		o.Tf = 1
	}
	if o.Dt < 1e-14 {
		o.Dt = o.Tf
	}
	if o.DtOut < o.Dt {
		o.DtOut = o.Dt
	}
}

// PostProcess fixes zero values of element data
func (o *ElemData) PostProcess() {
	if o.Type == "" {
		o.Type = "bhe"
	}
	if o.Cell == "" {
		o.Cell = "lin2"
	}
	if o.Nelems < 1 {
		o.Nelems = 10
	}
}
