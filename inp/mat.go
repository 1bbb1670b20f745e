// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Material holds material data; e.g. the properties of a refrigerant shared by many BHEs
type Material struct {
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; "refrigerant", "grout" or "pipe"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // parameters
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// parameters accepted by each material type
var matKeys = map[string][]string{
	"refrigerant": {"mu_r", "rho_r", "lambda_r", "cp_r", "alpha_L"},
	"grout":       {"rho_g", "porosity_g", "cp_g", "lambda_g"},
	"pipe":        {"r_inner", "r_outer", "b_in", "b_out", "lambda_p", "omega"},
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q: %v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}
	mdb.Functions.fixPaths(dir)

	// check
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		keys, ok := matKeys[m.Type]
		if !ok {
			return nil, chk.Err("material type %q is incorrect; options are \"refrigerant\", \"grout\" and \"pipe\"", m.Type)
		}
		for _, p := range m.Prms {
			if utl.StrIndexSmall(keys, p.N) < 0 {
				return nil, chk.Err("parameter %q is invalid for material %q of type %q", p.N, m.Name, m.Type)
			}
		}
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.byName[name]
}

// Merge returns the parameters of the given materials followed by own; i.e. own values take
// precedence when the parameters are processed in order
func (o *MatDb) Merge(names []string, own dbf.Params) (prms dbf.Params, err error) {
	for _, name := range names {
		m := o.Get(name)
		if m == nil {
			return nil, chk.Err("cannot find material named %q", name)
		}
		prms = append(prms, m.Prms...)
	}
	prms = append(prms, own...)
	return
}
