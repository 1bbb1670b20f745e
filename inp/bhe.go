// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cguevaramorel/ogs/mdl/bhe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BheData holds the definition of one borehole heat exchanger
type BheData struct {

	// input data
	Name      string            `json:"name"`      // name of BHE
	Type      string            `json:"type"`      // topology: 1U, 2U, CXA or CXC
	Bound     string            `json:"bound"`     // boundary type. ex: FIXED_TEMP_DIFF
	Discharge string            `json:"discharge"` // 2U only: parallel or serial
	UseQcurve bool              `json:"useqcurve"` // use flow_rate_curve
	Curves    map[string]string `json:"curves"`    // curve role => function name. ex: "power_in_watt_curve":"load"
	Mats      []string          `json:"mats"`      // materials providing parameters. ex: ["water", "pe100"]
	Prms      dbf.Params        `json:"prms"`      // parameters; see bhe.Config.Init. override those in Mats
	Top       float64           `json:"top"`       // elevation of the borehole head
	Elem      ElemData          `json:"elem"`      // element data
}

// ElemData holds element data
type ElemData struct {
	Type   string `json:"type"`   // type of element. ex: bhe
	Cell   string `json:"cell"`   // type of cell. ex: lin2, lin3
	Nelems int    `json:"nelems"` // number of elements along the borehole
	Nip    int    `json:"nip"`    // number of integration points; 0 => use default
}

// Config returns the BHE configuration
//  Note: mdb may be nil if Mats is empty
func (o *BheData) Config(mdb *MatDb) (cfg *bhe.Config, err error) {
	prms := o.Prms
	if len(o.Mats) > 0 {
		if mdb == nil {
			return nil, chk.Err("BHE %q: materials %v cannot be found because materials database is not available", o.Name, o.Mats)
		}
		if prms, err = mdb.Merge(o.Mats, o.Prms); err != nil {
			return nil, chk.Err("BHE %q:\n%v", o.Name, err)
		}
	}
	cfg = &bhe.Config{Name: o.Name, UseQcurve: o.UseQcurve}
	if cfg.Bound, err = bhe.BoundaryTypeFromString(o.Bound); err != nil {
		return nil, chk.Err("BHE %q:\n%v", o.Name, err)
	}
	if cfg.Discharge, err = bhe.DischargeTypeFromString(o.Discharge); err != nil {
		return nil, chk.Err("BHE %q:\n%v", o.Name, err)
	}
	if err = cfg.Init(prms); err != nil {
		return nil, err
	}
	return
}

// Model allocates and initialises the BHE model using functions from funcs
func (o *BheData) Model(funcs FuncsData, mdb *MatDb) (mdl bhe.Model, err error) {
	cfg, err := o.Config(mdb)
	if err != nil {
		return
	}
	curves, err := funcs.Curves(o.Curves)
	if err != nil {
		return nil, chk.Err("BHE %q:\n%v", o.Name, err)
	}
	return bhe.NewWithConfig(o.Type, cfg, curves)
}

