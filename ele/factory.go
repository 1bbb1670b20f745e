// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
//  ibhe -- index of borehole in sim.Bhes
type InfoFuncType func(sim *inp.Simulation, ibhe int, cell *inp.Cell) *Info

// AllocatorType defines a function that allocates an element
//  ibhe -- index of borehole in sim.Bhes
type AllocatorType func(sim *inp.Simulation, ibhe int, cell *inp.Cell, x [][]float64) Element

// GetInfo returns information about elements from factory
func GetInfo(sim *inp.Simulation, ibhe int, cell *inp.Cell) (info *Info, err error) {
	edat := &sim.Bhes[ibhe].Elem
	fcn, ok := infofactory[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, id=%d}", edat.Type, cell.Id)
		return
	}
	info = fcn(sim, ibhe, cell)
	if info == nil {
		err = chk.Err("info for element {type=%q, id=%d} is not available", edat.Type, cell.Id)
	}
	return
}

// New returns a new element from from factory
func New(sim *inp.Simulation, ibhe int, cell *inp.Cell) (ele Element, err error) {
	edat := &sim.Bhes[ibhe].Elem
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, id=%d}", edat.Type, cell.Id)
		return
	}
	x := BuildCoordsMatrix(cell, sim.Meshes[ibhe])
	ele = fcn(sim, ibhe, cell, x)
	if ele == nil {
		err = chk.Err("element {type=%q, id=%d} is not available", edat.Type, cell.Id)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
