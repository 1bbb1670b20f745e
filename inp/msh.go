// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vertex holds vertex data
type Vertex struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates (size==3)
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"i"` // id
	Tag   int    `json:"t"` // tag
	Type  string `json:"y"` // geometry type; e.g. "lin2"
	Verts []int  `json:"v"` // vertices
}

// Mesh holds a mesh of line cells along one borehole
//  Vertices are numbered from the head (top) to the bottom of the borehole. The head vertex has
//  tag -1 and the bottom vertex has tag -2.
type Mesh struct {
	Verts []*Vertex // vertices
	Cells []*Cell   // cells
	Top   *Vertex   // head of borehole
	Bot   *Vertex   // bottom of borehole
}

// tags of borehole ends
const (
	TagTop = -1
	TagBot = -2
)

// NewLineMesh generates a mesh of nelems cells along the vertical axis, from z=top down to
// z=top-length.
//  ctype -- "lin2" or "lin3"
func NewLineMesh(top, length float64, nelems int, ctype string) (o *Mesh, err error) {
	if nelems < 1 {
		return nil, chk.Err("number of elements must be at least 1. %d is invalid", nelems)
	}
	if length <= 0 {
		return nil, chk.Err("length of mesh must be positive. %g is invalid", length)
	}
	var nvc int // number of vertices per cell
	switch ctype {
	case "lin2":
		nvc = 2
	case "lin3":
		nvc = 3
	default:
		return nil, chk.Err("cell type %q is not available for borehole meshes", ctype)
	}

	// vertices: lin3 cells have their middle vertex numbered in sequence
	o = new(Mesh)
	nv := nelems*(nvc-1) + 1
	dz := length / float64(nv-1)
	o.Verts = make([]*Vertex, nv)
	for i := 0; i < nv; i++ {
		o.Verts[i] = &Vertex{Id: i, C: []float64{0, 0, top - float64(i)*dz}}
	}
	o.Verts[nv-1].C[2] = top - length
	o.Top, o.Bot = o.Verts[0], o.Verts[nv-1]
	o.Top.Tag, o.Bot.Tag = TagTop, TagBot

	// cells
	o.Cells = make([]*Cell, nelems)
	for e := 0; e < nelems; e++ {
		a := e * (nvc - 1)
		c := &Cell{Id: e, Tag: -1, Type: ctype}
		if nvc == 2 {
			c.Verts = []int{a, a + 1}
		} else {
			c.Verts = []int{a, a + 2, a + 1}
		}
		o.Cells[e] = c
	}
	return
}

// String returns a representation of the mesh
func (o *Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, v := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    { \"i\":%d, \"t\":%d, \"c\":[%g, %g, %g] }", v.Id, v.Tag, v.C[0], v.C[1], v.C[2])
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, c := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    { \"i\":%d, \"t\":%d, \"y\":%q, \"v\":%v }", c.Id, c.Tag, c.Type, c.Verts)
	}
	l += "\n  ]\n}"
	return l
}
