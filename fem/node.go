// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cpmech/gosl/io"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "Ts", "i1"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof      // degrees-of-freedom == solution variables
	Vert *inp.Vertex // pointer to Vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vertex) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new dof to node if it does not exist yet. It returns the next available
// equation number
func (o *Node) AddDofAndEq(key string, eqnum int) (nexteq int) {
	if o.GetDof(key) != nil {
		return eqnum
	}
	o.Dofs = append(o.Dofs, &Dof{key, eqnum})
	return eqnum + 1
}

// GetDof returns the Dof structure for given Dof name (key)
//  Note: returns nil if not found
func (o *Node) GetDof(key string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (key)
//  Note: returns -1 if not found
func (o *Node) GetEq(key string) (eq int) {
	if d := o.GetDof(key); d != nil {
		return d.Eq
	}
	return -1
}

// String returns a representation of the node
func (o *Node) String() string {
	l := io.Sf("{ \"vid\":%d, \"z\":%g, \"dofs\":[", o.Vert.Id, o.Vert.C[2])
	for i, d := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{%q:%d}", d.Key, d.Eq)
	}
	return l + "] }"
}
