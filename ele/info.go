// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to set the degrees of freedom of an element
type Info struct {
	Dofs   [][]string // solution variables PER NODE. ex for 2 nodes: [["Ts", "i1", "o1"], ["Ts", "i1", "o1"]]
	T1vars []string   // variables with first order time derivatives. ex: "i1", "g1"
}
