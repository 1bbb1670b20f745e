// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//        / y \
//  yb =  |   |
//        \ λ / (nyb x 1)
//
type Solution struct {
	T    float64   // current time
	Dt   float64   // current time increment
	Y    []float64 // DOFs (temperatures)
	Yold []float64 // DOFs at the beginning of the time step
	L    []float64 // Lagrange multipliers
}

// NewSolution allocates a new solution
func NewSolution(ny, nlam int) *Solution {
	return &Solution{
		Y:    make([]float64, ny),
		Yold: make([]float64, ny),
		L:    make([]float64, nlam),
	}
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.Yold[i] = 0
	}
	for i := 0; i < len(o.L); i++ {
		o.L[i] = 0
	}
}

// Backup copies Y into Yold
func (o *Solution) Backup() {
	copy(o.Yold, o.Y)
}
