// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	s := make([]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		num := fd.Derivative(func(x float64) float64 {
			shape.Func(s, nil, []float64{x, 0, 0}, false)
			return s[m]
		}, r[0], &fd.Settings{Formula: fd.Central})
		if verbose {
			io.Pf("dS%d/dR: ana = %v  num = %v\n", m, shape.DSdR[m][0], num)
		}
		chk.Float64(tst, io.Sf("dS%d/dR", m), tol, shape.DSdR[m][0], num)
	}
}

// CheckGvec checks G=dSds (derivatives w.r.t arc length) of line shapes
//  xmat -- [ndim][nverts] coordinates matrix
func CheckGvec(tst *testing.T, shape *Shape, xmat [][]float64, r []float64, tol float64, verbose bool) {

	// analytical
	err := shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	ana := append([]float64{}, shape.Gvec...)

	// numerical dx/dR
	s := make([]float64, shape.Nverts)
	eval := func(x float64) {
		shape.Func(s, nil, []float64{x, 0, 0}, false)
	}
	dxdr := make([]float64, len(xmat))
	for i := range xmat {
		dxdr[i] = fd.Derivative(func(x float64) float64 {
			eval(x)
			return floats.Dot(s, xmat[i])
		}, r[0], &fd.Settings{Formula: fd.Central})
	}
	jac := floats.Norm(dxdr, 2)

	// numerical dS/ds
	num := make([]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		num[m] = fd.Derivative(func(x float64) float64 {
			eval(x)
			return s[m]
		}, r[0], &fd.Settings{Formula: fd.Central}) / jac
	}
	if verbose {
		io.Pf("Gvec: ana = %v  num = %v\n", ana, num)
	}
	chk.Array(tst, "dS/ds", tol, ana, num)
}
