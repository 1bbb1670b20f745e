// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for line elements along boreholes
package shp

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// constants
const MINDET = 1.0e-14 // minimum norm allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "lin2"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "lin3" => gnd == 1 (even in 3D simulations)
	Nverts    int         // number of vertices in cell; e.g. "lin3" => 3
	VtkCode   int         // VTK code
	NatCoords [][]float64 // natural coordinates [gndim][nverts]
	DefNip    int         // default number of integration points

	// scratchpad
	S      []float64   // [nverts] shape functions
	DSdR   [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	J      float64     // Jacobian: norm of dxdR
	Jvec3d []float64   // dxdR (size==3)
	Gvec   []float64   // [nverts] G == dSds. derivative of shape function w.r.t arc length
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := o
	p.NatCoords = cloneMat(o.NatCoords)
	p.S = append([]float64{}, o.S...)
	p.DSdR = cloneMat(o.DSdR)
	p.Jvec3d = append([]float64{}, o.Jvec3d...)
	p.Gvec = append([]float64{}, o.Gvec...)
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
//  x -- [ndim][nverts] coordinates matrix
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates S, Jvec3d, J and Gvec at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of line element (ndim <= 3)
//   ip              -- integration point
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// Jvec3d == dxdR
	for i := 0; i < 3; i++ {
		o.Jvec3d[i] = 0.0
		if i >= len(x) {
			continue
		}
		for m := 0; m < o.Nverts; m++ {
			o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
		}
	}

	// J = norm of Jvec3d
	o.J = floats.Norm(o.Jvec3d, 2)
	if o.J < MINDET {
		return chk.Err("%s: norm of dxdR is too small (%g). element may be collapsed", o.Type, o.J)
	}

	// G
	for m := 0; m < o.Nverts; m++ {
		o.Gvec[m] = o.DSdR[m][0] / o.J
	}
	return
}

// init_scratchpad initialise scratchpad
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = make([][]float64, o.Nverts)
	for m := 0; m < o.Nverts; m++ {
		o.DSdR[m] = make([]float64, o.Gndim)
	}
	o.Jvec3d = make([]float64, 3)
	o.Gvec = make([]float64, o.Nverts)
}

func cloneMat(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = append([]float64{}, a[i]...)
	}
	return
}
