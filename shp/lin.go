// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {

	// lin2
	lin2 := &Shape{
		Type:      "lin2",
		Func:      Lin2,
		Gndim:     1,
		Nverts:    2,
		VtkCode:   3,
		NatCoords: [][]float64{{-1, 1}},
		DefNip:    2,
	}
	lin2.init_scratchpad()
	factory["lin2"] = lin2

	// lin3
	lin3 := &Shape{
		Type:      "lin3",
		Func:      Lin3,
		Gndim:     1,
		Nverts:    3,
		VtkCode:   21,
		NatCoords: [][]float64{{-1, 1, 0}},
		DefNip:    3,
	}
	lin3.init_scratchpad()
	factory["lin3"] = lin3
}

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//   -1     0    +1
//    0-----------1-->r
func Lin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// Lin3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//   -1     0    +1
//    0-----2-----1-->r
func Lin3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (r*r - r)
	S[1] = 0.5 * (r*r + r)
	S[2] = 1.0 - r*r
	if !derivs {
		return
	}
	dSdR[0][0] = r - 0.5
	dSdR[1][0] = r + 0.5
	dSdR[2][0] = -2.0 * r
}
