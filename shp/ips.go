// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate/quad"
)

// Ipoint holds integration point data: natural coordinates and weight {r, s, t, w}
type Ipoint []float64

// GetIps returns the Gauss-Legendre integration points of a line shape
//  nip -- number of integration points; 0 => use default of geoType
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot find integration points for shape %q", geoType)
	}
	if nip == 0 {
		nip = s.DefNip
	}
	if nip < 1 || nip > 5 {
		return nil, chk.Err("number of integration points for %q must be in [1,5]. %d is invalid", geoType, nip)
	}
	x := make([]float64, nip)
	w := make([]float64, nip)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	ips = make([]Ipoint, nip)
	for i := 0; i < nip; i++ {
		ips[i] = Ipoint{x[i], 0, 0, w[i]}
	}
	return
}
