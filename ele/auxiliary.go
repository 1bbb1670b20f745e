// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cguevaramorel/ogs/inp"
	"github.com/cpmech/gosl/utl"
)

// BuildCoordsMatrix returns the coordinate matrix [3][nverts] of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(3, len(cell.Verts))
	for i := 0; i < 3; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}
