// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of BHE simulations: histories of temperatures and
// powers at the head of boreholes and profiles of integration point values along boreholes
package out

import (
	"sort"

	"github.com/cguevaramorel/ogs/ele"
	"github.com/cguevaramorel/ogs/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// IpData is an auxiliary structure holding element id and integration point coordinates
type IpData struct {
	Bhe  int                // index of borehole
	Cid  int                // id of cell/element holding this integration point
	X    []float64          // coordinates of integration point
	Vals map[string]float64 // current (@ time t) values
}

// Ips holds the integration points of all elements that can output values
type Ips struct {
	Dom        *fem.Domain          // FE domain
	Ipoints    []*IpData            // all integration points. ipid == index in Ipoints
	Cid2ips    [][][]int            // [nbhes][ncells][nip] maps cell id to index in Ipoints
	Ipkey2ips  map[string][]int     // maps ip keys to indices in Ipoints
	Ipkeys     map[string]bool      // all ip keys
	Zmin       float64              // smallest elevation among all ips
	Zmax       float64              // largest elevation among all ips
	ElemOutIps [][]ele.CanOutputIps // [nbhes] subset of element that can output IP values
}

// NewIps collects the integration points of all boreholes in dom
func NewIps(dom *fem.Domain) (o *Ips) {

	// clear previous data
	o = new(Ips)
	o.Dom = dom
	nbhes := len(dom.Cid2elem)
	o.Cid2ips = make([][][]int, nbhes)
	o.Ipkey2ips = make(map[string][]int)
	o.Ipkeys = make(map[string]bool)
	o.ElemOutIps = make([][]ele.CanOutputIps, nbhes)

	// for all boreholes
	first := true
	for ibhe, elems := range dom.Cid2elem {
		o.Cid2ips[ibhe] = make([][]int, len(elems))
		for cid, element := range elems {
			e, ok := element.(ele.CanOutputIps)
			if !ok {
				continue
			}

			// add integration points to slice of ips
			coords := e.OutIpCoords()
			keys := e.OutIpKeys()
			ids := make([]int, len(coords))
			for i, x := range coords {
				ipid := len(o.Ipoints)
				ids[i] = ipid
				o.Ipoints = append(o.Ipoints, &IpData{ibhe, cid, x, make(map[string]float64)})

				// set auxiliary map
				for _, key := range keys {
					utl.StrIntsMapAppend(o.Ipkey2ips, key, ipid)
					o.Ipkeys[key] = true
				}

				// limits
				if first {
					o.Zmin, o.Zmax = x[2], x[2]
					first = false
				} else {
					o.Zmin = utl.Min(o.Zmin, x[2])
					o.Zmax = utl.Max(o.Zmax, x[2])
				}
			}
			o.Cid2ips[ibhe][cid] = ids
			o.ElemOutIps[ibhe] = append(o.ElemOutIps[ibhe], e)
		}
	}
	return
}

// Update computes the values at all integration points using the current solution
func (o *Ips) Update() (err error) {
	for ibhe, elems := range o.ElemOutIps {
		for _, e := range elems {
			M := ele.NewIpsMap()
			err = e.OutIpVals(M, o.Dom.Sol)
			if err != nil {
				return chk.Err("cannot compute values at integration points of element %d of borehole %d:\n%v", e.Id(), ibhe, err)
			}
			for _, key := range M.Keys() {
				for i, ipid := range o.Cid2ips[ibhe][e.Id()] {
					o.Ipoints[ipid].Vals[key] = M.Get(key, i)
				}
			}
		}
	}
	return
}

// Profile returns the elevations and values of key at the integration points of borehole ibhe,
// ordered from top to bottom
//  Note: Update must be called first
func (o *Ips) Profile(ibhe int, key string) (z, vals []float64, err error) {
	if !o.Ipkeys[key] {
		return nil, nil, chk.Err("integration points do not have key %q", key)
	}
	var pts []*IpData
	for _, ipid := range o.Ipkey2ips[key] {
		if o.Ipoints[ipid].Bhe == ibhe {
			pts = append(pts, o.Ipoints[ipid])
		}
	}
	if len(pts) == 0 {
		return nil, nil, chk.Err("borehole %d does not have integration points with key %q", ibhe, key)
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X[2] > pts[j].X[2] })
	z = make([]float64, len(pts))
	vals = make([]float64, len(pts))
	for i, p := range pts {
		z[i], vals[i] = p.X[2], p.Vals[key]
	}
	return
}
