// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "sort"

// IpsMap holds values at the integration points of one element. ex: "qgs" => [nip]
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets the value of key at integration point idx, allocating nip values on first use
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	vals, ok := (*o)[key]
	if !ok {
		vals = make([]float64, nip)
		(*o)[key] = vals
	}
	vals[idx] = val
}

// Get returns the value of key at integration point idx or zero if key is not available
func (o *IpsMap) Get(key string, idx int) float64 {
	if vals, ok := (*o)[key]; ok {
		return vals[idx]
	}
	return 0
}

// Keys returns the sorted keys
func (o *IpsMap) Keys() (keys []string) {
	for key := range *o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}
