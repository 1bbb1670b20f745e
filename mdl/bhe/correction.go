// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bhe

import (
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
)

// relaxation factors applied to χ by the correction procedure. The last step sets χ = 0.
var chiRelaxation = []float64{0.66, 0.5, 0.0}

// groutConstraint computes 1/(1/Rgg + 1/(2・Rgs)), which must not be negative
func groutConstraint(Rgg, Rgs float64) float64 {
	return 1.0 / ((1.0 / Rgg) + (1.0 / (2.0 * Rgs)))
}

// interGroutResistance computes Rgg from Rgs, Rar and χ・Rg
func interGroutResistance(Rgs, Rar, chiRg float64) float64 {
	return 2.0 * Rgs * (Rar - 2.0*chiRg) / (2.0*Rgs - Rar + 2.0*chiRg)
}

// correctChi applies the correction procedure for negative thermal resistances
// (FEFLOW White Papers Vol V, section 1.5.5).
//
//  χ is reduced by 0.66, then by 0.5, and finally set to zero; after each reduction, update
//  recomputes Rgs and Rgg and reports whether some constraint is still violated. The
//  procedure stops as soon as no constraint is violated or after the third step.
//
//  Input:
//   name     -- name of BHE; for messages
//   chi      -- initial χ
//   violated -- whether some constraint is violated with the initial χ
//   override -- user defined resistances are active; a violated constraint is then an error
//   update   -- recomputes resistances for a given χ and returns the violation state
//  Output:
//   steps -- χ values after each step; empty if no correction was applied
func correctChi(name string, chi float64, violated, override bool, update func(chi float64) bool) (steps []float64, err error) {
	for count := 0; violated; count++ {
		if override {
			return steps, chk.Err("BHE %q: constraints on thermal resistances are violated and the correction procedure cannot be applied to user defined thermal resistances", name)
		}
		chi *= chiRelaxation[count]
		violated = update(chi)
		steps = append(steps, chi)
		log.WithFields(log.Fields{"bhe": name, "step": count, "chi": chi}).Info("correction procedure applied due to negative thermal resistance")
		if count == len(chiRelaxation)-1 {
			break
		}
	}
	return
}
