// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package energetics aggregates per-atom energies into system-wide
// thermodynamic scalars each step.
package energetics

import "github.com/cpmech/gomd/atom"

// boltzmannConstant in the canonical ("atomic") internal unit system
const boltzmannConstant = 1.0

// Energetics holds the scalar sums recomputed every step
type Energetics struct {
	PotentialEnergy float64
	KineticEnergy   float64
	TotalEnergy     float64
	Temperature     float64
}

// Update recomputes every field from the current atom states.
// PotentialEnergy is Sum(atom.Current.PotentialEnergy)/2: the pair
// potential's Update (see the potential package) accumulates each pair's
// energy once per endpoint, so the raw sum double-counts every pair (see
// DESIGN.md).
// KineticEnergy is Sum(0.5*m*|v|^2). Temperature follows the
// equipartition relation T = 2*KE/(3*N*k_B) in internal units.
func Update(atoms atom.Set) Energetics {
	var e Energetics
	var potentialSum float64
	for i := range atoms {
		potentialSum += atoms[i].Current.PotentialEnergy
		v := atoms[i].Current.Velocity
		e.KineticEnergy += 0.5 * atoms[i].Mass * v.Dot(v)
	}
	e.PotentialEnergy = potentialSum / 2
	e.TotalEnergy = e.PotentialEnergy + e.KineticEnergy
	if n := len(atoms); n > 0 {
		e.Temperature = 2 * e.KineticEnergy / (3 * float64(n) * boltzmannConstant)
	}
	return e
}
