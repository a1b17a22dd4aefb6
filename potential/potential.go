// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package potential defines the pair-potential capability set
// (Potential, ForceMagnitude, ApplyUnits) and dispatches, by name, to one
// of a small, closed set of variants -- currently only Lennard-Jones --
// the way msolid dispatches to its solid models via a named allocator
// registry.
package potential

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/units"
	"github.com/cpmech/gomd/vecmat"
)

// Model is the capability set every pair-potential variant implements
type Model interface {
	Potential(r float64) float64       // U(r)
	ForceMagnitude(r float64) float64  // F(r), radial; positive when repulsive
	ApplyUnits(sys units.System) error // rescale parameters into the given unit system
}

// GetModel returns a new, initialised Model for the named potential
// ("lj" is currently the only one). Returns an InvalidConfig-class error
// for an unknown name or missing/invalid parameters.
func GetModel(name string, prms fun.Prms) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("potential: model named %q is not implemented\n", name)
	}
	return allocator(prms)
}

// allocators holds every registered potential model; name => allocator
var allocators = map[string]func(fun.Prms) (Model, error){}

// Update sets atom.Current.{PotentialEnergy,Force} to zero, then
// accumulates over every neighbor of atom.ID: potential energy from
// model.Potential(r) and force from -F(r)*d_ij/r. Each pair (i,j)
// contributes to both endpoints -- the potential energy summed this way
// is double the physical pair energy by construction; halving it is left
// to the energetics aggregation step (see energetics package and
// DESIGN.md). Returns a DomainError-class error if any neighbor is
// exactly at distance zero.
func Update(model Model, a *atom.Atom, nl *neighbors.List) error {
	a.Current.PotentialEnergy = 0
	var force vecmat.Vec3
	for _, nb := range nl.Get(a.ID) {
		if nb.Distance == 0 {
			return chk.Err("potential: atoms %d and %d overlap exactly (r=0)\n", a.ID, nb.J)
		}
		a.Current.PotentialEnergy += model.Potential(nb.Distance)
		fmag := model.ForceMagnitude(nb.Distance)
		unit := nb.DistanceVector.Scale(1.0 / nb.Distance)
		force = force.Sub(unit.Scale(fmag))
	}
	a.Current.Force = force
	return nil
}
