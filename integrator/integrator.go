// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator defines the time-stepper capability set (Step) and
// dispatches, by name, to one of a small closed set of variants --
// currently only velocity-Verlet -- the same named-allocator-registry
// idiom potential and msolid use for their own closed variant sets.
package integrator

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/potential"
	"github.com/cpmech/gomd/units"
)

// Model is the capability set every integrator variant implements
type Model interface {
	Step(atoms atom.Set, model potential.Model, nl *neighbors.List, sys units.System) error
}

// GetModel returns a new, initialised Model for the named integrator
// ("verlet" is currently the only one). flavor selects the sub-variant
// ("velocity" is currently the only implemented one; an empty flavor
// defaults to "velocity"). Returns an InvalidConfig-class error for an
// unknown name.
func GetModel(name string, timestep float64, flavor string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("integrator: model named %q is not implemented\n", name)
	}
	return allocator(timestep, flavor)
}

// allocators holds every registered integrator model; name => allocator
var allocators = map[string]func(timestep float64, flavor string) (Model, error){}
