// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/internal/parallelfor"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/potential"
	"github.com/cpmech/gomd/units"
)

// verlet implements the velocity-Verlet time-stepper: a fixed
// half-kick/drift/force-refresh/half-kick schedule per atom, each atom's
// own previous state and own newly-computed force -- the latter read
// from the neighbor list's pre-step distance vectors, so atoms within a
// step are independent and race-free to update in parallel.
//
// flavor selects the Verlet sub-variant; "velocity" is the only
// implemented one, and anything else is a named, logged no-op rather
// than an error -- the extension point for a future leapfrog or
// position-Verlet variant.
type verlet struct {
	timestep float64
	flavor   string
}

// add model to factory
func init() {
	allocators["verlet"] = func(timestep float64, flavor string) (Model, error) {
		return newVerlet(timestep, flavor)
	}
}

func newVerlet(timestep float64, flavor string) (*verlet, error) {
	if timestep <= 0 {
		return nil, chk.Err("verlet: timestep must be > 0; got %g\n", timestep)
	}
	if flavor == "" {
		flavor = "velocity"
	}
	return &verlet{timestep: timestep, flavor: flavor}, nil
}

// Step advances every atom by one velocity-Verlet step. Ordering is
// fixed: unit conversion in, snapshot, half-kick, drift, force refresh,
// final kick, unit conversion back out.
func (o *verlet) Step(atoms atom.Set, model potential.Model, nl *neighbors.List, sys units.System) error {
	for i := range atoms {
		convertAtomUnits(&atoms[i], sys, true)
	}

	err := parallelfor.Do(len(atoms), func(i int) error {
		a := &atoms[i]
		a.Snapshot()

		if o.flavor != "velocity" {
			io.Pf("verlet: unknown flavor %q on atom %d, leaving its state unchanged this step\n", o.flavor, a.ID)
			return nil
		}

		halfDt := o.timestep / 2
		vHalf := a.Previous.Velocity.Add(a.Previous.Force.Scale(halfDt / a.Mass))
		a.Current.Position = a.Previous.Position.Add(vHalf.Scale(o.timestep))

		if err := potential.Update(model, a, nl); err != nil {
			return err
		}

		a.Current.Velocity = vHalf.Add(a.Current.Force.Scale(halfDt / a.Mass))
		return nil
	})
	if err != nil {
		return err
	}

	for i := range atoms {
		convertAtomUnits(&atoms[i], sys, false)
	}
	return nil
}

// convertAtomUnits rescales an atom's position, velocity, force and
// potential energy between the user unit system and the canonical
// internal scale; forward=true converts in, forward=false reverts out.
func convertAtomUnits(a *atom.Atom, sys units.System, forward bool) {
	distance := sys.Distance.Factor
	velocity := sys.Distance.Factor / sys.Time.Factor
	force := sys.Force.Factor
	energy := sys.Energy.Factor
	if !forward {
		distance, velocity, force, energy = 1/distance, 1/velocity, 1/force, 1/energy
	}
	a.Current.Position = a.Current.Position.Scale(distance)
	a.Current.Velocity = a.Current.Velocity.Scale(velocity)
	a.Current.Force = a.Current.Force.Scale(force)
	a.Current.PotentialEnergy *= energy
}
