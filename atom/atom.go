// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package atom implements the per-atom state the integrator and
// potential evaluator mutate: identity, mass, charge and the
// previous/current kinematic snapshot pair velocity-Verlet needs for its
// half-kick.
package atom

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/vecmat"
)

// State holds one snapshot of an atom's kinematics and energies
type State struct {
	Position        vecmat.Vec3
	Velocity        vecmat.Vec3
	Force           vecmat.Vec3
	PotentialEnergy float64
	KineticEnergy   float64
	TotalEnergy     float64
}

// Atom is a point particle with mass, charge, species label and the
// (previous, current) state pair. Previous always holds the snapshot
// taken at the start of the current step, before the force refresh.
type Atom struct {
	ID       uint64
	Species  string
	Mass     float64
	Charge   float64
	Current  State
	Previous State
}

// New returns a new atom with the given species, mass, charge and
// initial position/velocity; force and energies start at zero. Returns
// an InvalidConfig-class error if mass <= 0 or species is empty.
func New(species string, mass, charge float64, position, velocity vecmat.Vec3) (a Atom, err error) {
	if species == "" {
		err = chk.Err("atom: species label must not be empty\n")
		return
	}
	if mass <= 0 {
		err = chk.Err("atom: mass must be > 0; got %g for species %q\n", mass, species)
		return
	}
	a.Species = species
	a.Mass = mass
	a.Charge = charge
	a.Current.Position = position
	a.Current.Velocity = velocity
	a.Previous = a.Current
	return
}

// Snapshot copies Current into Previous; called once at the start of
// every integrator step, before the force refresh.
func (o *Atom) Snapshot() {
	o.Previous = o.Current
}

// Set is an ordered, dense-id sequence of atoms; length is fixed once
// lattice replication has run.
type Set []Atom

// Len returns the number of atoms in the set
func (o Set) Len() int { return len(o) }

// massTable is a small built-in mass-by-species lookup (atomic mass
// units), covering the common light elements used in LJ fluid setups.
// Not a full periodic table -- nothing else in this engine needs
// isotope-level accuracy.
var massTable = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"Ne": 20.180,
	"Na": 22.990,
	"Cl": 35.45,
	"Ar": 39.948,
	"Kr": 83.798,
	"Xe": 131.29,
}

// MassFromSpecies resolves a mass from the built-in table by species
// name. Returns an InvalidConfig-class error if the species is unknown.
func MassFromSpecies(species string) (mass float64, err error) {
	mass, ok := massTable[species]
	if !ok {
		err = chk.Err("atom: no built-in mass for species %q; supply mass explicitly\n", species)
		return
	}
	return
}
