// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine orchestrates the per-step simulation loop: neighbor
// refresh, integrator step, frequency-gated neighbor refresh,
// thermodynamics update, logging and the clock tick, always in that
// order.
package engine

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/clock"
	"github.com/cpmech/gomd/energetics"
	"github.com/cpmech/gomd/integrator"
	"github.com/cpmech/gomd/logger"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/potential"
	"github.com/cpmech/gomd/simbox"
	"github.com/cpmech/gomd/units"
)

// Thermodynamics carries the ensemble type. NVE is the only implemented
// ensemble and Apply is a no-op stub -- the type exists so a future
// NVT/NPT variant has a documented home, not because NVE needs
// configuration.
type Thermodynamics struct {
	EnsembleType string
}

// Apply is a no-op for the NVE ensemble
func (o Thermodynamics) Apply() {}

// Engine owns the simulation aggregate exclusively: box, atoms,
// potential, neighbor list, clock, energetics and units. Components
// receive shared read access or exclusive mutable access for one step at
// a time; there is no shared ownership or back-references.
type Engine struct {
	Box          simbox.SimulationBox
	Atoms        atom.Set
	Units        units.System
	Potential    potential.Model
	Neighbors    *neighbors.List
	Integrator   integrator.Model
	Clock        clock.Clock
	Energetics   energetics.Energetics
	Thermo       Thermodynamics
	Logger       logger.Logger
	LogNeighbors bool
}

// Run advances the simulation from the clock's current state to
// completion:
//
//	neighbors.update(box, atoms)
//	while not clock.has_finished():
//	    integrator.step(...)
//	    neighbors.update(box, atoms)           # frequency-gated
//	    energetics.update(atoms)
//	    logger.emit(state)
//	    if neighbors.log: logger.emit_neighbors(neighbors)
//	    clock.tick()
//
// Any error from a component -- a DomainError from the potential at
// r=0, a NumericDegeneracy -- aborts the run immediately; the engine
// does not attempt recovery mid-run because correctness of subsequent
// steps cannot then be guaranteed.
func (o *Engine) Run() (err error) {
	if o.Clock.CurrentStep > 1 {
		o.Clock.Reset()
	}

	io.Pf("engine: starting run with %d atoms, timestep=%g, total_time=%g\n",
		len(o.Atoms), o.Clock.Timestep, o.Clock.TotalTime)

	if err = o.Neighbors.Update(o.Box, o.Atoms); err != nil {
		return
	}

	for !o.Clock.HasFinished() {
		if err = o.Integrator.Step(o.Atoms, o.Potential, o.Neighbors, o.Units); err != nil {
			return
		}

		if o.Neighbors.ShouldRebuild(o.Clock.CurrentStep) {
			if err = o.Neighbors.Update(o.Box, o.Atoms); err != nil {
				return
			}
		}

		o.Energetics = energetics.Update(o.Atoms)
		o.Thermo.Apply()

		if o.Logger != nil {
			rec := logger.StepRecord{
				Step:       o.Clock.CurrentStep,
				Time:       o.Clock.CurrentTime,
				Atoms:      o.Atoms,
				Energetics: o.Energetics,
			}
			if err = o.Logger.Emit(rec); err != nil {
				return
			}
			if o.LogNeighbors {
				if err = o.Logger.EmitNeighbors(o.Neighbors); err != nil {
					return
				}
			}
		}

		o.Clock.Tick()
	}

	io.PfGreen("engine: run finished at step %d, t=%g\n", o.Clock.CurrentStep, o.Clock.CurrentTime)
	return nil
}
