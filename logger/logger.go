// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logger defines the per-step trajectory snapshot the core
// exposes to presentation code, and a reference stdout implementation:
// formatted/colored console output batched once per logged step, never
// per-atom per write, keeping I/O off the hot path per the resource
// model.
package logger

import (
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/energetics"
	"github.com/cpmech/gomd/neighbors"
)

// defaults: a one-line-per-atom field format and a fixed thermodynamics
// field list.
const (
	DefaultFormat = "id type x y z"
	DefaultThermo = "temperature potential_energy kinetic_energy total_energy"
)

// Config configures the reference stdout Logger
type Config struct {
	Format    string // space-separated per-atom fields, see Stdout.atomLine
	Thermo    string // space-separated thermodynamics fields
	Frequency uint64 // steps between log emissions; 0 behaves as 1
	Precision int    // decimal digits for floating-point fields
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{Format: DefaultFormat, Thermo: DefaultThermo, Frequency: 1, Precision: 3}
}

// StepRecord is the state snapshot the engine hands to a Logger once per
// step -- the state-exposure the core owns, independent of how it is
// presented
type StepRecord struct {
	Step       uint64
	Time       float64
	Atoms      atom.Set
	Energetics energetics.Energetics
}

// Logger receives one StepRecord per simulation step and, optionally, the
// current neighbor list
type Logger interface {
	Emit(rec StepRecord) error
	EmitNeighbors(nl *neighbors.List) error
}

// Stdout is the reference Logger implementation: it prints to the
// process's standard output via gosl/io, gated by Config.Frequency.
type Stdout struct {
	cfg    Config
	format []string
	thermo []string
}

// NewStdout returns a Stdout logger for the given configuration,
// defaulting zero-valued fields the way DefaultConfig does.
func NewStdout(cfg Config) *Stdout {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Thermo == "" {
		cfg.Thermo = DefaultThermo
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = 1
	}
	if cfg.Precision == 0 {
		cfg.Precision = 3
	}
	return &Stdout{
		cfg:    cfg,
		format: strings.Fields(cfg.Format),
		thermo: strings.Fields(cfg.Thermo),
	}
}

// Emit prints the step's thermodynamics and per-atom fields, if this
// step is due under cfg.Frequency.
func (o *Stdout) Emit(rec StepRecord) error {
	if rec.Step%o.cfg.Frequency != 0 {
		return nil
	}
	io.PfYel("\nstep %d  t=%.*f\n", rec.Step, o.cfg.Precision, rec.Time)
	var b strings.Builder
	b.WriteString(o.thermoLine(rec.Energetics))
	b.WriteString("\n")
	for i := range rec.Atoms {
		b.WriteString(o.atomLine(&rec.Atoms[i]))
		b.WriteString("\n")
	}
	io.Pf("%s", b.String())
	return nil
}

func (o *Stdout) thermoLine(e energetics.Energetics) string {
	var b strings.Builder
	for _, field := range o.thermo {
		switch field {
		case "temperature":
			b.WriteString(io.Sf("temperature=%.*f ", o.cfg.Precision, e.Temperature))
		case "potential_energy":
			b.WriteString(io.Sf("potential_energy=%.*f ", o.cfg.Precision, e.PotentialEnergy))
		case "kinetic_energy":
			b.WriteString(io.Sf("kinetic_energy=%.*f ", o.cfg.Precision, e.KineticEnergy))
		case "total_energy":
			b.WriteString(io.Sf("total_energy=%.*f ", o.cfg.Precision, e.TotalEnergy))
		}
	}
	return strings.TrimSpace(b.String())
}

func (o *Stdout) atomLine(a *atom.Atom) string {
	var b strings.Builder
	p := o.cfg.Precision
	for _, field := range o.format {
		switch field {
		case "id":
			b.WriteString(io.Sf("%d ", a.ID))
		case "type":
			b.WriteString(io.Sf("%s ", a.Species))
		case "x":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Position[0]))
		case "y":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Position[1]))
		case "z":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Position[2]))
		case "vx":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Velocity[0]))
		case "vy":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Velocity[1]))
		case "vz":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Velocity[2]))
		case "fx":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Force[0]))
		case "fy":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Force[1]))
		case "fz":
			b.WriteString(io.Sf("%.*f ", p, a.Current.Force[2]))
		case "mass":
			b.WriteString(io.Sf("%.*f ", p, a.Mass))
		case "charge":
			b.WriteString(io.Sf("%.*f ", p, a.Charge))
		case "potential_energy":
			b.WriteString(io.Sf("%.*f ", p, a.Current.PotentialEnergy))
		}
	}
	return strings.TrimSpace(b.String())
}

// EmitNeighbors prints one line per atom listing its neighbor ids and
// distances.
func (o *Stdout) EmitNeighbors(nl *neighbors.List) error {
	var b strings.Builder
	b.WriteString("\nneighbor list:\n")
	for i := 0; i < nl.Len(); i++ {
		b.WriteString(io.Sf("  atom %d: %v\n", i, nl.Get(uint64(i))))
	}
	io.Pf("%s", b.String())
	return nil
}
