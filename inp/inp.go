// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input document read from a JSON file:
// decoding, defaulting and validation, and assembly of the runnable
// simulation from it -- following inp.ReadSim's own
// read-then-default-then-unmarshal-then-validate convention.
package inp

import (
	"encoding/json"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/clock"
	"github.com/cpmech/gomd/engine"
	"github.com/cpmech/gomd/integrator"
	"github.com/cpmech/gomd/lattice"
	"github.com/cpmech/gomd/logger"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/potential"
	"github.com/cpmech/gomd/simbox"
	"github.com/cpmech/gomd/units"
	"github.com/cpmech/gomd/vecmat"
)

// AtomSpec is one element of system.atoms
type AtomSpec struct {
	Name     string          `json:"name"`
	Position []float64       `json:"position"`
	Velocity []float64       `json:"velocity"`
	Force    []float64       `json:"force"`
	Mass     json.RawMessage `json:"mass"`
	Charge   json.RawMessage `json:"charge"`
}

// SystemDoc is the "system" top-level key
type SystemDoc struct {
	Cell        [][]float64     `json:"cell"`
	Vectors     [][]float64     `json:"vectors"`
	Origin      []float64       `json:"origin"`
	Periodicity json.RawMessage `json:"periodicity"`
	Replicas    []int           `json:"replicas"`
	Units       string          `json:"units"`
	Atoms       []AtomSpec      `json:"atoms"`
}

// PotentialDoc is the "potential" top-level key
type PotentialDoc struct {
	Model      string `json:"model"`
	Parameters struct {
		Epsilon float64 `json:"epsilon"`
		Sigma   float64 `json:"sigma"`
	} `json:"parameters"`
	Cutoff float64 `json:"cutoff"`
}

// NeighborsDoc is the "neighbors" top-level key
type NeighborsDoc struct {
	Cutoff    float64 `json:"cutoff"`
	Frequency uint64  `json:"frequency"`
	Log       bool    `json:"log"`
}

// DynamicsDoc is the "dynamics" top-level key
type DynamicsDoc struct {
	Integrator struct {
		Type   string `json:"type"`
		Flavor string `json:"flavor"`
	} `json:"integrator"`
	Timestep  float64 `json:"timestep"`
	TotalTime float64 `json:"total_time"`
	Steps     int64   `json:"steps"`
}

// ThermodynamicsDoc is the "thermodynamics" top-level key
type ThermodynamicsDoc struct {
	Ensemble struct {
		Type string `json:"type"`
	} `json:"ensemble"`
}

// LoggerDoc is the "logger" top-level key
type LoggerDoc struct {
	Format       string `json:"format"`
	Thermo       string `json:"thermo"`
	Frequency    uint64 `json:"frequency"`
	Precision    int    `json:"precision"`
	LogNeighbors bool   `json:"log_neighbors"`
}

// Document is the decoded input document
type Document struct {
	System         SystemDoc         `json:"system"`
	Potential      PotentialDoc      `json:"potential"`
	Neighbors      NeighborsDoc      `json:"neighbors"`
	Dynamics       DynamicsDoc       `json:"dynamics"`
	Thermodynamics ThermodynamicsDoc `json:"thermodynamics"`
	Logger         LoggerDoc         `json:"logger"`
}

// Read decodes the input document at fnamepath. Returns an
// InvalidConfig-class error if the file cannot be read or its JSON is
// malformed.
func Read(fnamepath string) (*Document, error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("inp: cannot read input document %q: %v\n", fnamepath, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("inp: cannot parse input document %q: %v\n", fnamepath, err)
	}
	return &doc, nil
}

// Build assembles a runnable engine.Engine from a decoded Document,
// applying the document's defaulting and validation rules: cell
// vectors may be given as "cell" or "vectors", periodicity defaults to
// all-false and accepts either an axis-name string or a 3-bool array,
// replicas default to [1,1,1], units default to "atomic", the origin
// defaults to zero and shifts
// every scaled position rigidly, potential cutoff defaults to 2.5*sigma,
// and dynamics.total_time is derived from dynamics.steps*timestep when
// total_time is absent.
func Build(doc *Document) (*engine.Engine, error) {

	vectors, err := cellVectors(doc.System)
	if err != nil {
		return nil, err
	}

	periodicity, err := parsePeriodicity(doc.System.Periodicity)
	if err != nil {
		return nil, err
	}

	replicas := [3]int{1, 1, 1}
	if len(doc.System.Replicas) == 3 {
		replicas = [3]int{doc.System.Replicas[0], doc.System.Replicas[1], doc.System.Replicas[2]}
	} else if len(doc.System.Replicas) != 0 {
		return nil, chk.Err("inp: system.replicas must have exactly 3 entries\n")
	}

	box, err := simbox.New(vectors, periodicity, replicas)
	if err != nil {
		return nil, err
	}

	unitsName := doc.System.Units
	if unitsName == "" {
		unitsName = "atomic"
	}
	sys, err := units.New(unitsName)
	if err != nil {
		return nil, err
	}

	atoms, err := buildAtoms(doc.System.Atoms)
	if err != nil {
		return nil, err
	}
	if err := lattice.ScaleBasis(atoms, box); err != nil {
		return nil, err
	}
	if len(doc.System.Origin) != 0 {
		origin, err := vec3From(doc.System.Origin, 3)
		if err != nil {
			return nil, chk.Err("inp: system.origin: %v\n", err)
		}
		for i := range atoms {
			atoms[i].Current.Position = atoms[i].Current.Position.Add(origin)
			atoms[i].Previous.Position = atoms[i].Current.Position
		}
	}
	atoms, err = lattice.Replicate(atoms, box)
	if err != nil {
		return nil, err
	}

	potentialModel, err := buildPotential(doc.Potential)
	if err != nil {
		return nil, err
	}
	if err := potentialModel.ApplyUnits(sys); err != nil {
		return nil, err
	}

	nl, err := neighbors.New(doc.Neighbors.Cutoff, doc.Neighbors.Frequency, doc.Neighbors.Log)
	if err != nil {
		return nil, err
	}
	if smallest := smallestCellConstant(box); nl.Cutoff >= smallest/2 {
		io.PfYel("inp: warning: neighbors.cutoff (%g) is >= half the smallest cell dimension (%g); the minimum-image convention becomes ambiguous\n", nl.Cutoff, smallest)
	}

	integratorType := doc.Dynamics.Integrator.Type
	if integratorType == "" {
		integratorType = "verlet"
	}
	integratorModel, err := integrator.GetModel(integratorType, doc.Dynamics.Timestep, doc.Dynamics.Integrator.Flavor)
	if err != nil {
		return nil, err
	}

	totalTime := doc.Dynamics.TotalTime
	if totalTime == 0 && doc.Dynamics.Steps > 0 {
		totalTime = float64(doc.Dynamics.Steps) * doc.Dynamics.Timestep
	}
	c, err := clock.New(doc.Dynamics.Timestep, totalTime)
	if err != nil {
		return nil, err
	}

	ensembleType := doc.Thermodynamics.Ensemble.Type
	if ensembleType == "" {
		ensembleType = "nve"
	}
	if ensembleType != "nve" {
		return nil, chk.Err("inp: thermodynamics.ensemble.type %q is not implemented\n", ensembleType)
	}

	logCfg := logger.DefaultConfig()
	if doc.Logger.Format != "" {
		logCfg.Format = doc.Logger.Format
	}
	if doc.Logger.Thermo != "" {
		logCfg.Thermo = doc.Logger.Thermo
	}
	if doc.Logger.Frequency != 0 {
		logCfg.Frequency = doc.Logger.Frequency
	}
	if doc.Logger.Precision != 0 {
		logCfg.Precision = doc.Logger.Precision
	}

	return &engine.Engine{
		Box:          box,
		Atoms:        atoms,
		Units:        sys,
		Potential:    potentialModel,
		Neighbors:    nl,
		Integrator:   integratorModel,
		Clock:        c,
		Thermo:       engine.Thermodynamics{EnsembleType: ensembleType},
		Logger:       logger.NewStdout(logCfg),
		LogNeighbors: doc.Logger.LogNeighbors || doc.Neighbors.Log,
	}, nil
}

func cellVectors(s SystemDoc) (vecmat.Mat3, error) {
	rows := s.Cell
	if rows == nil {
		rows = s.Vectors
	}
	if len(rows) != 3 {
		return vecmat.Mat3{}, chk.Err("inp: system.cell (or system.vectors) must have exactly 3 rows\n")
	}
	var m vecmat.Mat3
	for i, row := range rows {
		if len(row) != 3 {
			return vecmat.Mat3{}, chk.Err("inp: system.cell row %d must have exactly 3 entries\n", i)
		}
		m.SetRow(i, vecmat.NewVec3(row[0], row[1], row[2]))
	}
	return m, nil
}

func parsePeriodicity(raw json.RawMessage) ([3]bool, error) {
	if len(raw) == 0 {
		return [3]bool{}, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		switch asString {
		case "x":
			return [3]bool{true, false, false}, nil
		case "y":
			return [3]bool{false, true, false}, nil
		case "z":
			return [3]bool{false, false, true}, nil
		case "xy":
			return [3]bool{true, true, false}, nil
		case "xz":
			return [3]bool{true, false, true}, nil
		case "yz":
			return [3]bool{false, true, true}, nil
		case "xyz":
			return [3]bool{true, true, true}, nil
		default:
			return [3]bool{}, chk.Err("inp: system.periodicity %q is not a recognised axis combination\n", asString)
		}
	}
	var asArray []bool
	if err := json.Unmarshal(raw, &asArray); err == nil {
		if len(asArray) != 3 {
			return [3]bool{}, chk.Err("inp: system.periodicity array must have exactly 3 entries\n")
		}
		return [3]bool{asArray[0], asArray[1], asArray[2]}, nil
	}
	return [3]bool{}, chk.Err("inp: system.periodicity must be a string or a 3-bool array\n")
}

func buildAtoms(specs []AtomSpec) (atom.Set, error) {
	out := make(atom.Set, len(specs))
	for i, s := range specs {
		pos, err := vec3From(s.Position, 3)
		if err != nil {
			return nil, chk.Err("inp: system.atoms[%d].position: %v\n", i, err)
		}
		vel := vecmat.Vec3{}
		if s.Velocity != nil {
			if vel, err = vec3From(s.Velocity, 3); err != nil {
				return nil, chk.Err("inp: system.atoms[%d].velocity: %v\n", i, err)
			}
		}
		mass, err := parseMass(s.Mass, s.Name)
		if err != nil {
			return nil, err
		}
		charge, err := parseNumberOrZero(s.Charge)
		if err != nil {
			return nil, err
		}
		a, err := atom.New(s.Name, mass, charge, pos, vel)
		if err != nil {
			return nil, err
		}
		a.ID = uint64(i)
		out[i] = a
	}
	return out, nil
}

func vec3From(xs []float64, n int) (vecmat.Vec3, error) {
	if len(xs) != n {
		return vecmat.Vec3{}, chk.Err("expected %d entries, got %d\n", n, len(xs))
	}
	return vecmat.NewVec3(xs[0], xs[1], xs[2]), nil
}

func parseMass(raw json.RawMessage, species string) (float64, error) {
	if len(raw) == 0 {
		return atom.MassFromSpecies(species)
	}
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if v, err := strconv.ParseFloat(asString, 64); err == nil {
			return v, nil
		}
		return atom.MassFromSpecies(asString)
	}
	return 0, chk.Err("inp: mass for species %q must be a number or a string\n", species)
}

func parseNumberOrZero(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		v, err := strconv.ParseFloat(asString, 64)
		if err != nil {
			return 0, chk.Err("inp: charge %q is not a valid number\n", asString)
		}
		return v, nil
	}
	return 0, chk.Err("inp: charge must be a number or a numeric string\n")
}

func buildPotential(p PotentialDoc) (potential.Model, error) {
	model := p.Model
	if model == "" {
		model = "lj"
	}
	prms := fun.Prms{
		&fun.Prm{N: "epsilon", V: p.Parameters.Epsilon},
		&fun.Prm{N: "sigma", V: p.Parameters.Sigma},
	}
	if p.Cutoff > 0 {
		prms = append(prms, &fun.Prm{N: "cutoff", V: p.Cutoff})
	}
	return potential.GetModel(model, prms)
}

func smallestCellConstant(box simbox.SimulationBox) float64 {
	return utl.Min(utl.Min(box.Dimensions[0], box.Dimensions[1]), box.Dimensions[2])
}
