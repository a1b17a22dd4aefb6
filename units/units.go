// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements the conversion factors between a user-facing
// unit system and the canonical internal ("atomic") unit system the
// integrator runs in.
package units

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Quantity holds a conversion factor and its display symbol
type Quantity struct {
	Factor float64
	Symbol string
}

// System is a named set of conversion factors to the canonical ("atomic")
// unit system; force and pressure are always derived, never read from a
// table
type System struct {
	Name        string
	Distance    Quantity
	Time        Quantity
	Mass        Quantity
	Charge      Quantity
	Temperature Quantity
	Energy      Quantity
	Force       Quantity
	Pressure    Quantity
}

// Atomic is the canonical internal scale: every factor is 1
var Atomic = System{
	Name:        "Atomic units",
	Distance:    Quantity{1, "a.u."},
	Time:        Quantity{1, "a.u."},
	Mass:        Quantity{1, "a.u."},
	Charge:      Quantity{1, "a.u."},
	Temperature: Quantity{1, "K"},
	Energy:      Quantity{1, "a.u."},
}

// si is the Standard International unit system, expressed as factors
// relative to the Atomic (internal) scale
var si = System{
	Name:        "Standard International",
	Distance:    Quantity{1e-10, "m"},
	Time:        Quantity{1e-9, "s"},
	Mass:        Quantity{1.66053907e-27, "kg"},
	Charge:      Quantity{1.60217663e-19, "C"},
	Temperature: Quantity{1, "K"},
	Energy:      Quantity{1.602176634e-19, "J"},
}

// New returns the named unit system ("atomic" or "SI"), with Force and
// Pressure derived from the base factors. Returns an error for any other
// name (InvalidConfig).
func New(name string) (sys System, err error) {
	switch strings.ToUpper(name) {
	case "ATOMIC":
		sys = Atomic
	case "SI":
		sys = si
	default:
		err = chk.Err("units: unknown unit system named %q\n", name)
		return
	}
	sys.Force = Quantity{sys.Mass.Factor * sys.Distance.Factor / (sys.Time.Factor * sys.Time.Factor), "N"}
	sys.Pressure = Quantity{sys.Force.Factor / (sys.Distance.Factor * sys.Distance.Factor), "Pa"}
	return
}

// Convert returns x expressed in the canonical internal scale, given x is
// currently expressed in this quantity's user unit system
func (o Quantity) Convert(x float64) float64 {
	return x * o.Factor
}

// Revert returns x expressed back in this quantity's user unit system,
// given x is currently expressed in the canonical internal scale.
// Revert(Convert(x)) == x for every x, within floating-point tolerance.
func (o Quantity) Revert(x float64) float64 {
	return x / o.Factor
}

// String implements fmt.Stringer
func (o System) String() string {
	return io.Sf("Unit system:\n    Name: %s\n    Distance: %s\n    Time: %s\n    Mass: %s\n    Charge: %s\n    Temperature: %s\n    Energy: %s\n    Force: %s\n    Pressure: %s",
		o.Name, o.Distance.Symbol, o.Time.Symbol, o.Mass.Symbol, o.Charge.Symbol,
		o.Temperature.Symbol, o.Energy.Symbol, o.Force.Symbol, o.Pressure.Symbol)
}
