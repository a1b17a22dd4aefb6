// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gomd/units"
)

// lj implements the Lennard-Jones pair potential:
//
//	U(r) = 4ε((σ/r)^12 - (σ/r)^6)      for 0 < r < cutoff
//	F(r) = 24ε/r(2(σ/r)^12 - (σ/r)^6)  magnitude of the radial force
//
// U(0) is +Inf (a hard overlap, fatal at the call site); U(r) is 0 for
// r >= cutoff.
type lj struct {
	epsilon float64
	sigma   float64
	cutoff  float64
}

// add model to factory
func init() {
	allocators["lj"] = func(prms fun.Prms) (Model, error) { return newLJ(prms) }
}

func newLJ(prms fun.Prms) (*lj, error) {
	o := &lj{cutoff: -1}
	haveSigma := false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "epsilon":
			o.epsilon = p.V
		case "sigma":
			o.sigma = p.V
			haveSigma = true
		case "cutoff":
			o.cutoff = p.V
		default:
			return nil, chk.Err("lj: parameter named %q is not recognised\n", p.N)
		}
	}
	if o.epsilon <= 0 {
		return nil, chk.Err("lj: epsilon must be > 0; got %g\n", o.epsilon)
	}
	if !haveSigma || o.sigma <= 0 {
		return nil, chk.Err("lj: sigma must be > 0; got %g\n", o.sigma)
	}
	if o.cutoff < 0 {
		o.cutoff = 2.5 * o.sigma
	}
	if o.cutoff <= 0 {
		return nil, chk.Err("lj: cutoff must be > 0; got %g\n", o.cutoff)
	}
	return o, nil
}

// Potential computes U(r)
func (o *lj) Potential(r float64) float64 {
	if r >= o.cutoff {
		return 0
	}
	if r <= 0 {
		return math.Inf(1)
	}
	r6 := math.Pow(r, 6)
	r12 := r6 * r6
	s6 := math.Pow(o.sigma, 6)
	s12 := s6 * s6
	return 4.0 * o.epsilon * (s12/r12 - s6/r6)
}

// ForceMagnitude computes the signed radial force F(r): positive
// (repulsive) below the minimum at 2^(1/6)σ, negative (attractive) above it
func (o *lj) ForceMagnitude(r float64) float64 {
	if r >= o.cutoff {
		return 0
	}
	if r <= 0 {
		return math.Inf(1)
	}
	r6 := math.Pow(r, 6)
	r12 := r6 * r6
	s6 := math.Pow(o.sigma, 6)
	s12 := s6 * s6
	return 24.0 * o.epsilon / r * (2.0*s12/r12 - s6/r6)
}

// ApplyUnits rescales epsilon (an energy) and sigma/cutoff (distances)
// into the given unit system
func (o *lj) ApplyUnits(sys units.System) error {
	o.epsilon = sys.Energy.Convert(o.epsilon)
	o.sigma = sys.Distance.Convert(o.sigma)
	o.cutoff = sys.Distance.Convert(o.cutoff)
	return nil
}
