// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clock implements the simulation's step counter and elapsed-time
// tracker and its termination predicate.
package clock

import "github.com/cpmech/gosl/chk"

// Clock tracks the step counter and elapsed time. Timestep and TotalTime
// are immutable after construction; CurrentStep starts at 1, matching the
// engine's convention that step 1 is the first emitted state.
type Clock struct {
	Timestep    float64
	TotalTime   float64
	CurrentStep uint64
	CurrentTime float64
}

// New returns a Clock with CurrentStep=1, CurrentTime=0. Returns an
// InvalidConfig-class error if timestep <= 0 or totalTime < 0.
func New(timestep, totalTime float64) (c Clock, err error) {
	if timestep <= 0 {
		err = chk.Err("clock: timestep must be > 0; got %g\n", timestep)
		return
	}
	if totalTime < 0 {
		err = chk.Err("clock: total_time must be >= 0; got %g\n", totalTime)
		return
	}
	c = Clock{Timestep: timestep, TotalTime: totalTime, CurrentStep: 1, CurrentTime: 0}
	return
}

// Tick increments CurrentStep and adds Timestep to CurrentTime
func (o *Clock) Tick() {
	o.CurrentStep++
	o.CurrentTime += o.Timestep
}

// HasFinished reports whether CurrentTime has reached TotalTime
func (o *Clock) HasFinished() bool {
	return o.CurrentTime >= o.TotalTime
}

// Reset sets CurrentStep back to 1 and CurrentTime back to 0
func (o *Clock) Reset() {
	o.CurrentStep = 1
	o.CurrentTime = 0
}
