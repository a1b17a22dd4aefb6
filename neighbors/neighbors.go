// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package neighbors implements the per-atom cutoff neighbor list: an
// O(N^2) all-pairs scan under the minimum-image convention, rebuilt on
// demand and read afterwards until the next rebuild.
package neighbors

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/internal/parallelfor"
	"github.com/cpmech/gomd/simbox"
	"github.com/cpmech/gomd/vecmat"
)

// Entry is one within-cutoff partner of an atom: j's id, the
// minimum-image displacement from i to j, and its length
type Entry struct {
	J              uint64
	DistanceVector vecmat.Vec3
	Distance       float64
}

// List is the per-atom neighbor table. Rebuilds reuse the backing arrays
// of the previous rebuild where possible, per the resource model's
// allocation guidance.
type List struct {
	Cutoff    float64
	Frequency uint64 // steps between rebuilds; 1 = every step
	Log       bool

	table [][]Entry // indexed by dense atom id
	built bool
}

// New returns a neighbor list with the given cutoff. frequency defaults
// to 1 if 0 is passed. Returns an InvalidConfig-class error if cutoff<=0.
func New(cutoff float64, frequency uint64, log bool) (l *List, err error) {
	if cutoff <= 0 {
		err = chk.Err("neighbors: cutoff must be > 0; got %g\n", cutoff)
		return
	}
	if frequency == 0 {
		frequency = 1
	}
	l = &List{Cutoff: cutoff, Frequency: frequency, Log: log}
	return
}

// ShouldRebuild reports whether step currentStep (1-based, as Clock
// counts) is due for a rebuild under this list's Frequency.
func (o *List) ShouldRebuild(currentStep uint64) bool {
	return currentStep%o.Frequency == 0
}

// Update wraps every atom's position via box.Wrap, then rebuilds the
// table: for every atom i, scans all j != i, applies the minimum-image
// convention to the displacement, and retains entries with
// distance < cutoff. When the atom count equals that of the previous
// rebuild, each per-atom slice is truncated and refilled in place;
// when the count differs, the table is reallocated.
func (o *List) Update(box simbox.SimulationBox, atoms atom.Set) error {
	for i := range atoms {
		atoms[i].Current.Position = box.Wrap(atoms[i].Current.Position)
	}

	n := len(atoms)
	if o.table == nil || len(o.table) != n {
		o.table = make([][]Entry, n)
	}

	err := parallelfor.Do(n, func(i int) error {
		entries := o.table[i][:0]
		pi := atoms[i].Current.Position
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := atoms[j].Current.Position.Sub(pi)
			d = box.MinimumImage(d)
			r := d.Norm()
			if r < o.Cutoff {
				entries = append(entries, Entry{J: atoms[j].ID, DistanceVector: d, Distance: r})
			}
		}
		o.table[i] = entries
		return nil
	})
	if err != nil {
		return err
	}
	o.built = true
	return nil
}

// Len returns the number of atoms the list was last built for
func (o *List) Len() int {
	return len(o.table)
}

// Get returns the neighbor entries for dense atom id i. Panics
// (NeighborMiss, a programming error rather than bad user input) if the
// list has never been populated or i is out of range.
func (o *List) Get(i uint64) []Entry {
	if !o.built {
		chk.Panic("neighbors: Get(%d) called before the first Update\n", i)
	}
	if int(i) >= len(o.table) {
		chk.Panic("neighbors: Get(%d) out of range for %d atoms\n", i, len(o.table))
	}
	return o.table[i]
}
