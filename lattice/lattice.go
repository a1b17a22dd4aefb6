// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice turns a unit cell's worth of atoms, given as fractional
// positions, into the Cartesian positions of the replicated super-cell:
// scaling by the cell basis, then translating copies across every
// integer replica offset.
package lattice

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/internal/parallelfor"
	"github.com/cpmech/gomd/simbox"
)

// ScaleBasis replaces each atom's current position -- read as fractional
// coordinates along the unit-cell axes -- with its Cartesian position,
// scaling only by the diagonal entries of the cell basis. A fully
// triclinic cell would need the full basis matrix; for off-diagonal
// cells supply Cartesian positions directly (see DESIGN.md).
func ScaleBasis(atoms atom.Set, box simbox.SimulationBox) error {
	io.Pf("lattice: scaling cell basis\n")
	return parallelfor.Do(len(atoms), func(i int) error {
		p := atoms[i].Current.Position
		for k := 0; k < 3; k++ {
			p[k] = atoms[i].Current.Position[k] * box.Cell.Vectors[k][k]
		}
		atoms[i].Current.Position = p
		return nil
	})
}

// Replicate appends translated copies of atoms across every integer
// translation (x,y,z) in [0,rx)x[0,ry)x[0,rz) except (0,0,0), using the
// full cell basis vectors for the translation (not diagonal-only -- a
// translation by a·x+b·y+c·z is exact for any cell shape). After
// replication every atom (original and copy) is reassigned a dense id in
// [0,N). Replicas = (1,1,1) is the identity: no atoms are appended and
// ids are left as they already were.
func Replicate(atoms atom.Set, box simbox.SimulationBox) (atom.Set, error) {
	rx, ry, rz := box.Replicas[0], box.Replicas[1], box.Replicas[2]
	if rx == 1 && ry == 1 && rz == 1 {
		return atoms, nil
	}

	io.Pf("lattice: generating lattice\n")
	n0 := len(atoms)
	out := make(atom.Set, 0, n0*rx*ry*rz)
	out = append(out, atoms...)

	a := box.Cell.Vectors.Row(0)
	b := box.Cell.Vectors.Row(1)
	c := box.Cell.Vectors.Row(2)

	for x := 0; x < rx; x++ {
		for y := 0; y < ry; y++ {
			for z := 0; z < rz; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				shift := a.Scale(float64(x)).Add(b.Scale(float64(y))).Add(c.Scale(float64(z)))
				for i := 0; i < n0; i++ {
					clone := atoms[i]
					clone.Current.Position = clone.Current.Position.Add(shift)
					clone.Previous = clone.Current
					out = append(out, clone)
				}
			}
		}
	}

	io.Pf("lattice: generated %d atoms\n", len(out)-n0)

	if err := parallelfor.Do(len(out), func(i int) error {
		out[i].ID = uint64(i)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
