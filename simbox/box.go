// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simbox

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/vecmat"
)

// SimulationBox owns a UnitCell plus the replica-scaled super-cell
// geometry: the diagonal-scaled box vectors, their row-normalized
// versors, per-axis dimensions, periodicity flags and the change-of-basis
// matrix used to validate the cell is non-degenerate.
type SimulationBox struct {
	Cell          UnitCell
	Replicas      [3]int
	Periodicity   [3]bool
	Vectors       vecmat.Mat3 // unit_cell.vectors with diagonal entries scaled by replicas
	Versors       vecmat.Mat3 // row-normalized Vectors
	Dimensions    vecmat.Vec3 // row-norms of Vectors
	ChangeOfBasis vecmat.Mat3 // whole-matrix normalized Vectors; must be invertible
}

// New constructs a SimulationBox. vectors are the unit-cell basis vectors
// (rows a, b, c); periodicity and replicas are per-axis flags/counts,
// replicas each >= 1. Returns a NumericDegeneracy-class error if the
// resulting change-of-basis matrix is singular.
func New(vectors vecmat.Mat3, periodicity [3]bool, replicas [3]int) (box SimulationBox, err error) {
	for i := 0; i < 3; i++ {
		if replicas[i] < 1 {
			err = chk.Err("simbox: replicas[%d] must be >= 1; got %d\n", i, replicas[i])
			return
		}
	}

	cell := NewUnitCell(vectors)

	scaled := cell.Vectors
	for i := 0; i < 3; i++ {
		row := scaled.Row(i)
		row[i] *= float64(replicas[i])
		scaled.SetRow(i, row)
	}

	dims := vecmat.NewVec3(
		scaled.Row(0).Norm(),
		scaled.Row(1).Norm(),
		scaled.Row(2).Norm(),
	)

	for i := 0; i < 3; i++ {
		if dims[i] == 0 {
			err = chk.Err("simbox: degenerate cell axis %d has zero length\n", i)
			return
		}
	}
	versors := scaled.RowNormalized()

	changeOfBasis := scaled.FrobeniusNormalized()
	if _, ok := changeOfBasis.Inverse(); !ok {
		err = chk.Err("simbox: change-of-basis matrix is singular; the cell basis is degenerate\n")
		return
	}

	box = SimulationBox{
		Cell:          cell,
		Replicas:      replicas,
		Periodicity:   periodicity,
		Vectors:       scaled,
		Versors:       versors,
		Dimensions:    dims,
		ChangeOfBasis: changeOfBasis,
	}
	return
}

// Wrap returns position folded back into [0, dimensions[k]) along every
// periodic axis k, by repeatedly translating by the corresponding box row
// until the component along that axis's versor lies in range. Non-periodic
// axes are left unchanged.
func (o SimulationBox) Wrap(position vecmat.Vec3) vecmat.Vec3 {
	p := position
	for k := 0; k < 3; k++ {
		if !o.Periodicity[k] {
			continue
		}
		row := o.Vectors.Row(k)
		dim := o.Dimensions[k]
		comp := p.Dot(o.Versors[k])
		for comp < 0 {
			p = p.Add(row)
			comp += dim
		}
		for comp >= dim {
			p = p.Sub(row)
			comp -= dim
		}
	}
	return p
}

// MinimumImage folds a displacement vector d into the nearest periodic
// image under the cell's actual (possibly triclinic) basis: for each
// periodic basis vector b_k, the scalar projection alpha = (d.b_k)/|b_k|^2
// is computed; d is shifted by -b_k if alpha > 0.5, or by +b_k if
// alpha <= -0.5. Correct provided |d| is less than half the smallest cell
// constant.
func (o SimulationBox) MinimumImage(d vecmat.Vec3) vecmat.Vec3 {
	r := d
	for k := 0; k < 3; k++ {
		if !o.Periodicity[k] {
			continue
		}
		b := o.Vectors.Row(k)
		norm2 := b.Dot(b)
		if norm2 == 0 {
			continue
		}
		alpha := r.Dot(b) / norm2
		if alpha > 0.5 {
			r = r.Sub(b)
		} else if alpha <= -0.5 {
			r = r.Add(b)
		}
	}
	return r
}
