// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package simbox implements the periodic simulation box: the unit cell,
// its replication into a super-cell, position wrapping and the
// minimum-image convention used by the neighbor list.
package simbox

import "github.com/cpmech/gomd/vecmat"

// UnitCell is the primitive parallelepiped before replication; immutable
// after construction
type UnitCell struct {
	Vectors   vecmat.Mat3 // rows are basis vectors a, b, c
	Constants vecmat.Vec3 // |a|, |b|, |c|
	Volume    float64     // det(vectors)
}

// NewUnitCell builds a UnitCell from its basis vectors (rows of vectors)
func NewUnitCell(vectors vecmat.Mat3) UnitCell {
	return UnitCell{
		Vectors: vectors,
		Constants: vecmat.NewVec3(
			vectors.Row(0).Norm(),
			vectors.Row(1).Norm(),
			vectors.Row(2).Norm(),
		),
		Volume: vectors.Det(),
	}
}
