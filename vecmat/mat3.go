// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmat

import "math"

// Mat3 is a 3x3 matrix stored as three rows, each a Vec3; row i is the i-th
// basis vector when Mat3 holds a cell/box basis
type Mat3 [3]Vec3

// NewMat3FromRows returns a new matrix with the given rows
func NewMat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{r0, r1, r2}
}

// Row returns row i
func (o Mat3) Row(i int) Vec3 {
	return o[i]
}

// SetRow sets row i
func (o *Mat3) SetRow(i int, v Vec3) {
	o[i] = v
}

// MulVec returns the matrix-vector product o*v
func (o Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		o[0].Dot(v),
		o[1].Dot(v),
		o[2].Dot(v),
	}
}

// Det returns the determinant of o
func (o Mat3) Det() float64 {
	return o[0][0]*(o[1][1]*o[2][2]-o[1][2]*o[2][1]) -
		o[0][1]*(o[1][0]*o[2][2]-o[1][2]*o[2][0]) +
		o[0][2]*(o[1][0]*o[2][1]-o[1][1]*o[2][0])
}

// Inverse returns the inverse of o and true, or the zero matrix and false if
// o is singular
func (o Mat3) Inverse() (Mat3, bool) {
	det := o.Det()
	if det == 0 {
		return Mat3{}, false
	}
	inv := 1.0 / det
	var m Mat3
	m[0][0] = (o[1][1]*o[2][2] - o[1][2]*o[2][1]) * inv
	m[0][1] = (o[0][2]*o[2][1] - o[0][1]*o[2][2]) * inv
	m[0][2] = (o[0][1]*o[1][2] - o[0][2]*o[1][1]) * inv
	m[1][0] = (o[1][2]*o[2][0] - o[1][0]*o[2][2]) * inv
	m[1][1] = (o[0][0]*o[2][2] - o[0][2]*o[2][0]) * inv
	m[1][2] = (o[0][2]*o[1][0] - o[0][0]*o[1][2]) * inv
	m[2][0] = (o[1][0]*o[2][1] - o[1][1]*o[2][0]) * inv
	m[2][1] = (o[0][1]*o[2][0] - o[0][0]*o[2][1]) * inv
	m[2][2] = (o[0][0]*o[1][1] - o[0][1]*o[1][0]) * inv
	return m, true
}

// RowNormalized returns a new matrix whose rows are unit vectors along the
// original rows; used to compute box versors from box vectors
func (o Mat3) RowNormalized() Mat3 {
	return Mat3{o[0].Unit(), o[1].Unit(), o[2].Unit()}
}

// FrobeniusNormalized returns o scaled by the inverse of its Frobenius norm,
// i.e. all nine entries treated as one vector and normalized as a whole.
// Used for the box change-of-basis matrix; not the same as RowNormalized.
func (o Mat3) FrobeniusNormalized() Mat3 {
	var sumSq float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sumSq += o[i][j] * o[i][j]
		}
	}
	n := math.Sqrt(sumSq)
	if n == 0 {
		panic("vecmat: cannot normalize the zero matrix")
	}
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = o[i][j] / n
		}
	}
	return m
}
