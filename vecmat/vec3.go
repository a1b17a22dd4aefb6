// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vecmat implements the 3-vector and 3x3-matrix primitives used
// throughout the simulation core: norms, dot/cross products, determinant
// and inverse, and the row-basis operations the periodic cell relies on.
package vecmat

import "math"

// Vec3 is a 3-component Cartesian vector
type Vec3 [3]float64

// NewVec3 returns a new vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns o+p
func (o Vec3) Add(p Vec3) Vec3 {
	return Vec3{o[0] + p[0], o[1] + p[1], o[2] + p[2]}
}

// Sub returns o-p
func (o Vec3) Sub(p Vec3) Vec3 {
	return Vec3{o[0] - p[0], o[1] - p[1], o[2] - p[2]}
}

// Scale returns s*o
func (o Vec3) Scale(s float64) Vec3 {
	return Vec3{s * o[0], s * o[1], s * o[2]}
}

// Dot returns the scalar product o.p
func (o Vec3) Dot(p Vec3) float64 {
	return o[0]*p[0] + o[1]*p[1] + o[2]*p[2]
}

// Cross returns the vector product o x p
func (o Vec3) Cross(p Vec3) Vec3 {
	return Vec3{
		o[1]*p[2] - o[2]*p[1],
		o[2]*p[0] - o[0]*p[2],
		o[0]*p[1] - o[1]*p[0],
	}
}

// Norm returns the Euclidean norm |o|
func (o Vec3) Norm() float64 {
	return math.Sqrt(o.Dot(o))
}

// Unit returns o scaled to unit length; panics if o is the zero vector
func (o Vec3) Unit() Vec3 {
	n := o.Norm()
	if n == 0 {
		panic("vecmat: cannot normalize the zero vector")
	}
	return o.Scale(1.0 / n)
}
