package vecmat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec3_01(tst *testing.T) {

	chk.PrintTitle("vec3_01: dot, cross, norm")

	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	chk.Float64(tst, "a.b", 1e-15, a.Dot(b), 0)
	chk.Float64(tst, "|a|", 1e-15, a.Norm(), 1)

	c := a.Cross(b)
	chk.Float64(tst, "(axb).x", 1e-15, c[0], 0)
	chk.Float64(tst, "(axb).y", 1e-15, c[1], 0)
	chk.Float64(tst, "(axb).z", 1e-15, c[2], 1)
}

func Test_mat3_01(tst *testing.T) {

	chk.PrintTitle("mat3_01: determinant and inverse")

	m := NewMat3FromRows(
		NewVec3(2, 0, 0),
		NewVec3(0, 2, 0),
		NewVec3(0, 0, 2),
	)
	chk.Float64(tst, "det", 1e-15, m.Det(), 8)

	inv, ok := m.Inverse()
	if !ok {
		tst.Fatal("expected invertible matrix")
	}
	chk.Float64(tst, "inv[0][0]", 1e-15, inv[0][0], 0.5)

	singular := NewMat3FromRows(NewVec3(0, 0, 0), NewVec3(0, 0, 0), NewVec3(0, 0, 0))
	_, ok = singular.Inverse()
	if ok {
		tst.Fatal("expected singular matrix to fail inversion")
	}
}
