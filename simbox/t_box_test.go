package simbox

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/vecmat"
)

func cubic(side float64) vecmat.Mat3 {
	return vecmat.NewMat3FromRows(
		vecmat.NewVec3(side, 0, 0),
		vecmat.NewVec3(0, side, 0),
		vecmat.NewVec3(0, 0, side),
	)
}

func Test_box_01(tst *testing.T) {

	chk.PrintTitle("box_01: replica scaling and dimensions")

	box, err := New(cubic(2), [3]bool{true, true, true}, [3]int{2, 3, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "dim.x", 1e-15, box.Dimensions[0], 4)
	chk.Float64(tst, "dim.y", 1e-15, box.Dimensions[1], 6)
	chk.Float64(tst, "dim.z", 1e-15, box.Dimensions[2], 2)
}

func Test_box_02(tst *testing.T) {

	chk.PrintTitle("box_02: wrapping (scenario 5)")

	box, err := New(cubic(5), [3]bool{true, true, true}, [3]int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p := vecmat.NewVec3(5.2, -0.1, 2.5)
	w := box.Wrap(p)
	chk.Float64(tst, "x", 1e-12, w[0], 0.2)
	chk.Float64(tst, "y", 1e-12, w[1], 4.9)
	chk.Float64(tst, "z", 1e-12, w[2], 2.5)
}

func Test_box_03(tst *testing.T) {

	chk.PrintTitle("box_03: wrap is idempotent")

	box, err := New(cubic(5), [3]bool{true, true, true}, [3]int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p := vecmat.NewVec3(5.2, -0.1, 2.5)
	once := box.Wrap(p)
	twice := box.Wrap(once)
	chk.Array(tst, "wrap(wrap(p)) == wrap(p)", 1e-12, once[:], twice[:])
}

func Test_box_04(tst *testing.T) {

	chk.PrintTitle("box_04: minimum-image (scenario 2)")

	box, err := New(cubic(10), [3]bool{true, true, true}, [3]int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := vecmat.NewVec3(9.9-0.1, 0, 0)
	mi := box.MinimumImage(d)
	chk.Float64(tst, "dx", 1e-12, mi[0], -0.2)
	chk.Float64(tst, "|d|", 1e-12, mi.Norm(), 0.2)
}

func Test_box_05(tst *testing.T) {

	chk.PrintTitle("box_05: minimum-image is idempotent")

	box, err := New(cubic(10), [3]bool{true, true, true}, [3]int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	inRange := vecmat.NewVec3(2, -2, 0)
	once := box.MinimumImage(inRange)
	chk.Array(tst, "already-folded displacement is unchanged", 1e-15, once[:], inRange[:])

	far := vecmat.NewVec3(9.8, 0, 0)
	first := box.MinimumImage(far)
	second := box.MinimumImage(first)
	chk.Array(tst, "mi(mi(d)) == mi(d)", 1e-15, second[:], first[:])
}

func Test_box_06(tst *testing.T) {

	chk.PrintTitle("box_06: singular cell basis is an error")

	singular := vecmat.NewMat3FromRows(
		vecmat.NewVec3(0, 0, 0),
		vecmat.NewVec3(0, 1, 0),
		vecmat.NewVec3(0, 0, 1),
	)
	_, err := New(singular, [3]bool{true, true, true}, [3]int{1, 1, 1})
	if err == nil {
		tst.Fatal("expected error for degenerate cell axis")
	}
}
