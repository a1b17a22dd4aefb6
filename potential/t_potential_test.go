package potential

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/neighbors"
	"github.com/cpmech/gomd/simbox"
	"github.com/cpmech/gomd/vecmat"
)

func ljModel(tst *testing.T, epsilon, sigma, cutoff float64) Model {
	prms := fun.Prms{
		&fun.Prm{N: "epsilon", V: epsilon},
		&fun.Prm{N: "sigma", V: sigma},
	}
	if cutoff > 0 {
		prms = append(prms, &fun.Prm{N: "cutoff", V: cutoff})
	}
	m, err := GetModel("lj", prms)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return m
}

func Test_potential_01(tst *testing.T) {

	chk.PrintTitle("potential_01: LJ zero-crossing at r=sigma")

	m := ljModel(tst, 1, 1, 2.5)
	chk.Float64(tst, "U(sigma)", 1e-12, m.Potential(1), 0)
}

func Test_potential_02(tst *testing.T) {

	chk.PrintTitle("potential_02: LJ minimum at r=2^(1/6) sigma")

	m := ljModel(tst, 1, 1, 2.5)
	rmin := math.Pow(2, 1.0/6.0)
	chk.Float64(tst, "U(rmin)", 1e-9, m.Potential(rmin), -1)
	chk.Float64(tst, "F(rmin)", 1e-9, m.ForceMagnitude(rmin), 0)
}

func Test_potential_03(tst *testing.T) {

	chk.PrintTitle("potential_03: LJ vanishes at and beyond cutoff")

	m := ljModel(tst, 1, 1, 2.5)
	chk.Float64(tst, "U(cutoff)", 1e-15, m.Potential(2.5), 0)
	chk.Float64(tst, "F(cutoff)", 1e-15, m.ForceMagnitude(2.5), 0)
	chk.Float64(tst, "U(beyond)", 1e-15, m.Potential(10), 0)
}

func Test_potential_04(tst *testing.T) {

	chk.PrintTitle("potential_04: LJ diverges at r=0")

	m := ljModel(tst, 1, 1, 2.5)
	if !math.IsInf(m.Potential(0), 1) {
		tst.Fatal("expected +Inf potential at r=0")
	}
	if !math.IsInf(m.ForceMagnitude(0), 1) {
		tst.Fatal("expected +Inf force at r=0")
	}
}

func Test_potential_05(tst *testing.T) {

	chk.PrintTitle("potential_05: default cutoff is 2.5*sigma")

	m := ljModel(tst, 1, 2, 0)
	chk.Float64(tst, "U(5.0)=U(cutoff)", 1e-15, m.Potential(5.0), 0)
	if m.Potential(4.999999) == 0 {
		tst.Fatal("expected nonzero potential just inside the default cutoff")
	}
}

func Test_potential_06(tst *testing.T) {

	chk.PrintTitle("potential_06: two-atom symmetry scenario")

	vecs := vecmat.NewMat3FromRows(
		vecmat.NewVec3(10, 0, 0),
		vecmat.NewVec3(0, 10, 0),
		vecmat.NewVec3(0, 0, 10),
	)
	box, err := simbox.New(vecs, [3]bool{false, false, false}, [3]int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	rmin := math.Pow(2, 1.0/6.0)
	a0, _ := atom.New("Ar", 1, 0, vecmat.NewVec3(0, 0, 0), vecmat.Vec3{})
	a1, _ := atom.New("Ar", 1, 0, vecmat.NewVec3(rmin, 0, 0), vecmat.Vec3{})
	a0.ID, a1.ID = 0, 1
	atoms := atom.Set{a0, a1}

	nl, err := neighbors.New(3, 1, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := nl.Update(box, atoms); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	m := ljModel(tst, 1, 1, 2.5)
	if err := Update(m, &atoms[0], nl); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "potential energy per atom", 1e-9, atoms[0].Current.PotentialEnergy, -1)
	for k := 0; k < 3; k++ {
		chk.Float64(tst, "force ~ 0", 1e-9, atoms[0].Current.Force[k], 0)
	}
}
