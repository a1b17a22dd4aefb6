package energetics

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/vecmat"
)

func Test_energetics_01(tst *testing.T) {

	chk.PrintTitle("energetics_01: potential energy is halved, kinetic summed")

	a0, err := atom.New("Ar", 2, 0, vecmat.Vec3{}, vecmat.NewVec3(1, 0, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	a1, err := atom.New("Ar", 2, 0, vecmat.Vec3{}, vecmat.NewVec3(0, 1, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	a0.Current.PotentialEnergy = -2
	a1.Current.PotentialEnergy = -2
	atoms := atom.Set{a0, a1}

	e := Update(atoms)
	chk.Float64(tst, "potential", 1e-12, e.PotentialEnergy, -2)
	chk.Float64(tst, "kinetic", 1e-12, e.KineticEnergy, 2)
	chk.Float64(tst, "total", 1e-12, e.TotalEnergy, 0)
	chk.Float64(tst, "temperature", 1e-12, e.Temperature, 2*2/(3*2.0))
}
