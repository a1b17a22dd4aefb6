package logger

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomd/atom"
	"github.com/cpmech/gomd/energetics"
	"github.com/cpmech/gomd/vecmat"
)

func Test_logger_01(tst *testing.T) {

	chk.PrintTitle("logger_01: default config emits without error")

	a, err := atom.New("Ar", 39.948, 0, vecmat.NewVec3(1, 2, 3), vecmat.Vec3{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	atoms := atom.Set{a}

	l := NewStdout(DefaultConfig())
	rec := StepRecord{Step: 1, Time: 0.001, Atoms: atoms, Energetics: energetics.Update(atoms)}
	if err := l.Emit(rec); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func Test_logger_02(tst *testing.T) {

	chk.PrintTitle("logger_02: frequency gating skips off-cadence steps")

	a, _ := atom.New("Ar", 39.948, 0, vecmat.Vec3{}, vecmat.Vec3{})
	atoms := atom.Set{a}
	l := NewStdout(Config{Frequency: 5})
	rec := StepRecord{Step: 3, Atoms: atoms, Energetics: energetics.Update(atoms)}
	if err := l.Emit(rec); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func Test_logger_03(tst *testing.T) {

	chk.PrintTitle("logger_03: atom line formats requested fields only")

	a, _ := atom.New("Ar", 39.948, 0, vecmat.NewVec3(1, 2, 3), vecmat.Vec3{})
	l := NewStdout(Config{Format: "id x"})
	line := l.atomLine(&a)
	if line != "0 1.000" {
		tst.Fatalf("expected only id and x in the atom line, got %q", line)
	}
}
