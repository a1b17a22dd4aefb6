package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/google/go-cmp/cmp"
)

func writeTempDoc(tst *testing.T, body string) string {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "sim.json")
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		tst.Fatalf("cannot write temp input document: %v", err)
	}
	return fn
}

func Test_inp_01(tst *testing.T) {

	chk.PrintTitle("inp_01: Read decodes every top-level key")

	body := `{
		"system": {
			"vectors": [[10,0,0],[0,10,0],[0,0,10]],
			"periodicity": "xyz",
			"atoms": [
				{"name": "Ar", "position": [0,0,0], "velocity": [0,0,0], "mass": 39.948}
			]
		},
		"potential": {"model": "lj", "parameters": {"epsilon": 1, "sigma": 1}},
		"neighbors": {"cutoff": 3, "frequency": 1},
		"dynamics": {"integrator": {"type": "verlet"}, "timestep": 0.001, "steps": 10},
		"thermodynamics": {"ensemble": {"type": "nve"}},
		"logger": {"frequency": 1}
	}`
	fnamepath := writeTempDoc(tst, body)

	doc, err := Read(fnamepath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	want := Document{
		System: SystemDoc{
			Vectors:     [][]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}},
			Periodicity: json.RawMessage(`"xyz"`),
			Atoms: []AtomSpec{
				{Name: "Ar", Position: []float64{0, 0, 0}, Velocity: []float64{0, 0, 0}, Mass: json.RawMessage("39.948")},
			},
		},
		Potential: PotentialDoc{
			Model: "lj",
			Parameters: struct {
				Epsilon float64 `json:"epsilon"`
				Sigma   float64 `json:"sigma"`
			}{Epsilon: 1, Sigma: 1},
		},
		Neighbors: NeighborsDoc{Cutoff: 3, Frequency: 1},
		Dynamics: DynamicsDoc{
			Integrator: struct {
				Type   string `json:"type"`
				Flavor string `json:"flavor"`
			}{Type: "verlet"},
			Timestep: 0.001,
			Steps:    10,
		},
		Thermodynamics: ThermodynamicsDoc{Ensemble: struct {
			Type string `json:"type"`
		}{Type: "nve"}},
		Logger: LoggerDoc{Frequency: 1},
	}

	if diff := cmp.Diff(want, *doc); diff != "" {
		tst.Fatalf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func Test_inp_02(tst *testing.T) {

	chk.PrintTitle("inp_02: Build assembles a runnable engine from a minimal document")

	body := `{
		"system": {
			"vectors": [[10,0,0],[0,10,0],[0,0,10]],
			"atoms": [
				{"name": "Ar", "position": [0,0,0], "velocity": [0,0,0], "mass": 1},
				{"name": "Ar", "position": [0.1122462,0,0], "velocity": [0,0,0], "mass": 1}
			]
		},
		"potential": {"model": "lj", "parameters": {"epsilon": 1, "sigma": 1}},
		"neighbors": {"cutoff": 3, "frequency": 1},
		"dynamics": {"integrator": {"type": "verlet"}, "timestep": 0.001, "steps": 5},
		"thermodynamics": {"ensemble": {"type": "nve"}}
	}`
	fnamepath := writeTempDoc(tst, body)

	doc, err := Read(fnamepath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	eng, err := Build(doc)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(eng.Atoms) != 2 {
		tst.Fatalf("expected 2 atoms, got %d", len(eng.Atoms))
	}
	if err := eng.Run(); err != nil {
		tst.Fatalf("unexpected error running assembled engine: %v", err)
	}
}
