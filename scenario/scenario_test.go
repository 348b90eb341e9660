package scenario

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/colorsim/population"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("reference scenario invalid: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
name = "island"
population_size = 250
male_percent = 45.5
female_carrier_percent = 20.0
seed = 77
`)

	sc, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if sc.Name != "island" || sc.PopulationSize != 250 || sc.MalePercent != 45.5 {
		t.Errorf("explicit keys not applied: %+v", sc)
	}
	if sc.FemaleCarrierPercent != 20 || sc.Seed != 77 {
		t.Errorf("explicit keys not applied: %+v", sc)
	}
	// Unset keys keep the reference values
	if sc.MaleColorblindPercent != 8 || sc.FemaleColorblindPercent != 0.5 || sc.Generations != 10 {
		t.Errorf("defaults lost: %+v", sc)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("population_size = 50\nmigration_rate = 0.2\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "migration_rate") {
		t.Errorf("expected key name in error, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("population_size = = 3")); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.toml")
	if err := os.WriteFile(path, []byte("population_size = 31\ngenerations = 3\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.PopulationSize != 31 || sc.Generations != 3 {
		t.Errorf("unexpected scenario: %+v", sc)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "absent.toml") {
		t.Errorf("expected path in error, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	sc := Default()
	sc.Name = "roundtrip"
	sc.Seed = 99

	var buf bytes.Buffer
	if err := sc.Encode(&buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != sc {
		t.Errorf("expected %+v, got %+v", sc, got)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	sc := Scenario{
		Name:                    "bad",
		PopulationSize:          10,
		MalePercent:             100,
		MaleColorblindPercent:   -1,
		FemaleColorblindPercent: 60,
		FemaleCarrierPercent:    60,
		Generations:             -2,
	}

	err := sc.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, fragment := range []string{"population size 10", "male percent 100", "male colorblind percent -1", "sum to 120", "generations -2"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("expected %q in %q", fragment, msg)
		}
	}
}

func TestChecks_Boundaries(t *testing.T) {
	if CheckPopulationSize(30) != nil || CheckPopulationSize(29) == nil {
		t.Error("population boundary should be 30 inclusive")
	}
	if CheckSplitPercent(0) == nil || CheckSplitPercent(0.01) != nil || CheckSplitPercent(99.99) != nil {
		t.Error("split percent must be strictly within (0, 100)")
	}
	if CheckRatePercent("rate", 0) != nil || CheckRatePercent("rate", 100) == nil {
		t.Error("rate percent must be within [0, 100)")
	}
	if CheckFemaleRates(50, 50) != nil || CheckFemaleRates(50, 50.5) == nil {
		t.Error("female rates may sum to 100 but not more")
	}
}

func TestValidate_SeedFitsTOML(t *testing.T) {
	sc := Default()
	sc.Seed = math.MaxInt64
	if err := sc.Validate(); err != nil {
		t.Errorf("largest signed seed should be valid: %v", err)
	}

	sc.Seed = 1<<63 + 5
	err := sc.Validate()
	if err == nil || !strings.Contains(err.Error(), "seed 9223372036854775813") {
		t.Errorf("expected seed rejection, got %v", err)
	}

	var buf bytes.Buffer
	if err := sc.Encode(&buf); err == nil {
		t.Error("expected encode to refuse an unrepresentable seed")
	}
}

func TestApply_ConfiguresEngine(t *testing.T) {
	e := population.New(&population.Config{Seed: 1})
	Default().Apply(e)

	want := population.State{PopulationSize: 100, Males: 50, Females: 50, ColorblindMales: 4, CarrierFemales: 7}
	if got := e.State(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestNewEngine_SeedPrecedence(t *testing.T) {
	sc := Default()
	sc.Seed = 4242

	a := sc.NewEngine(nil)
	b := sc.NewEngine(&population.Config{})
	a.AdvanceGeneration()
	b.AdvanceGeneration()

	if a.State() != b.State() {
		t.Errorf("scenario seed not applied consistently: %+v vs %+v", a.State(), b.State())
	}

	cfg := &population.Config{Seed: 1}
	sc.NewEngine(cfg)
	if cfg.Seed != 1 {
		t.Error("caller config must not be modified")
	}
}
