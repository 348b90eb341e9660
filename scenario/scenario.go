// Package scenario loads, validates and applies starting populations
// Validation of user input lives here rather than in the engine
package scenario

import (
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
)

// Scenario describes a starting population and how long to run it
type Scenario struct {
	Name                    string  `toml:"name"`
	PopulationSize          int     `toml:"population_size"`
	MalePercent             float64 `toml:"male_percent"`
	MaleColorblindPercent   float64 `toml:"male_colorblind_percent"`
	FemaleColorblindPercent float64 `toml:"female_colorblind_percent"`
	FemaleCarrierPercent    float64 `toml:"female_carrier_percent"`
	Generations             int     `toml:"generations"`
	Seed                    uint64  `toml:"seed"`
}

// Default returns the reference scenario
func Default() Scenario {
	return Scenario{
		Name:                    parameter.DefaultScenarioName,
		PopulationSize:          parameter.DefaultPopulationSize,
		MalePercent:             parameter.DefaultMalePercent,
		MaleColorblindPercent:   parameter.DefaultMaleColorblindPercent,
		FemaleColorblindPercent: parameter.DefaultFemaleColorblindPercent,
		FemaleCarrierPercent:    parameter.DefaultFemaleCarrierPercent,
		Generations:             parameter.DefaultGenerations,
	}
}

// Parse decodes TOML over the reference scenario; keys left out keep their
// default and unknown keys are rejected
func Parse(data []byte) (Scenario, error) {
	sc := Default()
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return sc, errors.Wrap(err, "decode scenario")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return sc, errors.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}

	return sc, nil
}

// Load reads and parses a scenario file
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "read scenario %s", path)
	}

	sc, err := Parse(data)
	if err != nil {
		return sc, errors.Wrapf(err, "scenario %s", path)
	}
	return sc, nil
}

// Encode writes the scenario as TOML
func (sc Scenario) Encode(w io.Writer) error {
	if err := CheckSeed(sc.Seed); err != nil {
		return errors.Wrap(err, "encode scenario")
	}
	return errors.Wrap(toml.NewEncoder(w).Encode(sc), "encode scenario")
}

// CheckPopulationSize rejects populations too small to be meaningful
func CheckPopulationSize(n int) error {
	if n < parameter.MinPopulationSize {
		return errors.Errorf("population size %d is below %d", n, parameter.MinPopulationSize)
	}
	return nil
}

// CheckSplitPercent requires a sex split strictly within (0, 100)
func CheckSplitPercent(p float64) error {
	if p <= 0 || p >= parameter.PercentMax {
		return errors.Errorf("male percent %g must be within (0, 100)", p)
	}
	return nil
}

// CheckRatePercent requires a trait rate within [0, 100); a trait may be absent
func CheckRatePercent(name string, p float64) error {
	if p < 0 || p >= parameter.PercentMax {
		return errors.Errorf("%s %g must be within [0, 100)", name, p)
	}
	return nil
}

// CheckFemaleRates rejects colorblind and carrier shares that overlap
func CheckFemaleRates(colorblind, carrier float64) error {
	if sum := colorblind + carrier; sum > parameter.PercentMax {
		return errors.Errorf("female colorblind and carrier percents sum to %g, above 100", sum)
	}
	return nil
}

// CheckSeed rejects seeds TOML cannot represent; integers there are signed 64-bit
func CheckSeed(seed uint64) error {
	if seed > math.MaxInt64 {
		return errors.Errorf("seed %d exceeds %d", seed, uint64(math.MaxInt64))
	}
	return nil
}

// Validate checks every field and reports all problems at once
func (sc Scenario) Validate() error {
	checks := []error{
		CheckPopulationSize(sc.PopulationSize),
		CheckSplitPercent(sc.MalePercent),
		CheckRatePercent("male colorblind percent", sc.MaleColorblindPercent),
		CheckRatePercent("female colorblind percent", sc.FemaleColorblindPercent),
		CheckRatePercent("female carrier percent", sc.FemaleCarrierPercent),
		CheckFemaleRates(sc.FemaleColorblindPercent, sc.FemaleCarrierPercent),
		CheckSeed(sc.Seed),
	}
	if sc.Generations < 0 {
		checks = append(checks, errors.Errorf("generations %d is negative", sc.Generations))
	}

	var problems []string
	for _, err := range checks {
		if err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Errorf("invalid scenario %q: %s", sc.Name, strings.Join(problems, "; "))
}

// Apply configures a fresh engine with the scenario's starting population
func (sc Scenario) Apply(e *population.Engine) {
	e.SetPopulationSize(sc.PopulationSize)
	e.SetPercentages(sc.MalePercent)
	e.SetColorblindRates(sc.MaleColorblindPercent, sc.FemaleColorblindPercent, sc.FemaleCarrierPercent)
}

// NewEngine builds an engine seeded from the scenario and applies it
// A non-zero seed in cfg takes precedence over the scenario seed
func (sc Scenario) NewEngine(cfg *population.Config) *population.Engine {
	c := population.DefaultConfig()
	if cfg != nil {
		c = new(population.Config)
		*c = *cfg
	}
	if c.Seed == 0 {
		c.Seed = sc.Seed
	}
	e := population.New(c)
	sc.Apply(e)
	return e
}
