package population

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Engine advances a single population one generation at a time
// It owns its state, random source and observer list; engines share nothing,
// so independent simulations may run on separate goroutines. A single
// Engine is not safe for concurrent use.
type Engine struct {
	state State

	rng    Source
	logger *log.Logger

	observers []registration
	nextID    ObserverID
}

// Config holds optional engine dependencies
type Config struct {
	// Seed for the default PCG source (0 for entropy seeding)
	Seed uint64
	// Source overrides the generator built from Seed
	Source Source
	// Logger receives per-generation debug records (nil discards)
	Logger *log.Logger
}

// DefaultConfig returns an entropy-seeded, silent configuration
func DefaultConfig() *Config {
	return &Config{
		Seed:   0,
		Logger: log.New(io.Discard),
	}
}

// New creates an engine with generation 0 and an empty population
func New(cfg ...*Config) *Engine {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	rng := config.Source
	if rng == nil {
		rng = NewSource(config.Seed)
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Engine{
		rng:    rng,
		logger: logger.WithPrefix("population"),
	}
}

// State returns a snapshot of the current population
func (e *Engine) State() State {
	return e.state
}

// --- Configuration ---
// Arguments are not validated here; front-ends check ranges before calling

// SetPopulationSize sets the starting population (30 or more recommended)
func (e *Engine) SetPopulationSize(n int) {
	e.state.PopulationSize = n
}

// SetPercentages splits the population by sex, rounding males down
func (e *Engine) SetPercentages(malePercent float64) {
	e.state.Males = percentOf(e.state.PopulationSize, malePercent)
	e.state.Females = e.state.PopulationSize - e.state.Males
}

// SetColorblindRates derives trait counts from per-sex percentages, rounding down
// Percentages summing over 100 for females are accepted; the resulting
// overlap saturates the draw probabilities and disappears after one generation
func (e *Engine) SetColorblindRates(maleColorblindPercent, femaleColorblindPercent, femaleCarrierPercent float64) {
	e.state.ColorblindMales = percentOf(e.state.Males, maleColorblindPercent)
	e.state.ColorblindFemales = percentOf(e.state.Females, femaleColorblindPercent)
	e.state.CarrierFemales = percentOf(e.state.Females, femaleCarrierPercent)

	e.logger.Debug("population configured",
		"size", e.state.PopulationSize,
		"males", e.state.Males,
		"females", e.state.Females,
		"cb_males", e.state.ColorblindMales,
		"cb_females", e.state.ColorblindFemales,
		"carriers", e.state.CarrierFemales,
	)
}

// percentOf returns floor(n*p/100)
// Multiplying before dividing keeps whole-number percentages exact
func percentOf(n int, p float64) int {
	return int(float64(n) * p / 100.0)
}

// --- Evolution ---

// AdvanceGeneration pairs the population, replaces it with the offspring and
// notifies observers
// Pairing is monogamous and greedy: min(males, females) couples form and the
// unpaired surplus leaves no descendants, so size is not conserved
func (e *Engine) AdvanceGeneration() {
	s := &e.state
	s.Generation++

	var next Offspring
	pairs := 0

	// Loop guard keeps both divisors positive
	for s.Males > 0 && s.Females > 0 {
		fatherColorblind := e.drawFather()
		motherColorblind, motherCarrier := e.drawMother()
		next.Add(Reproduce(e.rng, fatherColorblind, motherColorblind, motherCarrier))
		pairs++
	}
	unpaired := s.Males + s.Females

	s.Males = next.Males
	s.Females = next.Females
	s.ColorblindMales = next.ColorblindMales
	s.ColorblindFemales = next.ColorblindFemales
	s.CarrierFemales = next.CarrierFemales
	s.PopulationSize = s.Males + s.Females

	e.logger.Debug("generation advanced",
		"generation", s.Generation,
		"pairs", pairs,
		"unpaired", unpaired,
		"size", s.PopulationSize,
		"cb_males", s.ColorblindMales,
		"cb_females", s.ColorblindFemales,
		"carriers", s.CarrierFemales,
	)
	if s.Extinct() && pairs > 0 {
		e.logger.Info("population extinct", "generation", s.Generation)
	}

	e.notify()
}

// drawFather removes one male from the pool and reports whether he is colorblind
func (e *Engine) drawFather() bool {
	s := &e.state
	colorblind := chance(e.rng, float64(s.ColorblindMales)/float64(s.Males))
	if colorblind {
		s.ColorblindMales--
	}
	s.Males--
	return colorblind
}

// drawMother removes one female from the pool and reports her status
// The carrier draw is conditioned on not being colorblind and uses the
// counts from before this female is removed
func (e *Engine) drawMother() (colorblind, carrier bool) {
	s := &e.state
	colorblind = chance(e.rng, float64(s.ColorblindFemales)/float64(s.Females))
	if colorblind {
		s.ColorblindFemales--
	} else if unaffected := s.Females - s.ColorblindFemales; unaffected > 0 {
		carrier = chance(e.rng, float64(s.CarrierFemales)/float64(unaffected))
		if carrier {
			s.CarrierFemales--
		}
	}
	s.Females--
	return colorblind, carrier
}

// Run advances up to generations times, stopping early if ctx is cancelled
// Cancellation is checked between generations only
func (e *Engine) Run(ctx context.Context, generations int) error {
	for i := 0; i < generations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.AdvanceGeneration()
	}
	return nil
}
