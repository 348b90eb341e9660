// Package batch runs independent replicates of one scenario concurrently and
// aggregates their per-generation statistics
package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/scenario"
	"github.com/lixenwraith/colorsim/tracking"
)

// Config controls a replicate batch
type Config struct {
	// Scenario is the starting population shared by every replicate
	Scenario scenario.Scenario
	// Replicates is the number of independent engines to run
	Replicates int
	// Parallelism caps concurrently running engines
	Parallelism int
	// BaseSeed seeds replicate i with BaseSeed+i; 0 falls back to the
	// scenario seed, and entropy seeding when that is also 0
	BaseSeed uint64
	// Logger receives batch progress (nil discards)
	Logger *log.Logger
}

// DefaultConfig returns a single-replicate batch of the reference scenario
func DefaultConfig() Config {
	return Config{
		Scenario:    scenario.Default(),
		Replicates:  parameter.DefaultReplicates,
		Parallelism: parameter.DefaultParallelism,
	}
}

// GenerationStats holds aggregated metrics for one generation across replicates
type GenerationStats struct {
	Generation int
	Metrics    tracking.MetricBundle
}

// Result is the outcome of a batch
type Result struct {
	Replicates  int
	Generations []GenerationStats
	Finals      []population.State
	Extinctions int
	Elapsed     time.Duration
}

// Run executes every replicate and aggregates them by generation
// Generation 0 holds the configured starting population
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Replicates < 1 {
		return nil, fmt.Errorf("replicates must be positive, got %d", cfg.Replicates)
	}
	if err := cfg.Scenario.Validate(); err != nil {
		return nil, err
	}

	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("batch")

	generations := cfg.Scenario.Generations
	baseSeed := cfg.BaseSeed
	if baseSeed == 0 {
		baseSeed = cfg.Scenario.Seed
	}

	collectors := make([]*tracking.Collector, generations+1)
	for i := range collectors {
		collectors[i] = tracking.NewCollector()
	}
	finals := make([]population.State, cfg.Replicates)

	var mu sync.Mutex
	record := func(s population.State) {
		bundle := tracking.FromState(s)
		mu.Lock()
		collectors[s.Generation].Collect(bundle)
		mu.Unlock()
	}

	logger.Info("batch started",
		"scenario", cfg.Scenario.Name,
		"replicates", cfg.Replicates,
		"generations", generations,
		"parallelism", parallelism,
	)
	start := time.Now()

	p := pool.New().WithContext(ctx).WithMaxGoroutines(parallelism)
	for i := 0; i < cfg.Replicates; i++ {
		replicate := i
		p.Go(func(ctx context.Context) error {
			var seed uint64
			if baseSeed != 0 {
				seed = baseSeed + uint64(replicate)
			}

			// One engine per goroutine; nothing is shared but the collectors
			e := cfg.Scenario.NewEngine(&population.Config{
				Seed:   seed,
				Logger: logger.With("replicate", replicate),
			})
			record(e.State())
			e.AddObserver(population.ObserverFunc(record))

			if err := e.Run(ctx, generations); err != nil {
				return fmt.Errorf("replicate %d: %w", replicate, err)
			}
			finals[replicate] = e.State()
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		logger.Warn("batch aborted", "err", err)
		return nil, err
	}

	result := &Result{
		Replicates:  cfg.Replicates,
		Generations: make([]GenerationStats, len(collectors)),
		Finals:      finals,
		Elapsed:     time.Since(start),
	}
	for g, c := range collectors {
		result.Generations[g] = GenerationStats{Generation: g, Metrics: c.Finalize()}
	}
	for _, s := range finals {
		if s.Extinct() {
			result.Extinctions++
		}
	}

	logger.Info("batch finished",
		"elapsed", result.Elapsed,
		"extinctions", result.Extinctions,
	)
	return result, nil
}

// Series returns one finalized metric for every generation in order
func (r *Result) Series(key string) []float64 {
	series := make([]float64, len(r.Generations))
	for i, g := range r.Generations {
		series[i] = g.Metrics.Get(key, 0)
	}
	return series
}

// WriteTable prints per-generation averages and ranges as aligned columns
func (r *Result) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "gen\tavg size\tmin size\tmax size\tavg cb %\tavg carriers\textinct\t")
	for _, g := range r.Generations {
		m := g.Metrics
		fmt.Fprintf(tw, "%d\t%.1f\t%.0f\t%.0f\t%.2f\t%.1f\t%.0f\t\n",
			g.Generation,
			m.Get("avg_"+tracking.MetricPopulation, 0),
			m.Get("min_"+tracking.MetricPopulation, 0),
			m.Get("max_"+tracking.MetricPopulation, 0),
			m.Get("avg_"+tracking.MetricColorblindShare, 0),
			m.Get("avg_"+tracking.MetricCarrierFemales, 0),
			m.Get("avg_"+tracking.MetricExtinct, 0)*m.Get(tracking.MetricSamples, 0),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	share := r.Series("avg_" + tracking.MetricColorblindShare)
	_, err := fmt.Fprintf(w, "\n%d replicates, %d extinct after %d generations\n"+
		"average colorblind share %.2f%% -> %.2f%%\n",
		r.Replicates, r.Extinctions, len(r.Generations)-1,
		share[0], share[len(share)-1])
	return err
}
