package history

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/scenario"
)

// Run is the serializable record of one simulation
type Run struct {
	ID        string             `toml:"id"`
	Started   time.Time          `toml:"started"`
	Scenario  scenario.Scenario  `toml:"scenario"`
	Snapshots []population.State `toml:"snapshots"`
}

// NewRun creates an empty record with a fresh random ID
func NewRun(sc scenario.Scenario) (*Run, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "generate run id")
	}
	return &Run{
		ID:       id.String(),
		Started:  time.Now().UTC().Truncate(time.Second),
		Scenario: sc,
	}, nil
}

// Last returns the most recent snapshot
func (r *Run) Last() (population.State, bool) {
	if len(r.Snapshots) == 0 {
		return population.State{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// Validate checks the run ID, the scenario, and that snapshots form a
// consecutive, consistent series
// Generation 0 mirrors user input and is only checked for ordering
func (r *Run) Validate() error {
	if _, err := uuid.FromString(r.ID); err != nil {
		return errors.Wrapf(err, "run id %q", r.ID)
	}
	if err := r.Scenario.Validate(); err != nil {
		return err
	}

	for i, s := range r.Snapshots {
		if i > 0 && s.Generation != r.Snapshots[i-1].Generation+1 {
			return errors.Errorf("snapshot %d: generation %d does not follow %d",
				i, s.Generation, r.Snapshots[i-1].Generation)
		}
		if s.Generation == 0 {
			continue
		}
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "snapshot %d", i)
		}
	}
	return nil
}

// Recorder is an observer appending every published generation to a Run
type Recorder struct {
	run *Run
}

// NewRecorder starts a record seeded with the engine's current state
func NewRecorder(run *Run, initial population.State) *Recorder {
	run.Snapshots = append(run.Snapshots, initial)
	return &Recorder{run: run}
}

// Update appends the snapshot
func (rec *Recorder) Update(s population.State) {
	rec.run.Snapshots = append(rec.run.Snapshots, s)
}

// Run returns the record being written
func (rec *Recorder) Run() *Run {
	return rec.run
}
