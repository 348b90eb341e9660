// Package report renders population snapshots as the human-readable
// per-generation summary consumed by the text front-end
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/colorsim/population"
)

// Percent returns part as a percentage of whole; an empty whole yields 0
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100.0
}

// Summary formats one generation as a multi-line report
func Summary(s population.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generation %d\n", s.Generation)
	fmt.Fprintf(&b, "Population Size: %d\n", s.PopulationSize)
	fmt.Fprintf(&b, "Males: %d (%.2f%% of total population)\n",
		s.Males, Percent(s.Males, s.PopulationSize))
	fmt.Fprintf(&b, "Females: %d (%.2f%% of total population)\n",
		s.Females, Percent(s.Females, s.PopulationSize))
	fmt.Fprintf(&b, "Colorblindness: %d individuals are colorblind (%.2f%% of total population)\n",
		s.Colorblind(), Percent(s.Colorblind(), s.PopulationSize))
	fmt.Fprintf(&b, "%d males are colorblind (%.2f%% of total males)\n",
		s.ColorblindMales, Percent(s.ColorblindMales, s.Males))
	fmt.Fprintf(&b, "%d females are colorblind (%.2f%% of total females)\n",
		s.ColorblindFemales, Percent(s.ColorblindFemales, s.Females))
	fmt.Fprintf(&b, "%d females are carriers (%.2f%% of total females)",
		s.CarrierFemales, Percent(s.CarrierFemales, s.Females))

	return b.String()
}

// Writer is an observer printing a summary after every generation
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a summary observer writing to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Update writes the summary followed by a blank line
// The first write error is kept and later updates are dropped
func (r *Writer) Update(s population.State) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "%s\n\n", Summary(s))
}

// Err returns the first write error, if any
func (r *Writer) Err() error {
	return r.err
}
