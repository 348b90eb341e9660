package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/colorsim/population"
)

func TestSummary_Format(t *testing.T) {
	s := population.State{
		Generation:        3,
		PopulationSize:    100,
		Males:             50,
		Females:           50,
		ColorblindMales:   4,
		ColorblindFemales: 0,
		CarrierFemales:    7,
	}

	want := strings.Join([]string{
		"Generation 3",
		"Population Size: 100",
		"Males: 50 (50.00% of total population)",
		"Females: 50 (50.00% of total population)",
		"Colorblindness: 4 individuals are colorblind (4.00% of total population)",
		"4 males are colorblind (8.00% of total males)",
		"0 females are colorblind (0.00% of total females)",
		"7 females are carriers (14.00% of total females)",
	}, "\n")

	if got := Summary(s); got != want {
		t.Errorf("summary mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestSummary_ExtinctPopulation(t *testing.T) {
	got := Summary(population.State{Generation: 8})

	if strings.Contains(got, "NaN") {
		t.Errorf("empty population should not print NaN:\n%s", got)
	}
	if !strings.Contains(got, "Males: 0 (0.00% of total population)") {
		t.Errorf("expected zero percentages for empty population:\n%s", got)
	}
}

func TestPercent_Rounding(t *testing.T) {
	if p := Percent(1, 3); p < 33.33 || p > 33.34 {
		t.Errorf("expected ~33.33, got %v", p)
	}
	if p := Percent(5, 0); p != 0 {
		t.Errorf("expected 0 for empty whole, got %v", p)
	}
}

func TestWriter_ObservesEngine(t *testing.T) {
	var buf bytes.Buffer
	e := population.New(&population.Config{Seed: 8})
	e.SetPopulationSize(60)
	e.SetPercentages(50)
	e.SetColorblindRates(8, 0.5, 15)
	e.AddObserver(NewWriter(&buf))

	e.AdvanceGeneration()
	e.AdvanceGeneration()

	out := buf.String()
	if !strings.Contains(out, "Generation 1\n") || !strings.Contains(out, "Generation 2\n") {
		t.Errorf("expected two generation reports, got:\n%s", out)
	}
	if strings.Count(out, "\n\n") != 2 {
		t.Errorf("expected reports separated by blank lines, got:\n%s", out)
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriter_KeepsFirstError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)

	w.Update(population.State{Generation: 1})
	w.Update(population.State{Generation: 2})

	if w.Err() == nil {
		t.Fatal("expected write error")
	}
	if fw.calls != 1 {
		t.Errorf("expected writes to stop after first error, got %d calls", fw.calls)
	}
}
