package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/colorsim/scenario"
)

// prompter asks for scenario values line by line, repeating a question
// until the answer parses and passes its check
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// line reads one trimmed answer; an empty answer selects the default
func (p *prompter) line(label, def string) (string, error) {
	fmt.Fprintf(p.out, "Enter %s [%s]: ", label, def)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrapf(err, "read %s", label)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "read %s", label)
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *prompter) askInt(label string, def int, check func(int) error) (int, error) {
	for {
		answer, err := p.line(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a whole number\n", answer)
			continue
		}
		if err := check(n); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return n, nil
	}
}

func (p *prompter) askPercent(label string, def float64, check func(float64) error) (float64, error) {
	for {
		answer, err := p.line(label, strconv.FormatFloat(def, 'g', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(answer, "%"), 64)
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a number\n", answer)
			continue
		}
		if err := check(v); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return v, nil
	}
}

// promptScenario builds a scenario interactively starting from base
func promptScenario(r io.Reader, w io.Writer, base scenario.Scenario) (scenario.Scenario, error) {
	p := newPrompter(r, w)
	sc := base
	var err error

	if sc.PopulationSize, err = p.askInt("population size", sc.PopulationSize, scenario.CheckPopulationSize); err != nil {
		return sc, err
	}
	fmt.Fprintf(w, "Total population size set to %d\n", sc.PopulationSize)

	if sc.MalePercent, err = p.askPercent("male percent", sc.MalePercent, scenario.CheckSplitPercent); err != nil {
		return sc, err
	}

	if sc.MaleColorblindPercent, err = p.askPercent("male colorblind percent", sc.MaleColorblindPercent, func(v float64) error {
		return scenario.CheckRatePercent("male colorblind percent", v)
	}); err != nil {
		return sc, err
	}

	if sc.FemaleColorblindPercent, err = p.askPercent("female colorblind percent", sc.FemaleColorblindPercent, func(v float64) error {
		return scenario.CheckRatePercent("female colorblind percent", v)
	}); err != nil {
		return sc, err
	}

	if sc.FemaleCarrierPercent, err = p.askPercent("female carrier percent", sc.FemaleCarrierPercent, func(v float64) error {
		if err := scenario.CheckRatePercent("female carrier percent", v); err != nil {
			return err
		}
		return scenario.CheckFemaleRates(sc.FemaleColorblindPercent, v)
	}); err != nil {
		return sc, err
	}

	if sc.Generations, err = p.askInt("generations", sc.Generations, func(n int) error {
		if n < 0 {
			return errors.Errorf("generations %d is negative", n)
		}
		return nil
	}); err != nil {
		return sc, err
	}

	return sc, nil
}
