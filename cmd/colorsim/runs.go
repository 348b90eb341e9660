package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/lixenwraith/colorsim/history"
	"github.com/lixenwraith/colorsim/report"
	"github.com/lixenwraith/colorsim/scenario"
)

// listRuns prints one line per saved run with its final population
func listRuns(mgr *history.Manager, out io.Writer) error {
	ids, err := mgr.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "No saved runs")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tstarted\tscenario\tgenerations\tfinal size\t")
	for _, id := range ids {
		r, err := mgr.Load(id)
		if err != nil {
			return err
		}
		last, _ := r.Last()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t\n",
			r.ID, r.Started.Format("2006-01-02 15:04:05"), r.Scenario.Name, last.Generation, last.PopulationSize)
	}
	return tw.Flush()
}

// showRun prints a saved run's scenario followed by its final summary
func showRun(mgr *history.Manager, id string, out io.Writer) error {
	if !mgr.Exists(id) {
		return errors.Errorf("no saved run %s in %s", id, mgr.FilePath(id))
	}
	r, err := mgr.Load(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# run %s started %s\n", r.ID, r.Started.Format("2006-01-02 15:04:05 MST"))
	if err := r.Scenario.Encode(out); err != nil {
		return err
	}

	last, ok := r.Last()
	if !ok {
		fmt.Fprintln(out, "\nNo snapshots recorded")
		return nil
	}
	_, err = fmt.Fprintf(out, "\n%s\n", report.Summary(last))
	return err
}

// dumpScenario writes the resolved scenario so it can be edited and reloaded
func dumpScenario(sc scenario.Scenario, out io.Writer) error {
	return sc.Encode(out)
}
