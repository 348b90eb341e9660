package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/colorsim/audio"
	"github.com/lixenwraith/colorsim/batch"
	"github.com/lixenwraith/colorsim/history"
	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/report"
	"github.com/lixenwraith/colorsim/scenario"
	"github.com/lixenwraith/colorsim/tui"
)

var (
	scenarioFlag    = flag.String("scenario", "", "Scenario TOML file (prompt on stdin when empty)")
	generationsFlag = flag.Int("generations", -1, "Generations to run (-1 keeps the scenario value)")
	seedFlag        = flag.Uint64("seed", 0, "Random seed (0 uses the scenario seed, then entropy)")
	tuiFlag         = flag.String("tui", "auto", "Dashboard mode: auto, on, off")
	soundFlag       = flag.Bool("sound", false, "Play a chime per generation")
	replicatesFlag  = flag.Int("replicates", parameter.DefaultReplicates, "Independent runs to aggregate (batch mode when > 1)")
	parallelFlag    = flag.Int("parallel", parameter.DefaultParallelism, "Concurrent replicates in batch mode")
	saveFlag        = flag.Bool("save", false, "Save the run history under "+parameter.HistoryPersistencePath)
	debugFlag       = flag.Bool("debug", false, "Write debug logs to "+parameter.LogDir)
	listFlag        = flag.Bool("list", false, "List saved runs and exit")
	showFlag        = flag.String("show", "", "Print a saved run's scenario and final summary, then exit")
	dumpFlag        = flag.Bool("dump-scenario", false, "Print the resolved scenario as TOML and exit")
)

// activeScreen is restored by the crash handler when the dashboard is up
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLORSIM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, logger)
	stop()

	if logFile != nil {
		logFile.Close()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "colorsim: %v\n", err)
		os.Exit(1)
	}
}

func emergencyReset() {
	if activeScreen != nil {
		activeScreen.Fini()
		activeScreen = nil
	}
}

func run(ctx context.Context, logger *log.Logger) error {
	switch {
	case *listFlag:
		return listRuns(history.NewManager(parameter.HistoryPersistencePath), os.Stdout)
	case *showFlag != "":
		return showRun(history.NewManager(parameter.HistoryPersistencePath), *showFlag, os.Stdout)
	}

	sc, err := loadScenario(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	if *dumpFlag {
		return dumpScenario(sc, os.Stdout)
	}
	logger.Info("scenario ready", "name", sc.Name, "size", sc.PopulationSize, "generations", sc.Generations)

	if *replicatesFlag > 1 {
		return runBatch(ctx, sc, logger, os.Stdout)
	}

	engine := sc.NewEngine(&population.Config{Logger: logger})

	var recorder *history.Recorder
	if *saveFlag {
		r, err := history.NewRun(sc)
		if err != nil {
			return err
		}
		recorder = history.NewRecorder(r, engine.State())
		engine.AddObserver(recorder)
	}

	if *soundFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sm.Cleanup()
			engine.AddObserver(sm)
		}
	}

	if useDashboard() {
		err = runDashboard(ctx, engine, sc)
	} else {
		err = runHeadless(ctx, engine, sc.Generations, os.Stdout)
	}
	if err != nil {
		return err
	}

	if recorder != nil {
		return saveRun(recorder.Run(), os.Stdout)
	}
	return nil
}

// loadScenario reads the scenario file or falls back to prompting
func loadScenario(in io.Reader, out io.Writer) (scenario.Scenario, error) {
	var (
		sc  scenario.Scenario
		err error
	)
	if *scenarioFlag != "" {
		sc, err = scenario.Load(*scenarioFlag)
	} else {
		sc, err = promptScenario(in, out, scenario.Default())
	}
	if err != nil {
		return sc, err
	}

	if *generationsFlag >= 0 {
		sc.Generations = *generationsFlag
	}
	if *seedFlag != 0 {
		sc.Seed = *seedFlag
	}
	return sc, nil
}

func useDashboard() bool {
	switch *tuiFlag {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// runHeadless prints the initial summary and one summary per generation
func runHeadless(ctx context.Context, engine *population.Engine, generations int, out io.Writer) error {
	w := report.NewWriter(out)
	w.Update(engine.State())
	engine.AddObserver(w)

	if err := engine.Run(ctx, generations); err != nil {
		return err
	}
	return errors.Wrap(w.Err(), "write report")
}

func runDashboard(ctx context.Context, engine *population.Engine, sc scenario.Scenario) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}
	activeScreen = screen
	defer emergencyReset()

	d := tui.New(screen, sc.Name, sc.Generations)
	engine.AddObserver(d)
	return d.Run(ctx, engine)
}

func runBatch(ctx context.Context, sc scenario.Scenario, logger *log.Logger, out io.Writer) error {
	cfg := batch.DefaultConfig()
	cfg.Scenario = sc
	cfg.Replicates = *replicatesFlag
	cfg.Parallelism = *parallelFlag
	cfg.BaseSeed = *seedFlag
	cfg.Logger = logger

	result, err := batch.Run(ctx, cfg)
	if err != nil {
		return err
	}
	return result.WriteTable(out)
}

func saveRun(r *history.Run, out io.Writer) error {
	mgr := history.NewManager(parameter.HistoryPersistencePath)
	if err := mgr.Save(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved run %s to %s\n", r.ID, mgr.FilePath(r.ID))
	return nil
}
