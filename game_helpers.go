package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-painter/model"
	"github.com/sheikhrachel/gol-painter/screen"
	"github.com/sheikhrachel/gol-painter/utils"
)

// game bundles everything the main loop needs for one run
type game struct {
	config   utils.Config
	sim      *model.Simulation
	renderer model.Renderer
	pacer    model.Pacer
	screen   *screen.Screen // nil with the terminal renderer
	stats    *utils.Stats
	clear    func() // clears the terminal before each frame, nil with the screen renderer
	closers  []func()
}

// initializeGame opens the display and wires the stepper, renderer and pacer
func initializeGame(config utils.Config, stdin io.Reader, stdout io.Writer) (*game, error) {
	stepper, err := model.StepperFor(config.Strategy, config.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to select stepper")
	}

	g := &game{
		config: config,
		sim:    model.NewSimulation(stepper, config.HistorySize),
		stats:  utils.NewStats(),
	}

	switch config.Renderer {
	case utils.RendererScreen:
		scr, err := screen.Open(config.Mode == utils.ModeManual)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to open screen")
		}
		g.screen = scr
		g.renderer = scr
		g.closers = append(g.closers, scr.Close)
	default:
		if config.Pattern == model.PatternPaint {
			return nil, errors.Errorf("[initializeGame] pattern %q needs the %q renderer", config.Pattern, utils.RendererScreen)
		}
		terminal := model.NewTerminalRenderer(stdout)
		g.renderer = terminal
		if config.ClearTerminal {
			g.clear = terminal.Clear
		}
	}

	switch {
	case config.Mode == utils.ModeAuto:
		ticker := model.NewTickerPacer(config.FrameRate)
		g.pacer = ticker
		g.closers = append(g.closers, ticker.Stop)
	case g.screen != nil:
		g.pacer = g.screen
	default:
		lines := model.NewLinePacer(stdin)
		g.pacer = lines
		g.closers = append(g.closers, lines.Stop)
	}

	return g, nil
}

// close releases the display, the terminal is restored before anything else is printed
func (g *game) close() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
	g.closers = nil
}

// initialGrid paints or seeds generation 0
func (g *game) initialGrid(ctx context.Context) (*model.Grid, error) {
	if g.config.Pattern != model.PatternPaint {
		return model.Seed(g.config)
	}
	return model.Paint(ctx, g.config.Width, g.config.Height, g.screen, g.screen.ShowPainting)
}

// run drives the simulation until ctx is done, the user quits or a limit is reached
func (g *game) run(ctx context.Context) error {
	if g.screen != nil && g.config.ShowTitle {
		if err := g.screen.ShowTitle(ctx); err != nil {
			return err
		}
	}

	initial, err := g.initialGrid(ctx)
	if err != nil {
		return err
	}
	if err = g.sim.Start(initial); err != nil {
		return err
	}

	lastFrameTime := time.Now()
	for {
		frameStart := time.Now()
		status, stop := g.updateGameState(lastFrameTime)
		lastFrameTime = frameStart

		if g.clear != nil {
			g.clear()
		}
		if err = g.renderer.Render(g.sim.Grid(), g.sim.Generation(), status); err != nil {
			return err
		}
		if stop != "" {
			return &stopError{reason: stop}
		}

		if err = g.pacer.Wait(ctx); err != nil {
			return err
		}
		if g.screen != nil && g.config.Mode == utils.ModeAuto {
			if err = g.screen.Poll(); err != nil {
				return err
			}
		}

		if _, err = g.sim.Step(); err != nil {
			return err
		}
	}
}

// updateGameState refreshes the stats and returns the status line, plus a reason when the run should stop
func (g *game) updateGameState(lastFrameTime time.Time) (string, string) {
	var (
		generation  = g.sim.Generation()
		livingCells = g.sim.Population()
		grid        = g.sim.Grid()
		density     = float64(livingCells) / float64(grid.Width()*grid.Height()) * 100
	)

	if generation > 0 {
		g.stats.Update(generation, livingCells, time.Since(lastFrameTime))
	}

	state := "Active"
	stagnant := g.sim.IsStagnant()
	if stagnant {
		state = "Stagnant"
	}
	if livingCells == 0 {
		state = "Extinct"
	}

	status := fmt.Sprintf("Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		livingCells, density, state, g.stats.GenerationsPerSecond)

	return status, checkStopConditions(generation, stagnant, g.config)
}

// checkStopConditions returns why the run should stop, or "" to keep going
func checkStopConditions(generation int, stagnant bool, config utils.Config) string {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if stagnant && config.StopOnStagnation {
		return "stagnation detected"
	}
	return ""
}

// stopError ends a run normally with a reason to report
type stopError struct {
	reason string
}

func (e *stopError) Error() string {
	return e.reason
}

// displayFinalStats prints the summary once the terminal is restored
func displayFinalStats(g *game) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.sim.Generation(), g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
