package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Stepping strategies accepted by StepperFor
const (
	StrategySequential = "sequential"
	StrategyParallel   = "parallel"
	StrategyBounded    = "bounded"
)

// Stepper produces the next generation of a grid without modifying it
type Stepper interface {
	Advance(g *Grid) *Grid
}

// StepperFunc adapts a function to the Stepper interface
type StepperFunc func(g *Grid) *Grid

// Advance calls f(g)
func (f StepperFunc) Advance(g *Grid) *Grid {
	return f(g)
}

// StepperFor returns the stepper implementing strategy.
// workers only applies to the parallel strategy, values below 1 mean one worker per CPU.
func StepperFor(strategy string, workers int) (Stepper, error) {
	switch strategy {
	case StrategySequential, "":
		return StepperFunc(Advance), nil
	case StrategyParallel:
		return StepperFunc(func(g *Grid) *Grid {
			return AdvanceParallel(g, workers)
		}), nil
	case StrategyBounded:
		return StepperFunc(AdvanceBounded), nil
	default:
		return nil, errors.Errorf("[StepperFor] unknown strategy: %q", strategy)
	}
}

// Advance calculates the next generation.
// Every cell is evaluated against g, so updates are simultaneous.
func Advance(g *Grid) *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = g.nextState(x, y)
		}
	}
	return next
}

// AdvanceParallel calculates the next generation by splitting the rows into bands.
// Workers read only from g and each writes only to its own rows of the result.
func AdvanceParallel(g *Grid, workers int) *Grid {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	next := newGrid(g.width, g.height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					next.cells[y][x] = g.nextState(x, y)
				}
			}
			return nil
		})
	}

	// The bands never fail, Wait is only a barrier here
	_ = eg.Wait()

	return next
}

// AdvanceBounded calculates the next generation only around the living cells.
// Cells more than one step away from the bounding box have no living neighbors
// and stay dead.
func AdvanceBounded(g *Grid) *Grid {
	next := newGrid(g.width, g.height)

	b := g.BoundingBox()
	if b.Empty {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, b.MinX-1)
	maxX := min(g.width-1, b.MaxX+1)
	minY := max(0, b.MinY-1)
	maxY := min(g.height-1, b.MaxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = g.nextState(x, y)
		}
	}

	return next
}
