package model

import (
	"sync"

	"github.com/pkg/errors"
)

// State of a simulation run
type State int

const (
	AwaitingInput State = iota
	Running
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// DefaultHistorySize is the number of recent generations kept for cycle detection
const DefaultHistorySize = 5

// Simulation holds the current generation and its counter.
// The initial grid is generation 0.
type Simulation struct {
	stepMu     sync.Mutex // held for a whole Step so concurrent steps apply in order
	mu         sync.RWMutex
	stepper    Stepper
	state      State
	grid       *Grid
	generation int
	history    []string // hashes of the generations before the current one
	historyCap int
}

// NewSimulation creates a simulation awaiting its initial grid.
// A nil stepper uses Advance.
func NewSimulation(stepper Stepper, historySize int) *Simulation {
	if stepper == nil {
		stepper = StepperFunc(Advance)
	}
	if historySize < 1 {
		historySize = DefaultHistorySize
	}
	return &Simulation{
		stepper:    stepper,
		historyCap: historySize,
	}
}

// Start supplies the initial grid and moves the simulation to Running
func (s *Simulation) Start(g *Grid) error {
	if g == nil {
		return errors.WithStack(&MalformedGridError{Row: -1, Reason: "nil grid"})
	}

	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return errors.WithStack(ErrAlreadyRunning)
	}
	s.grid = g
	s.generation = 0
	s.history = nil
	s.state = Running
	return nil
}

// Step advances one generation and returns the new grid
func (s *Simulation) Step() (*Grid, error) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	s.mu.RLock()
	state, current := s.state, s.grid
	s.mu.RUnlock()

	if state != Running {
		return nil, errors.WithStack(ErrNotStarted)
	}

	// Computed outside the lock, readers keep seeing the previous generation meanwhile
	next := s.stepper.Advance(current)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, current.Hash())
	// Keep only the last historyCap states to detect cycles
	if len(s.history) > s.historyCap {
		s.history = s.history[1:]
	}
	s.grid = next
	s.generation++

	return next, nil
}

// Grid returns the current generation, nil while awaiting input
func (s *Simulation) Grid() *Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Generation returns the number of steps taken since Start
func (s *Simulation) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// State returns the lifecycle state
func (s *Simulation) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Population returns the number of living cells in the current generation
func (s *Simulation) Population() int {
	g := s.Grid()
	if g == nil {
		return 0
	}
	return g.CountLivingCells()
}

// IsStagnant reports whether the current generation repeats one of the recent ones,
// which is the case for still lifes and oscillators with a short period
func (s *Simulation) IsStagnant() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.grid == nil {
		return false
	}
	currentHash := s.grid.Hash()
	for _, h := range s.history {
		if h == currentHash {
			return true
		}
	}
	return false
}
