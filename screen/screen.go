// Package screen draws generations in a terminal window and reads the keys that
// paint cells and advance the simulation.
package screen

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-painter/model"
)

var (
	// ErrQuit is returned when the user presses q, Esc or Ctrl-C
	ErrQuit = errors.New("quit requested")
	// ErrClosed is returned when reading from a closed screen
	ErrClosed = errors.New("screen closed")
)

const (
	aliveRune  = '█'
	deadRune   = '·'
	cursorRune = '▒'

	// every cell is two columns wide so the grid looks square
	cellColumns = 2
	// the grid starts below the header and status lines
	gridTop = 2

	titleText       = "Conway's Game of Life!"
	titleHint       = "Press any key to start, q to quit"
	paintHint       = "The yellow cell is selected. Press 1 for alive or 0 for dead."
	manualHint      = "Press ENTER to proceed to the next generation"
	paintingHeading = "Painting generation 0"
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(230, 230, 230)).Foreground(tcell.ColorBlack)
	aliveStyle      = backgroundStyle.Foreground(tcell.NewRGBColor(63, 235, 63))
	deadStyle       = backgroundStyle.Foreground(tcell.NewRGBColor(255, 54, 54))
	cursorStyle     = backgroundStyle.Foreground(tcell.NewRGBColor(245, 209, 66))
	hintStyle       = backgroundStyle.Foreground(tcell.NewRGBColor(255, 54, 54))
)

// Screen owns a tcell screen between Open and Close
type Screen struct {
	screen tcell.Screen
	manual bool

	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// Open initializes the terminal. manual adds the ENTER hint below every generation.
// Callers must Close the screen to restore the terminal.
func Open(manual bool) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[screen.Open] failed to create screen")
	}
	return New(s, manual)
}

// New takes ownership of an uninitialized tcell screen
func New(s tcell.Screen, manual bool) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[screen.New] failed to initialize screen")
	}
	s.SetStyle(backgroundStyle)
	s.Clear()

	scr := &Screen{
		screen: s,
		manual: manual,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(scr.events, scr.quit)
	return scr, nil
}

// Close stops reading events and restores the terminal, it is safe to call twice
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Render draws one generation, implementing model.Renderer
func (s *Screen) Render(g *model.Grid, generation int, status string) error {
	s.screen.Clear()
	s.drawText(0, 0, backgroundStyle, fmt.Sprintf("Generation: %d", generation))
	s.drawText(0, 1, backgroundStyle, status)
	s.drawGrid(g, nil)
	if s.manual {
		s.drawText(0, gridTop+g.Height()+1, hintStyle, manualHint)
	}
	s.screen.Show()
	return nil
}

// ShowPainting draws the grid being painted with the cursor cell highlighted,
// it matches model.PaintView
func (s *Screen) ShowPainting(g *model.Grid, cursor model.Coordinate) error {
	s.screen.Clear()
	s.drawText(0, 0, backgroundStyle, paintingHeading)
	s.drawText(0, 1, backgroundStyle, fmt.Sprintf("Cell %s", cursor))
	s.drawGrid(g, &cursor)
	s.drawText(0, gridTop+g.Height()+1, hintStyle, paintHint)
	s.screen.Show()
	return nil
}

// ShowTitle draws the title screen and waits for any key
func (s *Screen) ShowTitle(ctx context.Context) error {
	s.screen.Clear()
	s.drawText(0, 0, backgroundStyle, titleText)
	s.drawText(0, 2, hintStyle, titleHint)
	s.screen.Show()

	_, err := s.nextKey(ctx)
	return err
}

// ReadNextChoice blocks until 1 (alive) or 0 (dead) is pressed, implementing model.ChoiceReader
func (s *Screen) ReadNextChoice(ctx context.Context) (bool, error) {
	for {
		ev, err := s.nextKey(ctx)
		if err != nil {
			return false, err
		}
		if ev.Key() != tcell.KeyRune {
			continue
		}
		switch ev.Rune() {
		case '1':
			return true, nil
		case '0':
			return false, nil
		}
	}
}

// Wait blocks until ENTER is pressed, implementing model.Pacer for manual stepping
func (s *Screen) Wait(ctx context.Context) error {
	for {
		ev, err := s.nextKey(ctx)
		if err != nil {
			return err
		}
		if ev.Key() == tcell.KeyEnter {
			return nil
		}
	}
}

// Poll returns ErrQuit if a quit key is pending, without blocking.
// Other pending keys are discarded; automatic stepping uses it between generations.
func (s *Screen) Poll() error {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return errors.WithStack(ErrClosed)
			}
			if err := s.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// nextKey returns the next key that is not a quit key
func (s *Screen) nextKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return nil, errors.WithStack(ErrClosed)
			}
			if err := s.handle(ev); err != nil {
				return nil, err
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				return key, nil
			}
		}
	}
}

// handle redraws on resize and turns quit keys into ErrQuit
func (s *Screen) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return errors.WithStack(ErrQuit)
		}
	}
	return nil
}

func (s *Screen) drawGrid(g *model.Grid, cursor *model.Coordinate) {
	for y := range g.Height() {
		for x := range g.Width() {
			r, style := deadRune, deadStyle
			switch {
			case cursor != nil && cursor.X == x && cursor.Y == y:
				r, style = cursorRune, cursorStyle
			case g.Get(x, y):
				r, style = aliveRune, aliveStyle
			}
			for i := range cellColumns {
				s.screen.SetContent(x*cellColumns+i, gridTop+y, r, nil, style)
			}
		}
	}
}

func (s *Screen) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
