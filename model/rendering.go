package model

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Renderer draws one generation
type Renderer interface {
	Render(g *Grid, generation int, status string) error
}

// Pacer blocks until the next generation should be computed
type Pacer interface {
	Wait(ctx context.Context) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer writes to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// out is where frames go, the zero value writes to stdout
func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Render prints the generation header, the status line and the grid
func (r *TerminalRenderer) Render(g *Grid, generation int, status string) error {
	w := bufio.NewWriter(r.out())

	fmt.Fprintf(w, "Generation: %d\n", generation)
	if status != "" {
		fmt.Fprintln(w, status)
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}

	return errors.Wrap(w.Flush(), "[TerminalRenderer.Render] failed to write grid")
}

// Clear clears the terminal screen, a failure is reported on the same output
func (r *TerminalRenderer) Clear() {
	out := r.out()
	cmd := exec.Command(clearCmd)
	cmd.Stdout = out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(out, "Error clearing terminal:", err)
	}
}

// TickerPacer steps automatically once per frame
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer paces generations every frame, frame must be positive
func NewTickerPacer(frame time.Duration) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(frame)}
}

// Wait blocks until the next tick
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// LinePacer steps manually each time a line (ENTER) is read
type LinePacer struct {
	lines    chan error
	done     chan struct{}
	stopOnce sync.Once
}

// NewLinePacer reads lines from in until it fails, reaches EOF or the pacer is stopped.
// A read already in progress when Stop is called ends the reader once it returns.
func NewLinePacer(in io.Reader) *LinePacer {
	p := &LinePacer{
		lines: make(chan error),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(p.lines)
		r := bufio.NewReader(in)
		for {
			select {
			case <-p.done:
				return
			default:
			}

			_, err := r.ReadString('\n')
			select {
			case p.lines <- err:
			case <-p.done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return p
}

// Stop releases the reader goroutine, Wait fails afterwards
func (p *LinePacer) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

// Wait blocks until the user presses ENTER
func (p *LinePacer) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return errors.WithStack(io.ErrClosedPipe)
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return errors.WithStack(io.ErrClosedPipe)
	case err, ok := <-p.lines:
		if !ok {
			return errors.WithStack(io.EOF)
		}
		return errors.Wrap(err, "[LinePacer.Wait] failed to read input")
	}
}
