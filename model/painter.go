package model

import (
	"context"

	"github.com/pkg/errors"
)

// ChoiceReader blocks until the user picks a state for the selected cell
type ChoiceReader interface {
	ReadNextChoice(ctx context.Context) (alive bool, err error)
}

// PaintView shows the grid being painted with the cursor on the cell about to be chosen
type PaintView func(g *Grid, cursor Coordinate) error

// Paint asks for every cell of a width x height grid in row-major order.
// Each choice produces a new grid, the finished one is returned.
func Paint(ctx context.Context, width, height int, in ChoiceReader, show PaintView) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Paint] failed to create grid")
	}

	for y := range height {
		for x := range width {
			cursor := Coordinate{X: x, Y: y}
			if show != nil {
				if err = show(g, cursor); err != nil {
					return nil, errors.Wrapf(err, "[Paint] failed to show cell %s", cursor)
				}
			}

			alive, err := in.ReadNextChoice(ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "[Paint] failed to read cell %s", cursor)
			}

			if g, err = g.With(x, y, alive); err != nil {
				return nil, errors.Wrapf(err, "[Paint] failed to set cell %s", cursor)
			}
		}
	}
	return g, nil
}
