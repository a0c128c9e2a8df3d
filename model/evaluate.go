package model

import "github.com/sheikhrachel/gol-painter/rules"

// mooreOffsets are the eight (dx, dy) steps to the cells around a cell
var mooreOffsets = [8]Coordinate{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// Get reports cells outside the grid as dead, so edges need no special case.
func (g *Grid) CountNeighbors(x, y int) (living int) {
	for _, d := range mooreOffsets {
		if g.Get(x+d.X, y+d.Y) {
			living++
		}
	}
	return
}

// nextState evaluates an in-range cell without validation
func (g *Grid) nextState(x, y int) bool {
	return rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
}

// Evaluate returns the state of the cell at c in the next generation
func Evaluate(g *Grid, c Coordinate) (bool, error) {
	if !g.Contains(c.X, c.Y) {
		return false, &InvalidCoordinateError{Coordinate: c, Width: g.width, Height: g.height}
	}
	return g.nextState(c.X, c.Y), nil
}
