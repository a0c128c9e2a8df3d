package model

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
)

// Coordinate identifies one cell, X is the column and Y the row
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Bounds is the bounding box of the living cells of a grid, inclusive on both ends
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
	Empty                  bool
}

// Area returns the number of cells inside the bounding box
func (b Bounds) Area() int {
	if b.Empty {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Grid is an immutable generation snapshot.
// Every operation that changes a cell returns a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	boundsOnce sync.Once
	bounds     Bounds
}

// NewGrid creates an all dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &MalformedGridError{Width: width, Height: height, Row: -1, Reason: "dimensions must be positive"}
	}
	return newGrid(width, height), nil
}

// newGrid allocates without validation, callers guarantee positive dimensions
func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// FromRows builds a grid from a copy of rows, which must be non-empty and rectangular
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedGridError{Row: -1, Reason: "no rows"}
	}
	width := len(rows[0])
	if width == 0 {
		return nil, &MalformedGridError{Height: len(rows), Row: 0, Reason: "empty row"}
	}

	g := newGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, &MalformedGridError{
				Width:  width,
				Height: len(rows),
				Row:    y,
				Reason: fmt.Sprintf("has %d cells, want %d", len(row), width),
			}
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// ParseGrid reads one row per line. Live cells are written as 1, O, # or *,
// dead cells as 0, . or _. Blank lines and surrounding spaces are ignored.
func ParseGrid(text string) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '1', 'O', '#', '*':
				row = append(row, true)
			case '0', '.', '_':
				row = append(row, false)
			default:
				return nil, &MalformedGridError{
					Width:  len(line),
					Height: len(rows) + 1,
					Row:    len(rows),
					Reason: fmt.Sprintf("unexpected cell %q", r),
				}
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (x, y) lies inside the grid
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell, anything outside the grid is dead
func (g *Grid) Get(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.cells[y][x]
}

// Alive returns the state of the cell at c, which must lie inside the grid
func (g *Grid) Alive(c Coordinate) (bool, error) {
	if !g.Contains(c.X, c.Y) {
		return false, &InvalidCoordinateError{Coordinate: c, Width: g.width, Height: g.height}
	}
	return g.cells[c.Y][c.X], nil
}

// With returns a copy of the grid with one cell set to alive (true) or dead (false)
func (g *Grid) With(x, y int, alive bool) (*Grid, error) {
	if !g.Contains(x, y) {
		return nil, &InvalidCoordinateError{Coordinate: Coordinate{X: x, Y: y}, Width: g.width, Height: g.height}
	}
	next := g.clone()
	next.cells[y][x] = alive
	return next, nil
}

func (g *Grid) clone() *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.cells {
		copy(next.cells[y], g.cells[y])
	}
	return next
}

// Rows returns a deep copy of the cells, one slice per row
func (g *Grid) Rows() [][]bool {
	return g.clone().cells
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// BoundingBox returns the bounding box of living cells
func (g *Grid) BoundingBox() Bounds {
	g.boundsOnce.Do(g.calculateBounds)
	return g.bounds
}

func (g *Grid) calculateBounds() {
	b := Bounds{Empty: true}
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if b.Empty {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	g.bounds = b
}

// String renders the grid in the ParseGrid format using 1 and 0
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
