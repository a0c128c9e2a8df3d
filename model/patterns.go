package model

import (
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-painter/utils"
)

// Names of the initial patterns understood by Seed
const (
	PatternBlank    = "blank"
	PatternGlider   = "glider"
	PatternBlinker  = "blinker"
	PatternBlock    = "block"
	PatternRandom   = "random"
	PatternNoise    = "noise"
	PatternShowcase = "showcase"
	// PatternPaint is painted cell by cell by the user, Seed does not handle it
	PatternPaint = "paint"
)

// Perlin noise parameters, see perlin.NewPerlin
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

var (
	gliderCells = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinkerCells = [][]bool{
		{true, true, true},
	}
	blockCells = [][]bool{
		{true, true},
		{true, true},
	}
)

// Seed builds the initial grid for config.Pattern
func Seed(config utils.Config) (*Grid, error) {
	g, err := NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrapf(err, "[Seed] pattern %q", config.Pattern)
	}

	switch config.Pattern {
	case PatternBlank:
	case PatternGlider:
		g.stamp(gliderCells, 1, 1)
	case PatternBlinker:
		g.stamp(blinkerCells, g.width/2-1, g.height/2)
	case PatternBlock:
		g.stamp(blockCells, g.width/2-1, g.height/2-1)
	case PatternRandom:
		g.randomize(newRand(config.Seed), config.RandomDensity)
	case PatternNoise:
		g.noise(config.Seed, config.NoiseScale, config.NoiseThreshold)
	case PatternShowcase:
		g.showcase(newRand(config.Seed), config.RandomDensity)
	case PatternPaint:
		return nil, errors.Errorf("[Seed] pattern %q must be painted interactively", config.Pattern)
	default:
		return nil, errors.Errorf("[Seed] unknown pattern: %q", config.Pattern)
	}
	return g, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// The helpers below write in place and are only used on grids that have not been handed out yet

// stamp copies pattern into the grid at (startX, startY), clipping at the edges
func (g *Grid) stamp(pattern [][]bool, startX, startY int) {
	for y, row := range pattern {
		for x, alive := range row {
			if g.Contains(startX+x, startY+y) && alive {
				g.cells[startY+y][startX+x] = true
			}
		}
	}
}

// randomize sets each cell alive with probability density
func (g *Grid) randomize(rng *rand.Rand, density float64) {
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				g.cells[y][x] = true
			}
		}
	}
}

// noise sets cells alive where 2D Perlin noise exceeds threshold, which gives clustered blobs
func (g *Grid) noise(seed int64, scale, threshold float64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y := range g.height {
		for x := range g.width {
			if p.Noise2D(float64(x)*scale, float64(y)*scale) > threshold {
				g.cells[y][x] = true
			}
		}
	}
}

// showcase adds gliders and blinkers to a sprinkle of random life
func (g *Grid) showcase(rng *rand.Rand, density float64) {
	if g.width >= 10 && g.height >= 10 {
		g.stamp(gliderCells, 5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.stamp(gliderCells, g.width-8, 5)
		}

		g.stamp(blinkerCells, g.width/4, g.height/4)
		if g.width >= 30 {
			g.stamp(blinkerCells, 3*g.width/4, 3*g.height/4)
		}
	}
	g.randomize(rng, density)
}
