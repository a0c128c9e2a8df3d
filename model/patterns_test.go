package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-painter/utils"
)

func seedConfig(pattern string, width, height int) utils.Config {
	config := utils.DefaultConfig()
	config.Pattern = pattern
	config.Width = width
	config.Height = height
	config.Seed = 42
	return config
}

func TestSeedFixedPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: PatternBlank, want: "00000\n00000\n00000\n00000\n00000"},
		{pattern: PatternGlider, want: "00000\n00100\n00010\n01110\n00000"},
		{pattern: PatternBlinker, want: "00000\n00000\n01110\n00000\n00000"},
		{pattern: PatternBlock, want: "00000\n01100\n01100\n00000\n00000"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			g, err := Seed(seedConfig(tt.pattern, 5, 5))
			if err != nil {
				t.Fatalf("Seed: %v", err)
			}
			if g.String() != tt.want {
				t.Errorf("got\n%s\nwant\n%s", g, tt.want)
			}
		})
	}
}

func TestSeedClipsAtTheEdges(t *testing.T) {
	g, err := Seed(seedConfig(PatternGlider, 2, 2))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if g.String() != "00\n00" {
		t.Errorf("got\n%s", g)
	}
}

func TestSeedRandom(t *testing.T) {
	config := seedConfig(PatternRandom, 40, 30)
	a, err := Seed(config)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	b, _ := Seed(config)
	if !a.Equal(b) {
		t.Errorf("same seed produced different grids")
	}

	config.RandomDensity = 0
	if g, _ := Seed(config); g.CountLivingCells() != 0 {
		t.Errorf("density 0 produced %d living cells", g.CountLivingCells())
	}
	config.RandomDensity = 1
	if g, _ := Seed(config); g.CountLivingCells() != 40*30 {
		t.Errorf("density 1 produced %d living cells", g.CountLivingCells())
	}
}

func TestSeedNoise(t *testing.T) {
	config := seedConfig(PatternNoise, 40, 30)
	a, err := Seed(config)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	b, _ := Seed(config)
	if !a.Equal(b) {
		t.Errorf("same seed produced different grids")
	}

	config.NoiseThreshold = 2 // noise never exceeds 2
	if g, _ := Seed(config); g.CountLivingCells() != 0 {
		t.Errorf("threshold above the noise range produced %d living cells", g.CountLivingCells())
	}
}

func TestSeedShowcase(t *testing.T) {
	config := seedConfig(PatternShowcase, 40, 20)
	config.RandomDensity = 0
	g, err := Seed(config)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// two gliders and two blinkers
	if n := g.CountLivingCells(); n != 16 {
		t.Errorf("got %d living cells, want 16", n)
	}
}

func TestSeedErrors(t *testing.T) {
	if _, err := Seed(seedConfig("spaceship", 5, 5)); err == nil {
		t.Errorf("expected error for unknown pattern")
	}
	if _, err := Seed(seedConfig(PatternPaint, 5, 5)); err == nil {
		t.Errorf("expected error for the paint pattern")
	}
	if _, err := Seed(seedConfig(PatternBlank, 0, 5)); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("got %v, want ErrMalformedGrid", err)
	}
}
