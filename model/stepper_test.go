package model

import (
	"fmt"
	"math/rand"
	"testing"
)

func mustParse(t testing.TB, text string) *Grid {
	t.Helper()
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid(%q): %v", text, err)
	}
	return g
}

func randomGrid(rng *rand.Rand, width, height int, density float64) *Grid {
	g := newGrid(width, height)
	g.randomize(rng, density)
	return g
}

var strategies = map[string]Stepper{
	StrategySequential: StepperFunc(Advance),
	StrategyBounded:    StepperFunc(AdvanceBounded),
	"parallel-1":       StepperFunc(func(g *Grid) *Grid { return AdvanceParallel(g, 1) }),
	"parallel-3":       StepperFunc(func(g *Grid) *Grid { return AdvanceParallel(g, 3) }),
	"parallel-cpu":     StepperFunc(func(g *Grid) *Grid { return AdvanceParallel(g, 0) }),
	"parallel-many":    StepperFunc(func(g *Grid) *Grid { return AdvanceParallel(g, 64) }),
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single live cell dies", in: "1", want: "0"},
		{name: "single dead cell stays dead", in: "0", want: "0"},
		{name: "underpopulation", in: "000\n010\n000", want: "000\n000\n000"},
		{name: "block still life", in: "110\n110\n000", want: "110\n110\n000"},
		{name: "blinker turns vertical", in: "000\n111\n000", want: "010\n010\n010"},
		{name: "blinker turns horizontal", in: "010\n010\n010", want: "000\n111\n000"},
		{name: "overpopulation", in: "111\n111\n111", want: "101\n000\n101"},
		{name: "row of two dies", in: "11", want: "00"},
		{name: "birth at the edge", in: "11\n10", want: "11\n11"},
		{name: "wide grid without wraparound", in: "10001", want: "00000"},
	}

	for name, stepper := range strategies {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s", name, tt.name), func(t *testing.T) {
				in := mustParse(t, tt.in)
				got := stepper.Advance(in)
				if got.String() != tt.want {
					t.Errorf("got\n%s\nwant\n%s", got, tt.want)
				}
			})
		}
	}
}

func TestAdvanceBlinkerPeriod(t *testing.T) {
	start := mustParse(t, "00000\n00000\n01110\n00000\n00000")
	g := start
	for i := range 10 {
		g = Advance(g)
		if i%2 == 1 && !g.Equal(start) {
			t.Fatalf("generation %d: blinker did not return to its start\n%s", i+1, g)
		}
		if i%2 == 0 && g.Equal(start) {
			t.Fatalf("generation %d: blinker did not oscillate", i+1)
		}
	}
}

func TestAdvanceGliderMoves(t *testing.T) {
	g := mustParse(t, `
		010000
		001000
		111000
		000000
		000000
		000000`)
	want := mustParse(t, `
		000000
		001000
		000100
		011100
		000000
		000000`)

	for range 4 {
		g = Advance(g)
	}
	if !g.Equal(want) {
		t.Errorf("glider after 4 generations:\n%s\nwant\n%s", g, want)
	}
}

func TestAdvanceDoesNotMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, stepper := range strategies {
		t.Run(name, func(t *testing.T) {
			g := randomGrid(rng, 17, 11, 0.4)
			before := g.String()

			next := stepper.Advance(g)

			if g.String() != before {
				t.Errorf("input changed by Advance")
			}
			if g.Width() != 17 || g.Height() != 11 {
				t.Errorf("input dimensions changed to %dx%d", g.Width(), g.Height())
			}
			if next == g {
				t.Errorf("Advance returned its input")
			}
		})
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := randomGrid(rng, 30, 20, 0.3)
	for name, stepper := range strategies {
		t.Run(name, func(t *testing.T) {
			first := stepper.Advance(g)
			second := stepper.Advance(g)
			if !first.Equal(second) {
				t.Errorf("two calls disagree:\n%s\n\n%s", first, second)
			}
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 9}, {32, 32}, {63, 17}}

	for _, size := range sizes {
		for _, density := range []float64{0, 0.1, 0.35, 0.8, 1} {
			g := randomGrid(rng, size[0], size[1], density)
			want := Advance(g)
			if want.Width() != size[0] || want.Height() != size[1] {
				t.Fatalf("%dx%d: dimensions changed to %dx%d", size[0], size[1], want.Width(), want.Height())
			}
			for name, stepper := range strategies {
				if got := stepper.Advance(g); !got.Equal(want) {
					t.Errorf("%s on %dx%d density %v:\n%s\nwant\n%s", name, size[0], size[1], density, got, want)
				}
			}
		}
	}
}

func TestStepperFor(t *testing.T) {
	g := mustParse(t, "000\n111\n000")
	for _, strategy := range []string{"", StrategySequential, StrategyParallel, StrategyBounded} {
		stepper, err := StepperFor(strategy, 2)
		if err != nil {
			t.Fatalf("StepperFor(%q): %v", strategy, err)
		}
		if got := stepper.Advance(g).String(); got != "010\n010\n010" {
			t.Errorf("StepperFor(%q) advanced to\n%s", strategy, got)
		}
	}

	if _, err := StepperFor("toroidal", 0); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
}

func BenchmarkAdvance(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	for _, size := range []int{16, 64, 256} {
		g := randomGrid(rng, size, size, 0.3)
		for name, stepper := range strategies {
			b.Run(fmt.Sprintf("size=%dx%d_%s", size, size, name), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					stepper.Advance(g)
				}
			})
		}
	}
}
