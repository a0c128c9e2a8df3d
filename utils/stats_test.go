package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 100 {
		t.Errorf("after first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("generations per second %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Errorf("average population %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("zero duration changed the rate to %v", s.GenerationsPerSecond)
	}
	if s.Runtime() < 0 {
		t.Errorf("negative runtime")
	}
}
