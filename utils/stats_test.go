package utils

import (
	"testing"
	"time"
)

func TestStatsFirstUpdateSeedsAverage(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 40, time.Second)

	if stats.TotalGenerations != 1 {
		t.Fatalf("generations = %d, expected 1", stats.TotalGenerations)
	}
	if stats.AveragePopulation != 40 {
		t.Fatalf("average population = %v, expected 40", stats.AveragePopulation)
	}
	if stats.GenerationsPerSecond != 1 {
		t.Fatalf("rate = %v, expected 1", stats.GenerationsPerSecond)
	}
}

func TestStatsMovingAverage(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 100, time.Second)
	stats.Update(2, 50, 500*time.Millisecond)

	if expected := 100*0.9 + 50*0.1; stats.AveragePopulation != expected {
		t.Fatalf("average population = %v, expected %v", stats.AveragePopulation, expected)
	}
	if stats.GenerationsPerSecond != 2 {
		t.Fatalf("rate = %v, expected 2", stats.GenerationsPerSecond)
	}
}

func TestStatsZeroDurationKeepsRate(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 10, time.Second)
	stats.Update(2, 10, 0)

	if stats.GenerationsPerSecond != 1 {
		t.Fatalf("rate = %v, expected unchanged 1", stats.GenerationsPerSecond)
	}
}
