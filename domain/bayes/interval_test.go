package bayes

import (
	"math"
	"testing"
)

func TestHitRateInterval_ContainsObservedRate(t *testing.T) {
	cases := []struct {
		spins int
		hits  int
	}{
		{1000, 44}, {1000, 20}, {120, 4}, {5000, 160},
	}
	for _, tc := range cases {
		lo, hi := HitRateInterval(tc.spins, tc.hits, 0.95)
		pHat := float64(tc.hits) / float64(tc.spins)
		if lo > pHat || hi < pHat {
			t.Errorf("(%d,%d): interval [%v,%v] excludes observed rate %v", tc.spins, tc.hits, lo, hi, pHat)
		}
		if lo < 0 || hi > 1 {
			t.Errorf("(%d,%d): interval [%v,%v] leaves the unit range", tc.spins, tc.hits, lo, hi)
		}
	}
}

func TestHitRateInterval_NoSpins(t *testing.T) {
	lo, hi := HitRateInterval(0, 0, 0.95)
	if lo != 0 || hi != 1 {
		t.Errorf("empty observation should span the unit range, got [%v,%v]", lo, hi)
	}
}

func TestHitRateInterval_ClampsHits(t *testing.T) {
	lo1, hi1 := HitRateInterval(100, 150, 0.95)
	lo2, hi2 := HitRateInterval(100, 100, 0.95)
	if lo1 != lo2 || hi1 != hi2 {
		t.Errorf("hits above spins should clamp: [%v,%v] vs [%v,%v]", lo1, hi1, lo2, hi2)
	}
}

func TestIntervalWidthPct_ShrinksWithSampleSize(t *testing.T) {
	prev := math.Inf(1)
	for _, spins := range []int{100, 400, 1600, 6400} {
		hits := spins * 4 / 100 // keep the rate at 4%
		width := IntervalWidthPct(spins, hits)
		if width <= 0 {
			t.Fatalf("n=%d: width = %v, want > 0", spins, width)
		}
		if width >= prev {
			t.Errorf("n=%d: width %v did not shrink from %v", spins, width, prev)
		}
		prev = width
	}
}

func TestHitRateInterval_BadConfidenceFallsBack(t *testing.T) {
	lo1, hi1 := HitRateInterval(1000, 44, 0)
	lo2, hi2 := HitRateInterval(1000, 44, DefaultConfidence)
	if lo1 != lo2 || hi1 != hi2 {
		t.Errorf("invalid confidence should fall back to default: [%v,%v] vs [%v,%v]", lo1, hi1, lo2, hi2)
	}
}
