package bayes

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the two-sided confidence level used for the hit-rate
// interval fed into the confidence evaluator.
const DefaultConfidence = 0.95

// HitRateInterval returns the two-sided Wilson score interval for the
// observed hit rate at the given confidence level. Bounds are probabilities
// in [0,1]. With no spins the interval is the whole unit range.
//
// Wilson is preferred over the Wald interval because the hit rates in play
// are small (2-5%) and Wald collapses badly near the boundary.
func HitRateInterval(spins, hits int, confidence float64) (lo, hi float64) {
	if spins <= 0 {
		return 0.0, 1.0
	}
	if hits < 0 {
		hits = 0
	}
	if hits > spins {
		hits = spins
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultConfidence
	}

	n := float64(spins)
	pHat := float64(hits) / n
	z := distuv.UnitNormal.Quantile(1.0 - (1.0-confidence)/2.0)
	z2 := z * z

	denom := 1.0 + z2/n
	center := (pHat + z2/(2.0*n)) / denom
	margin := z * math.Sqrt(pHat*(1.0-pHat)/n+z2/(4.0*n*n)) / denom

	lo = center - margin
	hi = center + margin
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	return lo, hi
}

// IntervalWidthPct returns the width of the 95% hit-rate interval in
// percentage points, the unit the confidence evaluator thresholds on.
func IntervalWidthPct(spins, hits int) float64 {
	lo, hi := HitRateInterval(spins, hits, DefaultConfidence)
	return (hi - lo) * 100.0
}
