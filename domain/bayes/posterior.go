// Package bayes implements the posterior engine: exact binomial likelihoods
// combined with a prior over the fixed setting table via Bayes' rule.
//
// Every function here is pure and total. Malformed inputs never error; they
// contribute zero weight or fall back to a defined distribution so callers
// always receive something displayable.
package bayes

import (
	"gonum.org/v1/gonum/stat/distuv"

	"settei/domain/setting"
)

// Likelihood returns the exact binomial probability mass P(hits | spins, p).
//
// Degenerate inputs (p outside (0,1), spins <= 0, hits outside [0, spins])
// return 0 so they contribute no weight to a posterior. The PMF itself is
// evaluated in log space via the log-gamma function; a naive factorial ratio
// overflows for spin counts in the thousands.
func Likelihood(spins, hits int, p float64) float64 {
	if p <= 0.0 || p >= 1.0 || spins <= 0 || hits < 0 || hits > spins {
		return 0.0
	}
	bin := distuv.Binomial{N: float64(spins), P: p}
	return bin.Prob(float64(hits))
}

// Normalize clamps the given weights to >= 0 and scales them to sum to 1
// over exactly the fixed setting key set. Missing keys count as weight 0 and
// unknown keys are ignored. If the clamped weights sum to zero the result is
// the uniform distribution, so the output is always a valid distribution.
func Normalize(prior map[setting.Key]float64) setting.Distribution {
	total := 0.0
	for _, k := range setting.Keys() {
		if w := prior[k]; w > 0 {
			total += w
		}
	}
	if total <= 0.0 {
		return setting.Uniform()
	}
	out := make(setting.Distribution, setting.Count())
	for _, k := range setting.Keys() {
		w := prior[k]
		if w < 0 {
			w = 0
		}
		out[k] = w / total
	}
	return out
}

// Posterior applies Bayes' rule to the observation (spins, hits) under the
// given prior weights. The prior is normalized first, so raw weights,
// percentages, or counts are all acceptable.
//
// Settings with zero prior mass skip the likelihood computation; they cannot
// gain mass regardless. If the marginal likelihood comes out zero (every
// likelihood degenerate, or underflow zeroed every term) the normalized
// prior is returned unchanged rather than an invalid distribution.
func Posterior(spins, hits int, prior map[setting.Key]float64) setting.Distribution {
	normalized := Normalize(prior)

	numerators := make(setting.Distribution, setting.Count())
	marginal := 0.0
	for _, k := range setting.Keys() {
		p, _ := setting.HitProb(k)
		w := normalized[k]
		if w <= 0 {
			numerators[k] = 0
			continue
		}
		num := Likelihood(spins, hits, p) * w
		numerators[k] = num
		marginal += num
	}

	if marginal <= 0.0 {
		return normalized
	}
	out := make(setting.Distribution, setting.Count())
	for _, k := range setting.Keys() {
		out[k] = numerators[k] / marginal
	}
	return out
}
