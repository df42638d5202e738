package confidence

import (
	"fmt"
	"math"
	"strings"
)

// ratioEpsilon guards the probability ratio against division by zero. A
// zero alternative probability still reports RatioInf so callers can render
// the infinity symbol instead of a huge finite number.
const ratioEpsilon = 1e-9

// sampleStep is the granularity the "spin more" estimate is rounded up to.
const sampleStep = 50

// Evaluate scores one goal grouping against its alternative.
//
// goalProb and altProb are posterior subset masses in [0,1]; sampleSize is
// the observed spin count; intervalWidthPct is the two-sided hit-rate
// interval width in percentage points. Identical inputs always produce an
// identical Evaluation.
func Evaluate(cfg GoalConfig, goalProb, altProb float64, sampleSize int, intervalWidthPct float64) Evaluation {
	goalPct := goalProb * 100.0
	diffPct := (goalProb - altProb) * 100.0
	ratioInf := altProb <= 0
	ratio := goalProb / math.Max(altProb, ratioEpsilon)

	// Overwhelming evidence waives the nominal sample floor: an extreme
	// enough signal is trusted even early in a session.
	overwhelming := diffPct >= cfg.DiffPct.High && ratio >= cfg.Ratio.High && goalPct >= cfg.GoalPct.Mid
	insufficient := (sampleSize < cfg.Samples.Warn || intervalWidthPct > cfg.Interval.Warn) && !overwhelming

	score := scoreSignal(cfg, goalPct, diffPct, ratio)
	score += intervalAdjustment(cfg, intervalWidthPct)
	score += sampleAdjustment(cfg, sampleSize)

	stars := starsFor(cfg, score, goalPct, diffPct, ratio, sampleSize, intervalWidthPct, insufficient)

	tier := tierForStars(stars)
	if insufficient {
		tier = TierInsufficient
	}

	return Evaluation{
		Stars:        Stars(stars),
		StarCount:    stars,
		Tier:         tier,
		Comment:      composeComment(cfg, tier, stars, diffPct, ratio, ratioInf, sampleSize),
		DiffPct:      diffPct,
		Ratio:        ratio,
		RatioInf:     ratioInf,
		Score:        score,
		Insufficient: insufficient,
	}
}

// scoreSignal accumulates the four evidence rules, each worth -2..+2.
func scoreSignal(cfg GoalConfig, goalPct, diffPct, ratio float64) int {
	score := 0

	switch {
	case goalPct >= cfg.GoalPct.High:
		score += 2
	case goalPct >= cfg.GoalPct.Mid:
		score++
	case goalPct <= cfg.GoalPct.VeryLow:
		score -= 2
	case goalPct <= cfg.GoalPct.Low:
		score--
	}

	switch {
	case diffPct >= cfg.DiffPct.High:
		score += 2
	case diffPct >= cfg.DiffPct.Mid:
		score++
	case diffPct <= -cfg.DiffPct.High:
		score -= 2
	case diffPct <= -cfg.DiffPct.Mid:
		score--
	}

	switch {
	case ratio >= cfg.Ratio.High:
		score += 2
	case ratio >= cfg.Ratio.Mid:
		score++
	case ratio <= 1.0/cfg.Ratio.High:
		score -= 2
	case ratio <= 1.0/cfg.Ratio.Mid:
		score--
	}

	// Combined rule: difference and ratio agreeing is stronger evidence
	// than either alone.
	switch {
	case diffPct >= cfg.DiffPct.High && ratio >= cfg.Ratio.High:
		score += 2
	case diffPct >= cfg.DiffPct.Mid && ratio >= cfg.Ratio.Mid:
		score++
	case diffPct <= -cfg.DiffPct.High && ratio <= 1.0/cfg.Ratio.High:
		score -= 2
	case diffPct <= -cfg.DiffPct.Mid && ratio <= 1.0/cfg.Ratio.Mid:
		score--
	}

	return score
}

func intervalAdjustment(cfg GoalConfig, widthPct float64) int {
	switch {
	case widthPct > cfg.Interval.Warn:
		return -1
	case widthPct < cfg.Interval.Good:
		return 1
	default:
		return 0
	}
}

func sampleAdjustment(cfg GoalConfig, sampleSize int) int {
	switch {
	case sampleSize < cfg.Samples.Warn:
		return -1
	case sampleSize >= cfg.Samples.Good:
		return 1
	default:
		return 0
	}
}

// starsFor maps the accumulated score to 1-5 stars. Insufficiency caps the
// rating at 2 regardless of score; the strict gate keeps 5 stars reserved
// for signals that clear every strict bar at once.
func starsFor(cfg GoalConfig, score int, goalPct, diffPct, ratio float64, sampleSize int, intervalWidthPct float64, insufficient bool) int {
	if insufficient {
		if goalPct >= cfg.GoalPct.Mid {
			return 2
		}
		return 1
	}

	if diffPct < cfg.DiffPct.Mid {
		score--
	}

	var stars int
	switch {
	case score >= 7:
		stars = 5
	case score >= 5:
		stars = 4
	case score >= 2:
		stars = 3
	case score >= -1:
		stars = 2
	default:
		stars = 1
	}

	if stars == 5 && !meetsStrict(cfg.Strict, goalPct, diffPct, ratio, sampleSize, intervalWidthPct) {
		stars = 4
	}
	return stars
}

func meetsStrict(s StrictBounds, goalPct, diffPct, ratio float64, sampleSize int, intervalWidthPct float64) bool {
	return goalPct >= s.GoalPct &&
		diffPct >= s.DiffPct &&
		ratio >= s.Ratio &&
		sampleSize >= s.Sample &&
		intervalWidthPct <= s.IntervalPct
}

// composeComment builds the assessment text: tiered base comment,
// situational remarks, the numeric parenthetical, and the next-tier sample
// estimate.
func composeComment(cfg GoalConfig, tier Tier, stars int, diffPct, ratio float64, ratioInf bool, sampleSize int) string {
	var b strings.Builder
	b.WriteString(cfg.Comments[tier])

	switch {
	case diffPct >= cfg.DiffPct.High && ratio >= cfg.Ratio.High:
		b.WriteString(cfg.Remarks.ClearAdvantage)
	case math.Abs(diffPct) < cfg.ClosenessPct:
		b.WriteString(cfg.Remarks.TooClose)
	case diffPct <= -cfg.DiffPct.High:
		b.WriteString(cfg.Remarks.Unfavorable)
	}

	ratioText := "∞"
	if !ratioInf {
		ratioText = fmt.Sprintf("%.1f×", ratio)
	}
	fmt.Fprintf(&b, " (差 %+.1fpt / 比 %s)", diffPct, ratioText)

	if stars < 5 {
		if need := cfg.StarMinSamples[stars+1]; need > sampleSize {
			b.WriteString(fmt.Sprintf(cfg.Remarks.MoreSamples, roundUpTo(need-sampleSize, sampleStep)))
		}
	}
	return b.String()
}

// roundUpTo rounds n up to the nearest positive multiple of step.
func roundUpTo(n, step int) int {
	if n <= 0 {
		return step
	}
	return ((n + step - 1) / step) * step
}
