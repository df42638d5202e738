// Package confidence turns grouped posterior mass into a 1-5 star rating
// and an assessment comment, driven entirely by per-grouping threshold
// tables. The evaluator never errors: every input is treated permissively
// and degrades to a conservative rating.
package confidence

import "settei/domain/setting"

// GoalGrouping names a binary judgment: the probability that the machine's
// setting is in Goal rather than Alt. Goal and Alt are disjoint subsets of
// the setting table.
type GoalGrouping struct {
	Code  string        `json:"code"`
	Label string        `json:"label"`
	Goal  []setting.Key `json:"goal"`
	Alt   []setting.Key `json:"alt"`
}

// Tier is the qualitative confidence level a rating maps to.
type Tier string

const (
	TierInsufficient Tier = "insufficient"
	TierVeryLow      Tier = "very_low"
	TierLow          Tier = "low"
	TierMid          Tier = "mid"
	TierHigh         Tier = "high"
	TierVeryHigh     Tier = "very_high"
)

// tierForStars maps a star count to its comment tier.
func tierForStars(stars int) Tier {
	switch {
	case stars >= 5:
		return TierVeryHigh
	case stars == 4:
		return TierHigh
	case stars == 3:
		return TierMid
	case stars == 2:
		return TierLow
	default:
		return TierVeryLow
	}
}

// SampleBounds holds the warning and good sample-size floors (in spins).
type SampleBounds struct {
	Warn int `json:"warn"`
	Good int `json:"good"`
}

// IntervalBounds holds hit-rate interval width thresholds in percentage
// points. Widths above Warn count against the rating; widths below Good
// count toward it.
type IntervalBounds struct {
	Warn float64 `json:"warn"`
	Good float64 `json:"good"`
}

// GoalBands holds goal-probability thresholds in percent.
type GoalBands struct {
	High    float64 `json:"high"`
	Mid     float64 `json:"mid"`
	Low     float64 `json:"low"`
	VeryLow float64 `json:"very_low"`
}

// Band holds a high/mid threshold pair. For the difference rule the
// negative mirror images apply symmetrically; for the ratio rule the
// reciprocals do.
type Band struct {
	High float64 `json:"high"`
	Mid  float64 `json:"mid"`
}

// StrictBounds is the extra bar a nominal five-star result must clear.
// Five stars are reserved for the strongest, best-supported signal.
type StrictBounds struct {
	GoalPct     float64 `json:"goal_pct"`
	DiffPct     float64 `json:"diff_pct"`
	Ratio       float64 `json:"ratio"`
	Sample      int     `json:"sample"`
	IntervalPct float64 `json:"interval_pct"`
}

// Remarks are the situational comment fragments appended after the tiered
// base comment. MoreSamples is a fmt string taking the additional spin
// count as %d.
type Remarks struct {
	ClearAdvantage string `json:"clear_advantage"`
	TooClose       string `json:"too_close"`
	Unfavorable    string `json:"unfavorable"`
	MoreSamples    string `json:"more_samples"`
}

// GoalConfig is the immutable per-grouping parameter bundle. Loaded once at
// process start (optionally adjusted from the environment) and read-only
// afterwards.
type GoalConfig struct {
	Grouping GoalGrouping `json:"grouping"`

	Samples  SampleBounds   `json:"samples"`
	Interval IntervalBounds `json:"interval"`

	GoalPct GoalBands `json:"goal_pct"`
	DiffPct Band      `json:"diff_pct"`
	Ratio   Band      `json:"ratio"`

	// ClosenessPct is the absolute difference band (in points) inside which
	// the judgment counts as too close to call.
	ClosenessPct float64 `json:"closeness_pct"`

	Strict StrictBounds `json:"strict"`

	// StarMinSamples holds, per star level 1..5, the spin count that level
	// normally requires. Used to estimate the additional spins needed for
	// the next tier.
	StarMinSamples [6]int `json:"star_min_samples"`

	Comments map[Tier]string `json:"comments"`
	Remarks  Remarks         `json:"remarks"`
}

// Evaluation is the transient result of one confidence evaluation, consumed
// immediately by the presentation layer.
type Evaluation struct {
	Stars        string  `json:"stars"`
	StarCount    int     `json:"star_count"`
	Tier         Tier    `json:"tier"`
	Comment      string  `json:"comment"`
	DiffPct      float64 `json:"diff_pct"`
	Ratio        float64 `json:"ratio"`
	RatioInf     bool    `json:"ratio_infinite"`
	Score        int     `json:"score"`
	Insufficient bool    `json:"insufficient"`
}
