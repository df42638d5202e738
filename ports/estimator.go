package ports

import (
	"context"

	"settei/domain/confidence"
	"settei/domain/setting"
)

// EstimateRequest defines one inference call: an observation plus optional
// prior weights. A nil or empty Prior means uniform.
type EstimateRequest struct {
	Spins int                     `json:"spins"`
	Hits  int                     `json:"hits"`
	Prior map[setting.Key]float64 `json:"prior,omitempty"`
}

// SettingRow is one line of the per-setting breakdown table.
type SettingRow struct {
	Key          setting.Key `json:"key"`
	Denominator  float64     `json:"denominator"`
	PriorPct     float64     `json:"prior_pct"`
	PosteriorPct float64     `json:"posterior_pct"`
}

// GoalResult pairs a goal grouping with its posterior masses and rating.
type GoalResult struct {
	Code       string                `json:"code"`
	Label      string                `json:"label"`
	GoalProb   float64               `json:"goal_prob"`
	AltProb    float64               `json:"alt_prob"`
	Evaluation confidence.Evaluation `json:"evaluation"`
}

// EstimateResult is the full outcome of one estimate: posterior, grouped
// readouts, per-setting rows, and one rating per goal grouping.
type EstimateResult struct {
	Spins int `json:"spins"`
	Hits  int `json:"hits"`

	HitRatePct       float64 `json:"hit_rate_pct"`
	IntervalLowPct   float64 `json:"interval_low_pct"`
	IntervalHighPct  float64 `json:"interval_high_pct"`
	IntervalWidthPct float64 `json:"interval_width_pct"`

	Prior     setting.Distribution `json:"prior"`
	Posterior setting.Distribution `json:"posterior"`

	TopKey     setting.Key `json:"top_key"`
	TopProbPct float64     `json:"top_prob_pct"`

	LowGroupPct  float64 `json:"low_group_pct"`
	HighGroupPct float64 `json:"high_group_pct"`
	Grp124Pct    float64 `json:"grp124_pct"`
	Grp56Pct     float64 `json:"grp56_pct"`

	Rows  []SettingRow `json:"rows"`
	Goals []GoalResult `json:"goals"`
}

// Estimator runs the full posterior + confidence pipeline.
type Estimator interface {
	Estimate(ctx context.Context, req EstimateRequest) (*EstimateResult, error)
}
