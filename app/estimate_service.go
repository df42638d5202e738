package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"settei/domain/bayes"
	"settei/domain/confidence"
	"settei/domain/setting"
	"settei/internal"
	"settei/internal/errors"
	"settei/ports"
)

// EstimateService orchestrates one inference pass: normalize the prior,
// compute the posterior, derive the hit-rate interval, then rate every
// configured goal grouping. The service is stateless between calls; the
// goal configs are loaded once and read-only.
type EstimateService struct {
	configs []confidence.GoalConfig
	log     *internal.Logger
}

// NewEstimateService creates an estimate service over the given goal
// configurations.
func NewEstimateService(configs []confidence.GoalConfig, logger *internal.Logger) *EstimateService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &EstimateService{configs: configs, log: logger}
}

// GoalConfigs returns the configured groupings (for display surfaces).
func (s *EstimateService) GoalConfigs() []confidence.GoalConfig {
	return s.configs
}

// Estimate runs the full pipeline for one observation.
//
// The observation range check (0 <= hits <= spins) lives here, at the
// boundary: the domain functions below it only guard defensively.
func (s *EstimateService) Estimate(ctx context.Context, req ports.EstimateRequest) (*ports.EstimateResult, error) {
	if req.Spins < 0 {
		return nil, errors.InvalidInput("spins must be >= 0")
	}
	if req.Hits < 0 || req.Hits > req.Spins {
		return nil, errors.InvalidInput("hits must be within [0, spins]")
	}

	prior := bayes.Normalize(req.Prior)
	posterior := bayes.Posterior(req.Spins, req.Hits, req.Prior)
	topKey, topProb := posterior.Top()

	lo, hi := bayes.HitRateInterval(req.Spins, req.Hits, bayes.DefaultConfidence)
	widthPct := (hi - lo) * 100.0

	hitRatePct := 0.0
	if req.Spins > 0 {
		hitRatePct = float64(req.Hits) / float64(req.Spins) * 100.0
	}

	result := &ports.EstimateResult{
		Spins:            req.Spins,
		Hits:             req.Hits,
		HitRatePct:       hitRatePct,
		IntervalLowPct:   lo * 100.0,
		IntervalHighPct:  hi * 100.0,
		IntervalWidthPct: widthPct,
		Prior:            prior,
		Posterior:        posterior,
		TopKey:           topKey,
		TopProbPct:       topProb * 100.0,
		LowGroupPct:      posterior.SubsetSum(setting.LowGroup...) * 100.0,
		HighGroupPct:     posterior.SubsetSum(setting.HighGroup...) * 100.0,
		Grp124Pct:        posterior.SubsetSum(setting.Setting1, setting.Setting2, setting.Setting4) * 100.0,
		Grp56Pct:         posterior.SubsetSum(setting.Setting5, setting.Setting6) * 100.0,
		Rows:             settingRows(prior, posterior),
		Goals:            make([]ports.GoalResult, len(s.configs)),
	}

	// Each grouping evaluation is a pure function of its own inputs, so
	// they can run concurrently without ordering constraints.
	g, _ := errgroup.WithContext(ctx)
	for i, cfg := range s.configs {
		i, cfg := i, cfg
		g.Go(func() error {
			goalProb := posterior.SubsetSum(cfg.Grouping.Goal...)
			altProb := posterior.SubsetSum(cfg.Grouping.Alt...)
			result.Goals[i] = ports.GoalResult{
				Code:       cfg.Grouping.Code,
				Label:      cfg.Grouping.Label,
				GoalProb:   goalProb,
				AltProb:    altProb,
				Evaluation: confidence.Evaluate(cfg, goalProb, altProb, req.Spins, widthPct),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "goal evaluation failed")
	}

	s.log.Debug("estimate: n=%d k=%d top=%s (%.2f%%)", req.Spins, req.Hits, topKey, result.TopProbPct)
	return result, nil
}

func settingRows(prior, posterior setting.Distribution) []ports.SettingRow {
	rows := make([]ports.SettingRow, 0, setting.Count())
	for _, k := range setting.Keys() {
		rows = append(rows, ports.SettingRow{
			Key:          k,
			Denominator:  setting.Denominator(k),
			PriorPct:     prior[k] * 100.0,
			PosteriorPct: posterior[k] * 100.0,
		})
	}
	return rows
}
