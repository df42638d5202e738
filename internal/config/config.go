package config

import (
	"os"
	"strconv"

	"settei/domain/confidence"
	"settei/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Profiling ProfilingConfig
	Goals     []confidence.GoalConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
		Goals: loadGoalConfigs(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// loadGoalConfigs starts from the canonical threshold bundles and applies
// per-grouping environment overrides, e.g. GOAL456_MIN_SAMPLE_WARN=200 or
// GOAL56_CI_WARN=2.0. The exact numbers are tuning, not contract.
func loadGoalConfigs() []confidence.GoalConfig {
	goals := confidence.DefaultGoalConfigs()
	for i := range goals {
		applyGoalOverrides(&goals[i], "GOAL"+goals[i].Grouping.Code+"_")
	}
	return goals
}

func applyGoalOverrides(cfg *confidence.GoalConfig, prefix string) {
	overrideInt(prefix+"MIN_SAMPLE_WARN", &cfg.Samples.Warn)
	overrideInt(prefix+"MIN_SAMPLE_GOOD", &cfg.Samples.Good)
	overrideFloat(prefix+"CI_WARN", &cfg.Interval.Warn)
	overrideFloat(prefix+"CI_GOOD", &cfg.Interval.Good)
	overrideFloat(prefix+"GOAL_HIGH", &cfg.GoalPct.High)
	overrideFloat(prefix+"GOAL_MID", &cfg.GoalPct.Mid)
	overrideFloat(prefix+"GOAL_LOW", &cfg.GoalPct.Low)
	overrideFloat(prefix+"GOAL_VERY_LOW", &cfg.GoalPct.VeryLow)
	overrideFloat(prefix+"DIFF_HIGH", &cfg.DiffPct.High)
	overrideFloat(prefix+"DIFF_MID", &cfg.DiffPct.Mid)
	overrideFloat(prefix+"RATIO_HIGH", &cfg.Ratio.High)
	overrideFloat(prefix+"RATIO_MID", &cfg.Ratio.Mid)
	overrideFloat(prefix+"CLOSENESS", &cfg.ClosenessPct)
	overrideFloat(prefix+"STRICT_GOAL", &cfg.Strict.GoalPct)
	overrideFloat(prefix+"STRICT_DIFF", &cfg.Strict.DiffPct)
	overrideFloat(prefix+"STRICT_RATIO", &cfg.Strict.Ratio)
	overrideInt(prefix+"STRICT_SAMPLE", &cfg.Strict.Sample)
	overrideFloat(prefix+"STRICT_CI", &cfg.Strict.IntervalPct)
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if len(config.Goals) == 0 {
		return errors.ConfigInvalid("at least one goal grouping is required")
	}
	for _, g := range config.Goals {
		if g.Samples.Warn < 0 || g.Samples.Good < g.Samples.Warn {
			return errors.ConfigInvalid("goal " + g.Grouping.Code + ": sample bounds must satisfy 0 <= warn <= good")
		}
		if g.Interval.Good > g.Interval.Warn {
			return errors.ConfigInvalid("goal " + g.Grouping.Code + ": interval good threshold must not exceed warn")
		}
		if g.DiffPct.Mid > g.DiffPct.High || g.Ratio.Mid > g.Ratio.High {
			return errors.ConfigInvalid("goal " + g.Grouping.Code + ": mid thresholds must not exceed high")
		}
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func overrideInt(key string, target *int) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideFloat(key string, target *float64) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}
