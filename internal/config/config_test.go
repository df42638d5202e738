package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PPROF_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Profiling.Enabled {
		t.Error("profiling should default off")
	}
	if len(cfg.Goals) != 2 {
		t.Fatalf("got %d goal groupings, want 2", len(cfg.Goals))
	}
	if cfg.Goals[0].Grouping.Code != "456" || cfg.Goals[1].Grouping.Code != "56" {
		t.Errorf("unexpected grouping order: %s, %s", cfg.Goals[0].Grouping.Code, cfg.Goals[1].Grouping.Code)
	}
}

func TestLoad_GoalOverrides(t *testing.T) {
	t.Setenv("GOAL456_MIN_SAMPLE_WARN", "200")
	t.Setenv("GOAL456_MIN_SAMPLE_GOOD", "300")
	t.Setenv("GOAL56_DIFF_HIGH", "12.5")
	t.Setenv("GOAL456_STRICT_CI", "0.9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	g456 := cfg.Goals[0]
	if g456.Samples.Warn != 200 || g456.Samples.Good != 300 {
		t.Errorf("sample bounds = %+v, want 200/300", g456.Samples)
	}
	if g456.Strict.IntervalPct != 0.9 {
		t.Errorf("strict CI = %v, want 0.9", g456.Strict.IntervalPct)
	}
	if cfg.Goals[1].DiffPct.High != 12.5 {
		t.Errorf("56 diff high = %v, want 12.5", cfg.Goals[1].DiffPct.High)
	}
}

func TestLoad_RejectsInvertedSampleBounds(t *testing.T) {
	t.Setenv("GOAL456_MIN_SAMPLE_GOOD", "50") // below the warn floor of 120

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for good < warn")
	}
}

func TestLoad_IgnoresMalformedOverrides(t *testing.T) {
	t.Setenv("GOAL456_MIN_SAMPLE_WARN", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Goals[0].Samples.Warn != 120 {
		t.Errorf("malformed override should keep default, got %d", cfg.Goals[0].Samples.Warn)
	}
}
