package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.SourceMode != "fixture" {
		t.Fatalf("expected fixture source mode, got %s", cfg.SourceMode)
	}
	if cfg.Results.TTL != 3*time.Minute {
		t.Fatalf("expected 3m results TTL, got %s", cfg.Results.TTL)
	}
	if cfg.Schedule.TTL != 2*time.Minute {
		t.Fatalf("expected 2m schedule TTL, got %s", cfg.Schedule.TTL)
	}
	if cfg.Schedule.Timezone != "Asia/Shanghai" {
		t.Fatalf("expected Asia/Shanghai timezone, got %s", cfg.Schedule.Timezone)
	}
	if cfg.Reconcile.Threshold != 0.6 {
		t.Fatalf("expected 0.6 threshold, got %f", cfg.Reconcile.Threshold)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("SOURCE_MODE", "live")
	t.Setenv("RESULTS_URL", "http://results.example/live")
	t.Setenv("RESULTS_TTL", "90s")
	t.Setenv("SCHEDULE_TTL", "45s")
	t.Setenv("MATCH_THRESHOLD", "0.75")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.Port != "8088" || cfg.SourceMode != "live" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Results.URL != "http://results.example/live" {
		t.Fatalf("unexpected results url %s", cfg.Results.URL)
	}
	if cfg.Results.TTL != 90*time.Second || cfg.Schedule.TTL != 45*time.Second {
		t.Fatalf("unexpected TTLs %s / %s", cfg.Results.TTL, cfg.Schedule.TTL)
	}
	if cfg.Reconcile.Threshold != 0.75 {
		t.Fatalf("unexpected threshold %f", cfg.Reconcile.Threshold)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestEnvHelperFallbacks(t *testing.T) {
	t.Setenv("RESULTS_TTL", "not-a-duration")
	t.Setenv("MATCH_THRESHOLD", "-1")

	cfg := Load()
	if cfg.Results.TTL != 3*time.Minute {
		t.Fatalf("expected fallback TTL, got %s", cfg.Results.TTL)
	}
	if cfg.Reconcile.Threshold != 0.6 {
		t.Fatalf("expected fallback threshold, got %f", cfg.Reconcile.Threshold)
	}
}
