package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
store:
  backend: memory
  seed_demo_fleet: true
simulator:
  period_seconds: 10
metrics:
  prometheus_enabled: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != "memory" || !cfg.Store.SeedDemoFleet {
		t.Fatalf("store cfg %+v", cfg.Store)
	}
	if cfg.Simulator.PeriodSeconds != 10 {
		t.Fatalf("period = %d", cfg.Simulator.PeriodSeconds)
	}
	if !cfg.Metrics.PrometheusEnabled || cfg.Metrics.PrometheusPort != "2112" {
		t.Fatalf("metrics cfg %+v", cfg.Metrics)
	}
}

func TestLoadJSONWithDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"store":{"backend":"redis","redis_addr":"localhost:6379"}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulator.PeriodSeconds != 5 {
		t.Fatalf("default period = %d, want 5", cfg.Simulator.PeriodSeconds)
	}
	if cfg.Store.Backend != "redis" {
		t.Fatalf("backend = %s", cfg.Store.Backend)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", "store:\n  backend: memory\n")
	os.Setenv("FLEET_SIMULATOR__PERIOD_SECONDS", "30")
	defer os.Unsetenv("FLEET_SIMULATOR__PERIOD_SECONDS")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulator.PeriodSeconds != 30 {
		t.Fatalf("env override ignored, period = %d", cfg.Simulator.PeriodSeconds)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "config.toml", "x = 1")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadRejectsInvalidStore(t *testing.T) {
	path := writeFile(t, "config.yaml", "store:\n  backend: postgres\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for missing postgres_url")
	}
}
