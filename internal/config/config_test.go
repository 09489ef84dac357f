package config

import (
	"os"
	"path/filepath"
	"testing"

	"gamedo/internal/engine"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 5 || cfg.Leveling.Curve != "quadratic" || cfg.Leveling.K != engine.DefaultQuadraticK {
		t.Fatalf("defaults=%+v", cfg)
	}
	if cfg.Leveling.OnTimeBonus != engine.DefaultOnTimeBonus {
		t.Fatalf("on_time_bonus=%g", cfg.Leveling.OnTimeBonus)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Fatalf("defaults invalid: %v", errs)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "page_size: 8\nleveling:\n  curve: geometric\n  base: 50\n  growth: 2\n  max_level: 20\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GAMEDO_PAGE_SIZE", "3")
	t.Setenv("GAMEDO_DB_PATH", filepath.Join(dir, "env.db"))
	t.Setenv("GAMEDO_LEVELING_ON_TIME_BONUS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 3 {
		t.Fatalf("page_size=%d, want env override 3", cfg.PageSize)
	}
	if cfg.DBPath != filepath.Join(dir, "env.db") {
		t.Fatalf("db_path=%q", cfg.DBPath)
	}
	if cfg.Leveling.Curve != "geometric" || cfg.Leveling.Base != 50 || cfg.Leveling.Growth != 2 || cfg.Leveling.MaxLevel != 20 {
		t.Fatalf("leveling=%+v", cfg.Leveling)
	}
	if cfg.Leveling.OnTimeBonus != 2 {
		t.Fatalf("on_time_bonus=%g, want env override 2", cfg.Leveling.OnTimeBonus)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Fatalf("log=%+v", cfg.Log)
	}

	curve, err := engine.NewCurve(cfg.CurveSettings())
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	if curve.MaxLevel() != 20 {
		t.Fatalf("MaxLevel=%d", curve.MaxLevel())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.DBPath = "/tmp/gamedo-test.db"
	cfg.PageSize = 7
	cfg.Leveling.OnTimeBonus = 1
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.PageSize != 7 || got.DBPath != "/tmp/gamedo-test.db" || got.Leveling.K != cfg.Leveling.K || got.Leveling.OnTimeBonus != 1 {
		t.Fatalf("round trip=%+v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DBPath = ""
	cfg.PageSize = 0
	cfg.Leveling.Curve = "cubic"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Leveling.OnTimeBonus = 0.5

	if errs := Validate(cfg); len(errs) != 6 {
		t.Fatalf("Validate returned %d errors, want 6: %v", len(errs), errs)
	}
}
