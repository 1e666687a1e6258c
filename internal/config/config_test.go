package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Store.Path == "" {
		t.Fatalf("expected a default store path")
	}
	if cfg.SelfPlay.Games != 100 || cfg.SelfPlay.Workers != 4 || cfg.SelfPlay.MaxPlies != 400 || !cfg.SelfPlay.Verify {
		t.Fatalf("unexpected selfplay defaults %+v", cfg.SelfPlay)
	}
	if cfg.Perft.Depth != 2 {
		t.Fatalf("unexpected perft depth %d", cfg.Perft.Depth)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
store:
  path: /tmp/games.db
selfplay:
  games: 10
  workers: 2
  seed: 42
  verify: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Store.Path != "/tmp/games.db" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}
	if cfg.SelfPlay.Games != 10 || cfg.SelfPlay.Workers != 2 || cfg.SelfPlay.Seed != 42 || cfg.SelfPlay.Verify {
		t.Errorf("selfplay = %+v", cfg.SelfPlay)
	}
	// 未设置的字段使用默认值
	if cfg.SelfPlay.MaxPlies != 400 || cfg.Perft.Depth != 2 {
		t.Errorf("defaults not applied: %+v %+v", cfg.SelfPlay, cfg.Perft)
	}
	if !cfg.Log.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("debug logger should be enabled at debug level")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "log: [unclosed")); err == nil {
		t.Errorf("expected parse error")
	}
	if _, err := Load(writeConfig(t, "log:\n  level: loud\n")); err == nil {
		t.Errorf("expected error for unknown level")
	}
	if _, err := Load(writeConfig(t, "log:\n  format: xml\n")); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Perft.Depth != 2 {
		t.Fatalf("LoadOrDefault(\"\") = %+v, %v", cfg, err)
	}
}
