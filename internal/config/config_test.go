package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "HELPDOC_GUIDE_DIR", "HELPDOC_KEYMAP", "HELPDOC_APP_NAME",
		"HELPDOC_APP_VERSION", "HELPDOC_MAINTAINER", "HELPDOC_CREDITS",
		"HELPDOC_LINK_PREFIX", "HELPDOC_STATS_WINDOW", "HELPDOC_MAX_UPLOAD_BYTES", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GuideDir != "userguide" {
		t.Errorf("GuideDir = %q", cfg.GuideDir)
	}
	if cfg.LinkPrefix != "help:" {
		t.Errorf("LinkPrefix = %q", cfg.LinkPrefix)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("StatsWindow = %s", cfg.StatsWindow)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if len(cfg.Credits) != 0 {
		t.Errorf("Credits = %q", cfg.Credits)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HELPDOC_APP_VERSION", "3.1")
	t.Setenv("HELPDOC_CREDITS", "Thanks to Richard; ; Thanks to Nicolas")
	t.Setenv("HELPDOC_STATS_WINDOW", "5m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if m := cfg.Meta(); m.Version != "3.1" {
		t.Errorf("Meta().Version = %q", m.Version)
	}
	if len(cfg.Credits) != 2 || cfg.Credits[1] != "Thanks to Nicolas" {
		t.Errorf("Credits = %q", cfg.Credits)
	}
	if cfg.StatsWindow != 5*time.Minute {
		t.Errorf("StatsWindow = %s", cfg.StatsWindow)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("HELPDOC_STATS_WINDOW", "-1s")
	t.Setenv("HELPDOC_MAX_UPLOAD_BYTES", "lots")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()
	if cfg.StatsWindow != time.Hour {
		t.Errorf("StatsWindow = %s", cfg.StatsWindow)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8090", AppName: "Frescobaldi"}

	bad := base
	bad.Port = "http"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}

	bad = base
	bad.AppName = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty app name")
	}

	bad = base
	bad.KeymapPath = filepath.Join(t.TempDir(), "missing.yaml")
	if err := bad.Validate(); err == nil {
		t.Error("expected error for missing keymap")
	}

	good := base
	good.KeymapPath = filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(good.KeymapPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
