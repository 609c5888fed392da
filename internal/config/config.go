package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/helpdoc/internal/helptree"
)

type Config struct {
	Port string

	// User guide documents
	GuideDir string

	// Optional keymap overriding the built-in shortcuts
	KeymapPath string

	// Product metadata shown in the manual
	AppName    string
	AppVersion string
	Maintainer string
	Credits    []string

	// href prefix of links between pages
	LinkPrefix string

	// Render latency window
	StatsWindow time.Duration

	// Upload limit of POST /api/extract, per file
	MaxUploadBytes int64

	LogLevel slog.Level
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		GuideDir:   envOr("HELPDOC_GUIDE_DIR", "userguide"),
		KeymapPath: os.Getenv("HELPDOC_KEYMAP"),

		AppName:    envOr("HELPDOC_APP_NAME", "Frescobaldi"),
		AppVersion: envOr("HELPDOC_APP_VERSION", "2.0.0"),
		Maintainer: envOr("HELPDOC_MAINTAINER", "Wilbert Berendsen"),
		Credits:    envList("HELPDOC_CREDITS"),

		LinkPrefix: envOr("HELPDOC_LINK_PREFIX", helptree.DefaultLinkPrefix),

		StatsWindow: envDuration("HELPDOC_STATS_WINDOW", 1*time.Hour),

		MaxUploadBytes: envInt64("HELPDOC_MAX_UPLOAD_BYTES", 10485760), // 10MB

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.AppName == "" {
		return fmt.Errorf("HELPDOC_APP_NAME is required")
	}
	if c.KeymapPath != "" {
		if _, err := os.Stat(c.KeymapPath); err != nil {
			return fmt.Errorf("HELPDOC_KEYMAP: %w", err)
		}
	}
	return nil
}

// Meta returns the product metadata pages are rendered with.
func (c Config) Meta() helptree.Meta {
	return helptree.Meta{
		AppName:    c.AppName,
		Version:    c.AppVersion,
		Maintainer: c.Maintainer,
		Website:    "http://www.frescobaldi.org/",
		Credits:    c.Credits,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envList splits a ';' separated value.
func envList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return fallback
}
