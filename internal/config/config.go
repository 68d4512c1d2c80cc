// Package config builds the process-wide configuration once at startup.
// Scoring functions never read ambient state; everything they need arrives
// through this struct.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// NarrativeConfig configures the external text-generation call.
type NarrativeConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the bounded request timeout.
func (n NarrativeConfig) Timeout() time.Duration {
	if n.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// Config holds everything the commands need: where the journal lives,
// which timezone frames a "day", and the narrative credentials.
type Config struct {
	DBPath    string          `yaml:"db_path"`
	Timezone  string          `yaml:"timezone"`
	Narrative NarrativeConfig `yaml:"narrative"`

	loc *time.Location
}

// Load builds the configuration: defaults, then the optional yaml file
// (default ~/.gutcheck/config.yaml), then env overrides (GUTCHECK_DB,
// OPENAI_API_KEY, OPENAI_BASE_URL).
func Load(path string) (*Config, error) {
	home, _ := os.UserHomeDir()
	cfg := &Config{
		DBPath:   filepath.Join(home, ".gutcheck", "journal.db"),
		Timezone: "Local",
	}

	if path == "" {
		path = filepath.Join(home, ".gutcheck", "config.yaml")
	}
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if env := os.Getenv("GUTCHECK_DB"); env != "" {
		cfg.DBPath = env
	}
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		cfg.Narrative.APIKey = env
	}
	if env := os.Getenv("OPENAI_BASE_URL"); env != "" {
		cfg.Narrative.BaseURL = env
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.loc = loc
	return cfg, nil
}

// Location returns the timezone that frames journal dates.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		c.loc = time.Local
	}
	return c.loc
}

// Today returns the current date truncated to midnight in the configured
// timezone.
func (c *Config) Today() time.Time {
	now := time.Now().In(c.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location())
}

// ParseDate parses a YYYY-MM-DD argument in the configured timezone.
func (c *Config) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("bad timezone %q: %w", name, err)
	}
	return loc, nil
}

// TestConfig returns a configuration rooted at a test directory.
func TestConfig(dir string) *Config {
	return &Config{
		DBPath:   filepath.Join(dir, "journal.db"),
		Timezone: "UTC",
		loc:      time.UTC,
	}
}
