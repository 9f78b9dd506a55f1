// Package config handles configuration loading from files, defaults, and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	// Editor is the command used to open entries.
	Editor string `toml:"editor"`

	// JournalPath is the journal root directory.
	JournalPath string `toml:"journal_path"`

	// HoursPastMidnight is how many hours into the next date a date's
	// entries should cover: at 03:00 with a setting of 4, opening "today"
	// still means yesterday's entry.
	HoursPastMidnight int `toml:"hours_past_midnight_included_in_date"`

	// CreateNewEntries allows explicitly given dates to create entries
	// that don't exist yet. When false, explicit dates are read-only.
	CreateNewEntries bool `toml:"create_new_entries_when_specifying_dates"`

	// WriteTimestamps appends a timestamp before opening the editor,
	// unless overridden per invocation.
	WriteTimestamps bool `toml:"write_timestamps_by_default"`
}

// Default returns the default configuration.
func Default() *Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &Config{
		Editor:            editor,
		JournalPath:       defaultJournalPath(),
		HoursPastMidnight: 4,
		CreateNewEntries:  false,
		WriteTimestamps:   true,
	}
}

func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal"
	}
	return filepath.Join(home, "journal")
}

// DefaultConfigPath returns the default config file path, honouring
// XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jrnl", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "jrnl", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and
// env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.JournalPath = expandPath(cfg.JournalPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JRNL_EDITOR"); v != "" {
		cfg.Editor = v
	}
	if v := os.Getenv("JRNL_JOURNAL_PATH"); v != "" {
		cfg.JournalPath = v
	}
	if v := os.Getenv("JRNL_HOURS_PAST_MIDNIGHT"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			cfg.HoursPastMidnight = hours
		}
	}
	if v := os.Getenv("JRNL_CREATE_NEW_ENTRIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CreateNewEntries = b
		}
	}
	if v := os.Getenv("JRNL_WRITE_TIMESTAMPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WriteTimestamps = b
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Editor == "" {
		return errors.New("editor must be set")
	}
	if c.JournalPath == "" {
		return errors.New("journal_path must be set")
	}
	if c.HoursPastMidnight < 0 || c.HoursPastMidnight > 23 {
		return fmt.Errorf("hours_past_midnight_included_in_date must be between 0 and 23, got %d", c.HoursPastMidnight)
	}
	return nil
}

// LateNightOffset returns the duration to shift relative dates by at the
// given instant: -24h while still inside the previous date's late-night
// window, zero otherwise.
func (c *Config) LateNightOffset(now time.Time) time.Duration {
	if now.Hour() < c.HoursPastMidnight {
		return -24 * time.Hour
	}
	return 0
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Sample returns a commented sample configuration file.
func Sample() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("marshaling sample config: %w", err)
	}

	var b strings.Builder
	b.WriteString("# jrnl config file\n")
	b.WriteString("# Save this file as " + DefaultConfigPath() + "\n")
	b.WriteString("#\n")
	b.WriteString("# 'hours_past_midnight_included_in_date' is the number of hours\n")
	b.WriteString("# into the next date a date's journal entries should cover.\n")
	b.WriteString("# Example: with this set to 4, at 03:00 on 2018-03-03 jrnl\n")
	b.WriteString("# opens 2018-03-02's entry.\n")
	b.WriteString("\n")
	b.Write(data)
	return b.String(), nil
}
