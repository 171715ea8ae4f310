// Package config holds runtime settings for the PromptLab CLI and loads
// them from defaults, an optional JSON file, and command-line flags, in
// that order (later sources win).
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database file.
//   - SessionKey: HMAC key signing the persisted session token. A default
//     key is fine for a single-user local install; the token guards against
//     corruption, not against an attacker with file access.
//   - SessionTTL: how long a persisted session stays valid.
//   - OptimizeDelay: cosmetic pacing before the optimized prompt is shown.
//     Purely presentational; once started it always runs to completion.
type Config struct {
	DatabaseDSN   string
	SessionKey    string
	SessionTTL    time.Duration
	OptimizeDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "promptlab.db"
	c.SessionKey = "promptlab-local-session"
	c.SessionTTL = 30 * 24 * time.Hour
	c.OptimizeDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
