package config

import (
	"encoding/json"
	"os"

	"github.com/promptlab/promptlab/internal/flagx"
	"github.com/promptlab/promptlab/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so the file can say "1500ms" or give nanoseconds.
type JSONConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	SessionKey    string         `json:"session_key"`
	SessionTTL    timex.Duration `json:"session_ttl"`
	OptimizeDelay timex.Duration `json:"optimize_delay"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file means nothing to do; fields the file leaves
// out keep their current values. Read or unmarshal errors panic, matching
// the fail-fast startup behavior of the flag parser.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionKey != "" {
		cfg.SessionKey = jc.SessionKey
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.OptimizeDelay.Duration != 0 {
		cfg.OptimizeDelay = jc.OptimizeDelay.Duration
	}
}
