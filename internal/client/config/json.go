package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/flagx"
	"github.com/dmitrijs2005/gophtodo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; its values are
// copied into Config by parseJson.
type JsonConfig struct {
	DatabaseDSN   string          `json:"database_dsn"`
	StoreID       string          `json:"store_id"`
	CommitTimeout *timex.Duration `json:"commit_timeout"`
	LogLevel      string          `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without either flag it does nothing. Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

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
	if jc.StoreID != "" {
		cfg.StoreID = jc.StoreID
	}
	if jc.CommitTimeout != nil {
		cfg.CommitTimeout = jc.CommitTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
