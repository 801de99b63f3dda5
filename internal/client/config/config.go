package config

import "time"

// Config holds runtime settings for the todo CLI.
//
// Fields:
//   - DatabaseDSN: SQLite DSN of the local journal (a file path or ":memory:").
//   - StoreID: identity of the todo list the journal belongs to.
//   - CommitTimeout: how long a commit may wait on the journal.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDSN   string
	StoreID       string
	CommitTimeout time.Duration
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "todos.db"
	c.StoreID = "todo-app"
	c.CommitTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
