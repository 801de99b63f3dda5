// Package config loads runtime configuration for the todo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite DSN of the local journal
//	-s string   store id the journal belongs to
//	-t duration commit timeout, e.g. 5s or 1500ms
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Empty or missing keys keep the previous value. The commit timeout is a
// timex.Duration, so it can be a string like "5s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "todos.db",
//	  "store_id": "todo-app",
//	  "commit_timeout": "5s",
//	  "log_level": "info"
//	}
package config
