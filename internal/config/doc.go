// Package config loads the legtrack configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/legtrack/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	data_path = "~/legislation/extra"   # file or directory, optional
//	search_delay_ms = 300
//	log_file = "~/.local/state/legtrack/legtrack.log"
//	log_level = "info"                  # debug, info, warn, error
//
// Every field is optional. Paths get tilde expansion and are made absolute.
// A non-positive search delay keeps the default; an unknown log level is an
// error.
package config
