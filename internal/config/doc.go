// Package config loads tailback's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tailback/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Command-line flags override whatever Load returns.
//
// # Default Values
//
//   - Server: localhost:6750
//   - Minimum level: info
//   - Logger column width: 40
//   - UI buffer: 5000 records
//   - Theme: Dracula
//   - Output: stdout
//
// # TOML Format
//
//	host = "localhost"
//	port = 6750
//	level = "debug"        # t/trace, d/debug, i/info, w/warn, e/error
//	logger_width = 40      # 0 prints full logger names
//	utc = false
//	buffer = 5000
//	theme = "Nord"
//
//	[output]
//	path = "~/logs/rendered.log"
//	max_size_mb = 50
//	max_backups = 5
//	max_age_days = 14
//	compress = true
//
// An unknown level is an error wrapping *severity.UnknownLevelError.
//
// # Path Expansion
//
// The config path and output.path accept "~" for the home directory and
// relative paths, which are made absolute. An output path of "-" means
// stdout.
package config
