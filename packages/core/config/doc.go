// Package config handles configuration loading for minihttp.
//
// Settings come from, in order of precedence:
//   - Command-line flags
//   - MINIHTTP_* environment variables
//   - Built-in defaults
//
// There is no configuration file.
package config
