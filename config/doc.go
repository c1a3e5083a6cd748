// Package config loads runtime settings for the tridiag CLI and server.
//
// Values come, in increasing priority, from built-in defaults, an optional
// config file (YAML, TOML or JSON by extension) and TRIDIAG_* environment
// variables. Flags bound by the CLI take precedence over all of them.
package config
