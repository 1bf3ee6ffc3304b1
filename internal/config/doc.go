// Package config loads and merges trisieve configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (TRISIEVE_TARGET, TRISIEVE_FORMAT, TRISIEVE_VERBOSE,
//     TRISIEVE_MAX_SIEVE_LIMIT)
//  3. Config file ($XDG_CONFIG_HOME/trisieve/config.json, comments allowed)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
