// Package cli wires together the Cobra command tree for the trisieve binary.
//
// It defines the root command and all subcommands (solve, divisors, primes,
// config, version), binds flags, reads configuration, runs the search, and
// returns deterministic exit codes.
package cli
