// Package config loads, merges, and validates the application configuration.
//
// Values are gathered from three sources and merged so that later non-zero
// values win:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from the first two sources)
//
// [GetStructuredConfig] returns the full merged configuration used by the
// server; [GetClientConfig] derives the subset the terminal client needs.
package config
