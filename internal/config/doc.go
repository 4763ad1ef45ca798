// Package config loads, merges and validates legacy-keeper configuration.
//
// Values are read from three sources and merged with mergo, the first
// non-zero value winning:
//  1. Environment variables
//  2. Command-line flags bound with [BindFlags]
//  3. JSON config file (path from CONFIG or --config)
//
// Fields still zero after merging fall back to [Defaults].
//
// [GetClientConfig] returns the view used by the CLI and client services,
// [GetServerConfig] the view used by the sandbox backend.
package config
