// Package config loads, normalizes, and validates subtune configuration.
//
// It supplies repository defaults, reads TOML files, and honours the
// SUBTUNE_CONFIG environment fallback for the config path. Components never
// read configuration themselves; the CLI resolves a Config once and passes
// explicit option structs into each component call, keeping the core a pure
// function of its inputs.
package config
