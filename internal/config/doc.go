// Package config loads, normalizes, and validates captioner configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CAPTIONER_LANGUAGE. Commands obtain settings through this package so they
// receive expanded paths, a canonical language tag, and clear validation
// errors.
package config
