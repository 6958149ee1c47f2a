// Package config loads, normalizes, and validates gazette configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PDL_API_KEY. The Config type centralizes every knob the CLI needs: data and
// report directories, the auto-match threshold, provider credentials, and the
// staleness field list for enrichment payloads.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
