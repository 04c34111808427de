// Package config loads, normalizes, and validates rendezvous configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RENDEZVOUS_CATALOG_DSN. The Config type centralizes the organization
// identity printed on generated documents, page geometry for the layout
// engine, storage locations, and the impact follow-up policy.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
