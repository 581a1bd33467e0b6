// Package config loads, normalizes, and validates search-menu configuration.
//
// It supplies defaults that match the player's usual control endpoint,
// expands user paths (including tilde shortcuts), reads TOML files, and
// honours environment overrides such as SEARCH_MENU_SOCKET. Both binaries
// obtain their settings here so transport and logging setup see sanitized
// values and clear validation errors.
package config
