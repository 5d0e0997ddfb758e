package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidClientConfigs indicates invalid client transport settings
	// (for example, missing server URL or request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
