// Package config loads service settings from defaults, an optional
// config.yaml and PERSONA_-prefixed environment variables, and validates the
// result before any component is built from it.
package config
