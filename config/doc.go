// Package config defines the application configuration for the poster
// harness: engine data location and language hints, batch behavior, the
// optional NATS surface, and logging. Files load as JSON or YAML selected
// by extension and are validated before use.
package config
