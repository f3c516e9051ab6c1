// Package config defines the application configuration structure and
// loading logic. Configuration is sourced from environment variables
// with the TASKTRACK_ prefix and an optional config.yaml file, then
// validated once at startup.
package config
