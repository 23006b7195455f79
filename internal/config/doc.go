// Package config defines the application configuration structure and loads
// it from environment variables and optional config files, validating the
// result before the rest of the application sees it.
package config
