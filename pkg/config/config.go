// Package config provides layered configuration for the gio CLI.
//
// Values are resolved in priority order: built-in defaults, then an optional
// YAML config file, then GIO_* environment variables, then command-line
// flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	ThirdPartyPrefixes []string `koanf:"third_party_prefixes"`
	PlatformPrefixes   []string `koanf:"platform_prefixes"`
	Verbose            bool     `koanf:"verbose"`
}
