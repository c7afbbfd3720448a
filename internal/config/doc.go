// Package config loads dashboard settings from TOML and QUANTUMDASH_ env vars.
package config
