// Package config handles configuration management for lnlst.
// It merges, lowest priority first, the embedded defaults, the user's TOML
// file, LNLST_* environment variables and explicitly set command-line flags.
package config
