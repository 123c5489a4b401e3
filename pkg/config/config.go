package config

import (
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/ui"
)

// Config is the effective lnlst configuration.
type Config struct {
	Link     LinkConfig     `koanf:"link" toml:"link"`
	Filelist FilelistConfig `koanf:"filelist" toml:"filelist"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// LinkConfig controls link placement.
type LinkConfig struct {
	MaxClashingIndex int  `koanf:"max_clashing_index" toml:"max_clashing_index"`
	DryRun           bool `koanf:"dry_run" toml:"dry_run"`
}

// FilelistConfig controls how filelist entries are resolved.
type FilelistConfig struct {
	BaseSrcDir string `koanf:"base_src_dir" toml:"base_src_dir"`
}

// OutputConfig controls status rendering.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Keys of the settings that have a command-line flag.
const (
	KeyMaxClashingIndex = "link.max_clashing_index"
	KeyDryRun           = "link.dry_run"
	KeyBaseSrcDir       = "filelist.base_src_dir"
	KeyFormat           = "output.format"
)

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Link.MaxClashingIndex < 1 {
		return errors.Newf(errors.ErrConfigValid,
			"%s must be at least 1, got %d", KeyMaxClashingIndex, c.Link.MaxClashingIndex).
			WithDetail("key", KeyMaxClashingIndex)
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", KeyFormat).
			WithDetail("key", KeyFormat)
	}
	return nil
}

// OutputFormat returns the parsed output format. Call Validate first.
func (c *Config) OutputFormat() ui.Format {
	format, _ := ui.ParseFormat(c.Output.Format)
	return format
}
