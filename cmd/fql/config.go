package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds the optional settings loaded from .fql.toml (or --config):
// default subcommand, the collation locale used by sort-literals, and the
// debounce applied to --watch re-runs. Absence of a config file is not an
// error; every field has a workable default in defaultConfig below.
type config struct {
	DefaultSubcommand string `toml:"default_subcommand"`
	CollationLocale   string `toml:"collation_locale"`
	WatchDebounceMS   int    `toml:"watch_debounce_ms"`
}

func defaultConfig() *config {
	return &config{
		DefaultSubcommand: "print-tree",
		CollationLocale:   "en",
		WatchDebounceMS:   100,
	}
}

func (c *config) debounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// loadConfig reads path, or ".fql.toml" in the working directory when path
// is empty. A missing default file is not an error; an explicitly named
// path that's missing, or a file that fails to parse, is.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = ".fql.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
