package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config holds defaults loaded from a TOML file via --config. Delta is
// used by rmepsilon and isomorphic when --delta is left at 0, and
// WeightGC is the cache limit of the lazy views built by rmepsilon
// --lazy and synchronize. Compress and DefaultArcs are decoded but no
// subcommand reads them; --arc-type defaults to "standard" on its own.
type config struct {
	Delta       float64 `toml:"delta"`
	WeightGC    int64   `toml:"weight_gc_limit"`
	Compress    bool    `toml:"compress_archives"`
	DefaultArcs string  `toml:"default_arc_type"`
}

func defaultConfig() config {
	return config{Delta: 1e-6, WeightGC: 0, Compress: false, DefaultArcs: "standard"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("cli: loading config %s: %w", path, err)
	}
	return cfg, nil
}
