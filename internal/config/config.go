// # internal/config/config.go
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the explicit configuration every component receives at
// construction. Nothing reads process-wide state; the root path and the
// file-layout knobs all live here.
type Config struct {
	Root     string  `toml:"root"`
	Manifest string  `toml:"manifest"`
	Readme   string  `toml:"readme"`
	CIDir    string  `toml:"ci_dir"`
	Exclude  Exclude `toml:"exclude"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

// Default is the configuration used when no config file exists: operate on
// the current directory with the conventional file names.
func Default() *Config {
	return &Config{
		Root:     ".",
		Manifest: "info.yaml",
		Readme:   "README.md",
		CIDir:    ".ci",
		Exclude: Exclude{
			Dirs: []string{"__pycache__", ".git"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Manifest == "" {
		cfg.Manifest = "info.yaml"
	}
	if cfg.Readme == "" {
		cfg.Readme = "README.md"
	}
	if cfg.CIDir == "" {
		cfg.CIDir = ".ci"
	}

	return cfg, nil
}
