package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "litcast.toml"

// Config is the decoded litcast.toml. Every field is optional; zero values
// mean "use the built-in default".
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig controls analysis behaviour.
type CheckConfig struct {
	MaxDiagnostics  int      `toml:"max_diagnostics"`
	Exclude         []string `toml:"exclude"`
	AssumeUnchecked bool     `toml:"assume_unchecked"`
	Jobs            int      `toml:"jobs"`
}

// OutputConfig controls how diagnostics are rendered.
type OutputConfig struct {
	Format   string `toml:"format"`
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

// Manifest couples a decoded config with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks up from startDir to locate litcast.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir and decodes the nearest manifest.
// ok is false when no manifest exists anywhere above startDir.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// LoadFile decodes and validates a single manifest file.
func LoadFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	if c.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	switch c.Output.Format {
	case "", "pretty", "short", "json":
	default:
		return fmt.Errorf("%s: [output].format must be pretty, short or json", path)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [output].color must be auto, on or off", path)
	}
	switch c.Output.PathMode {
	case "", "auto", "absolute", "relative", "basename":
	default:
		return fmt.Errorf("%s: [output].path_mode must be auto, absolute, relative or basename", path)
	}
	return nil
}
