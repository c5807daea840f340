package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/wasabi0522/dxflow/internal/flow"
)

// FileName is the name of the configuration file at the repository root.
const FileName = ".dxflow.yaml"

// ErrNotConfigured is returned by Load when the configuration file does not exist.
var ErrNotConfigured = errors.New("dxflow is not configured in this repository (run 'dxflow init')")

// Path returns the configuration file path for the repository at repoRoot.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

func defaults() map[string]any {
	return map[string]any{
		"prefixes.feature": "feature/",
		"prefixes.release": "release/",
		"prefixes.hotfix":  "hotfix/",
	}
}

// Load reads configuration from the given YAML file path and environment variables.
// Priority: environment variables > file > defaults.
// A missing file is ErrNotConfigured since the branch list has no default.
func Load(path string) (*flow.GitConfig, error) {
	k := koanf.New(".")

	// 1. Defaults. confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	// 2. YAML file (overrides defaults)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	// 3. Environment variables (highest priority), DXFLOW_PREFIXES_FEATURE -> prefixes.feature
	if err := k.Load(env.Provider("DXFLOW_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DXFLOW_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return unmarshal(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*flow.GitConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*flow.GitConfig, error) {
	var cfg flow.GitConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Hand-edited prefixes may lack the trailing slash.
	cfg.Prefixes = cfg.Prefixes.Normalized()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg as YAML to path, replacing any previous file.
func Save(path string, cfg *flow.GitConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	branches := make([]any, len(cfg.Branches))
	for i, cb := range cfg.Branches {
		m := map[string]any{
			"production": cb.Production,
			"develop":    cb.Develop,
		}
		if cb.Prefix != "" {
			m["prefix"] = cb.Prefix
		}
		branches[i] = m
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]any{
		"prefixes.feature": cfg.Prefixes.Feature,
		"prefixes.release": cfg.Prefixes.Release,
		"prefixes.hotfix":  cfg.Prefixes.Hotfix,
		"branches":         branches,
	}, "."), nil); err != nil {
		return fmt.Errorf("building config: %w", err)
	}

	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
