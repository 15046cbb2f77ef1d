package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "POKEDEX_"

// SearchPaths lists the files consulted when no explicit path is given,
// highest priority first. The first one that exists wins.
func SearchPaths() []string {
	paths := []string{"./pokedex.yaml", "./pokedex.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "pokedex", "config.yaml"),
			filepath.Join(dir, "pokedex", "config.toml"),
		)
	}
	return paths
}

// Loader resolves the effective configuration: defaults, then one file,
// then environment overrides.
type Loader struct {
	paths  []string
	lookup func(string) (string, bool)
}

// NewLoader creates a loader over the standard search paths and the process environment.
func NewLoader() *Loader {
	return &Loader{paths: SearchPaths(), lookup: os.LookupEnv}
}

// Load returns the validated configuration. An explicit path must exist;
// otherwise a missing file simply means defaults.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	source := path
	if source == "" {
		source = l.firstExisting()
	}
	if source != "" {
		if err := decodeFile(source, cfg); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is a convenience wrapper around NewLoader().Load.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

func (l *Loader) firstExisting() string {
	for _, p := range l.paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	mappings := []struct {
		key   string
		apply func(string) error
	}{
		{"API_BASE_URL", func(v string) error { cfg.API.BaseURL = v; return nil }},
		{"PAGE_SIZE", func(v string) error { return parseInt(v, &cfg.API.PageSize) }},
		{"RETRY_ATTEMPTS", func(v string) error { return parseInt(v, &cfg.API.RetryAttempts) }},
		{"ARTWORK_BASE_URL", func(v string) error { cfg.Artwork.BaseURL = v; return nil }},
		{"LANGUAGE", func(v string) error { cfg.Display.Language = v; return nil }},
		{"LOG_LEVEL", func(v string) error { cfg.Log.Level = v; return nil }},
		{"LOG_FILE", func(v string) error { cfg.Log.File = v; return nil }},
		{"SERVER_ADDR", func(v string) error { cfg.Server.Addr = v; return nil }},
	}

	for _, m := range mappings {
		value, ok := l.lookup(EnvPrefix + m.key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := m.apply(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("environment override %s%s: %w", EnvPrefix, m.key, err)
		}
	}

	return nil
}

func parseInt(value string, target *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*target = n
	return nil
}
