package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the page host.
type Config struct {
	Port          string        `yaml:"port"`
	SolverURL     string        `yaml:"solver_url"`
	SolverTimeout time.Duration `yaml:"-"`
	WasmDir       string        `yaml:"wasm_dir"`
}

type fileConfig struct {
	Config        `yaml:",inline"`
	SolverTimeout string `yaml:"solver_timeout"`
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration. Values from the optional YAML file named by
// CONFIG_FILE act as defaults; environment variables override them.
func Load() (Config, error) {
	defaults := Config{
		Port:          "8080",
		SolverTimeout: 30 * time.Second,
		WasmDir:       "web/app",
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		fromFile, err := readFile(path, defaults)
		if err != nil {
			return Config{}, err
		}
		defaults = fromFile
	}

	cfg := Config{
		Port:      Get("PORT", defaults.Port),
		SolverURL: strings.TrimSpace(Get("SOLVER_URL", defaults.SolverURL)),
		WasmDir:   Get("WASM_DIR", defaults.WasmDir),
	}

	cfg.SolverTimeout = defaults.SolverTimeout
	if raw := os.Getenv("SOLVER_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: SOLVER_TIMEOUT %q: %w", raw, err)
		}
		cfg.SolverTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SolverURL == "" {
		return errors.New("load config: SOLVER_URL is required")
	}
	if !strings.HasPrefix(c.SolverURL, "http://") && !strings.HasPrefix(c.SolverURL, "https://") {
		return fmt.Errorf("load config: SOLVER_URL %q must be an http or https URL", c.SolverURL)
	}
	if c.SolverTimeout < 0 {
		return fmt.Errorf("load config: SOLVER_TIMEOUT must not be negative, got %s", c.SolverTimeout)
	}
	return nil
}

func readFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: read %s: %w", path, err)
	}

	fc := fileConfig{Config: base}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("load config: parse %s: %w", path, err)
	}

	out := fc.Config
	if fc.SolverTimeout != "" {
		d, err := time.ParseDuration(fc.SolverTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %s solver_timeout %q: %w", path, fc.SolverTimeout, err)
		}
		out.SolverTimeout = d
	}
	return out, nil
}
