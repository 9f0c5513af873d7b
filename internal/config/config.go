package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the runtime options for the assistant shell. Delays are in
// milliseconds so the file stays plain YAML integers.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
	Browser    BrowserConfig    `yaml:"browser"`
}

type SimulationConfig struct {
	UploadDelayMs int `yaml:"uploadDelayMs"`
	AnswerDelayMs int `yaml:"answerDelayMs"`
	// FailureRate in [0,1]; zero disables failure injection entirely.
	FailureRate float64 `yaml:"failureRate"`
}

type LogConfig struct {
	// Path of the session log file. Empty disables logging.
	Path string `yaml:"path"`
}

type BrowserConfig struct {
	// StartDir is where the document browser opens. Empty means the
	// current working directory.
	StartDir string `yaml:"startDir"`
}

func defaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			UploadDelayMs: 2000,
			AnswerDelayMs: 3000,
			FailureRate:   0,
		},
	}
}

func (c *Config) UploadDelay() time.Duration {
	return time.Duration(c.Simulation.UploadDelayMs) * time.Millisecond
}

func (c *Config) AnswerDelay() time.Duration {
	return time.Duration(c.Simulation.AnswerDelayMs) * time.Millisecond
}

// DefaultPath resolves the config location. SMART_ASSISTANT_HOME overrides
// the user's home directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("SMART_ASSISTANT_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".research-assistant")
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, creating it with defaults on first run.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.FailureRate < 0 || c.Simulation.FailureRate > 1 {
		return fmt.Errorf("simulation.failureRate must be within [0,1], got %v", c.Simulation.FailureRate)
	}
	if c.Simulation.UploadDelayMs < 0 || c.Simulation.AnswerDelayMs < 0 {
		return fmt.Errorf("simulation delays must not be negative")
	}
	return nil
}

func save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
