package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/notesexport/internal/runner"
)

// Config represents the application configuration
type Config struct {
	Script  ScriptConfig  `yaml:"script"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
}

// ScriptConfig selects the export script and how it is run.
type ScriptConfig struct {
	Path        string `yaml:"path,omitempty"`         // explicit script, validated at startup
	DefaultPath string `yaml:"default_path,omitempty"` // bundled script, checked on each call
	Interpreter string `yaml:"interpreter,omitempty"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default(installRoot string) *Config {
	return &Config{
		Script: ScriptConfig{
			DefaultPath: DefaultScriptPath(installRoot),
			Interpreter: runner.DefaultInterpreter,
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load loads configuration from configPath on top of the defaults, then
// applies environment overrides. An empty configPath skips the file.
func Load(configPath, installRoot string) (*Config, error) {
	loadEnvFiles()

	cfg := Default(installRoot)

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Expand environment variables in the YAML content
		expandedData := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		slog.Debug("Loaded configuration file", "path", configPath)
	}

	applyEnvOverrides(cfg)
	cfg.normalize(installRoot)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize(installRoot string) {
	if c.Script.Interpreter == "" {
		c.Script.Interpreter = runner.DefaultInterpreter
	}
	if c.Script.DefaultPath == "" {
		c.Script.DefaultPath = DefaultScriptPath(installRoot)
	} else if !filepath.IsAbs(c.Script.DefaultPath) && installRoot != "" {
		c.Script.DefaultPath = filepath.Join(installRoot, c.Script.DefaultPath)
	}
	if raw := string(c.Logging.Level); raw != "" {
		if _, err := logLevelNormalizer.NormalizeWithError(raw); err != nil {
			slog.Warn("Falling back to info logging", "error", err)
		}
	}
	if raw := string(c.Logging.Format); raw != "" && !logFormatNormalizer.IsValid(raw) {
		slog.Warn("Falling back to text log format", "format", raw, "valid", logFormatNormalizer.ValidKeys())
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Script.DefaultPath == "" && c.Script.Path == "" {
		return fmt.Errorf("no export script configured: set script.path or script.default_path")
	}
	return nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Script: ScriptConfig{
			Interpreter: runner.DefaultInterpreter,
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("Configuration file created", "path", configPath)
	return nil
}
