package internal

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names the environment variable holding a config file path
const ConfigEnvVar = "PETAL_CONFIG"

// Config is the petal.yaml driver configuration
type Config struct {
	Log  LogConfig  `yaml:"log"`
	REPL REPLConfig `yaml:"repl"`
}

// LogConfig selects the logrus level and formatter
type LogConfig struct {
	// Level is any level understood by logrus.ParseLevel.
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// REPLConfig configures the interactive loop
type REPLConfig struct {
	Prompt string `yaml:"prompt"`

	// History is the path of the line history file. A leading "~/" is
	// expanded to the home directory.
	History string `yaml:"history"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		REPL: REPLConfig{
			Prompt:  ">>> ",
			History: "~/.petal_history",
			Color:   "auto",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path falls back to
// $PETAL_CONFIG and then to the defaults alone.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	switch c.REPL.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("repl.color: unknown mode %q", c.REPL.Color)
	}
	return nil
}

// NewLogger builds a logger writing to out
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.Out = out
	logger.SetLevel(level)
	if c.Log.Format == "json" {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	return logger, nil
}

// ColorEnabled reports whether output to fd should be colored
func (c *Config) ColorEnabled(fd uintptr) bool {
	switch c.REPL.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// HistoryPath returns the history file with "~/" expanded
func (c *Config) HistoryPath() string {
	path := c.REPL.History
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
