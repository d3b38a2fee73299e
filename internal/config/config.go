// ABOUTME: Configuration loading for the infoflow client
// ABOUTME: Viper reads YAML plus INFOFLOW_* env overrides; defaults are written on first run

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/infoflow/internal/logger"
	"github.com/harper/infoflow/internal/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the ask endpoint used when nothing overrides it.
const DefaultEndpoint = "https://inflowaibackend.onrender.com/ask"

// DotEnvFile is loaded into the environment before env overrides are read.
var DotEnvFile = ".env"

type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint" yaml:"endpoint"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

type EndpointConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

type UIConfig struct {
	Theme    string `mapstructure:"theme" yaml:"theme"` // "light" or "dark"
	Markdown bool   `mapstructure:"markdown" yaml:"markdown"`
}

type InputConfig struct {
	MinHeight int `mapstructure:"min_height" yaml:"min_height"`
	MaxHeight int `mapstructure:"max_height" yaml:"max_height"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			URL: DefaultEndpoint,
		},
		UI: UIConfig{
			Theme:    "light",
			Markdown: true,
		},
		Input: InputConfig{
			MinHeight: 1,
			MaxHeight: 8,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "$XDG_DATA_HOME/infoflow/infoflow.log",
		},
	}
}

// DefaultPath is the config file used when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome(), "config.yaml")
}

// Load reads configPath (DefaultPath when empty). A missing file is created
// with defaults; a file that cannot be created is logged and otherwise ignored.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := saveDefault(DefaultConfig(), configPath); err != nil {
			logger.Warn("could not write default config %s: %v", configPath, err)
		}
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix("INFOFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Validate()
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("endpoint.url", d.Endpoint.URL)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.markdown", d.UI.Markdown)
	v.SetDefault("input.min_height", d.Input.MinHeight)
	v.SetDefault("input.max_height", d.Input.MaxHeight)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}

// Validate clamps out-of-range values and expands paths.
func (c *Config) Validate() {
	c.Endpoint.URL = strings.TrimSpace(c.Endpoint.URL)
	if c.Endpoint.URL == "" {
		c.Endpoint.URL = DefaultEndpoint
	}

	if c.UI.Theme != "dark" {
		c.UI.Theme = "light"
	}

	if c.Input.MaxHeight < 1 {
		c.Input.MaxHeight = 1
	}
	if c.Input.MaxHeight > 20 {
		c.Input.MaxHeight = 20
	}
	if c.Input.MinHeight < 1 {
		c.Input.MinHeight = 1
	}
	if c.Input.MinHeight > c.Input.MaxHeight {
		c.Input.MinHeight = c.Input.MaxHeight
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = "info"
	}

	c.Logging.File = xdg.ExpandPath(c.Logging.File)
}

// Dark reports whether the session starts with the dark theme.
func (c *Config) Dark() bool {
	return c.UI.Theme == "dark"
}

func saveDefault(cfg *Config, path string) error {
	if err := xdg.EnsureParent("XDG_CONFIG_HOME", path); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
