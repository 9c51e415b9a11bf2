package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

const (
	// FileName is the config file name searched for, without extension
	FileName = "raytracer"
	// EnvPrefix prefixes environment overrides, e.g. RAYTRACER_MAX_DEPTH
	EnvPrefix = "RAYTRACER"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the raytracer configuration
type Config struct {
	Scene          string  `yaml:"scene" mapstructure:"scene"`
	Width          int     `yaml:"width" mapstructure:"width"`
	Height         int     `yaml:"height" mapstructure:"height"`
	ViewportWidth  float64 `yaml:"viewport_width" mapstructure:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height" mapstructure:"viewport_height"`
	MaxDepth       int     `yaml:"max_depth" mapstructure:"max_depth"`
	ShadowMode     string  `yaml:"shadow_mode" mapstructure:"shadow_mode"`
	OutputDir      string  `yaml:"output_dir" mapstructure:"output_dir"`
	LogLevel       string  `yaml:"log_level" mapstructure:"log_level"`
	LogPretty      bool    `yaml:"log_pretty" mapstructure:"log_pretty"`
	Caption        bool    `yaml:"caption" mapstructure:"caption"`
}

// DefaultConfig returns the reference 700x700 setup
func DefaultConfig() *Config {
	return &Config{
		Scene:          "default",
		Width:          renderer.DefaultCanvasSize,
		Height:         renderer.DefaultCanvasSize,
		ViewportWidth:  renderer.DefaultViewportSize,
		ViewportHeight: renderer.DefaultViewportSize,
		MaxDepth:       renderer.DefaultMaxDepth,
		ShadowMode:     renderer.ShadowSkipLight.String(),
		OutputDir:      "output",
		LogLevel:       "info",
		LogPretty:      true,
		Caption:        false,
	}
}

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"scene":           "scene",
	"width":           "width",
	"height":          "height",
	"viewport-width":  "viewport_width",
	"viewport-height": "viewport_height",
	"max-depth":       "max_depth",
	"shadow-mode":     "shadow_mode",
	"output":          "output_dir",
	"log-level":       "log_level",
	"log-pretty":      "log_pretty",
	"caption":         "caption",
}

// Load reads configuration with precedence flags > environment > file > defaults.
// An explicit configFile must exist; otherwise raytracer.yaml is searched for in the
// working directory and $HOME/.raytracer and a missing file means defaults.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, "."+FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("scene", d.Scene)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("viewport_width", d.ViewportWidth)
	v.SetDefault("viewport_height", d.ViewportHeight)
	v.SetDefault("max_depth", d.MaxDepth)
	v.SetDefault("shadow_mode", d.ShadowMode)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_pretty", d.LogPretty)
	v.SetDefault("caption", d.Caption)
}

// Validate checks the configuration, wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene cannot be empty", ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !(c.ViewportWidth > 0) || !(c.ViewportHeight > 0) {
		return fmt.Errorf("%w: viewport size must be positive, got %gx%g", ErrInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth cannot be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if _, err := renderer.ParseShadowMode(c.ShadowMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir cannot be empty", ErrInvalidConfig)
	}
	return nil
}

// TraceConfig returns the ray tracing settings. The config must be valid.
func (c *Config) TraceConfig() renderer.TraceConfig {
	mode, _ := renderer.ParseShadowMode(c.ShadowMode)
	config := renderer.DefaultTraceConfig()
	config.MaxDepth = c.MaxDepth
	config.ShadowMode = mode
	return config
}

// CameraConfig returns the camera settings; the camera stays at the origin
func (c *Config) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:       core.NewVec3(0, 0, 0),
		Width:          c.Width,
		Height:         c.Height,
		ViewportWidth:  c.ViewportWidth,
		ViewportHeight: c.ViewportHeight,
	}
}

// WriteDefault writes the default configuration as YAML to path.
// An existing file is only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
