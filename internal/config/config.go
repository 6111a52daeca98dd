package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tasnim.dev/bucket-lister/internal/constants"
	"tasnim.dev/bucket-lister/internal/lister"
)

const DefaultAllowOrigin = "*"

// Config holds handler settings. Values come from an optional YAML file
// (~/.config/bucket-lister/config.yaml), then environment variables, then CLI flags.
type Config struct {
	DefaultBucket   string `yaml:"default_bucket"`
	CORSEnabled     bool   `yaml:"cors_enabled"`
	CORSAllowOrigin string `yaml:"cors_allow_origin"`
	LogLevel        string `yaml:"log_level"`
	DefaultProfile  string `yaml:"default_profile"`
	DefaultRegion   string `yaml:"default_region"`
}

// Load reads the config file and overlays the environment.
// A missing file (or home directory) is not an error.
func Load() (*Config, error) {
	path := ""
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".config", "bucket-lister", "config.yaml")
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(newEnv())
	return cfg, nil
}

// LoadFile parses the YAML file at path. Returns zero-value Config if it doesn't exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func newEnv() *viper.Viper {
	v := viper.New()
	_ = v.BindEnv("default_bucket", constants.EnvBucketName)
	_ = v.BindEnv("cors_enabled", constants.EnvCORSEnabled)
	_ = v.BindEnv("cors_allow_origin", constants.EnvCORSAllowOrigin)
	_ = v.BindEnv("log_level", constants.EnvLogLevel)
	_ = v.BindEnv("default_profile", "AWS_PROFILE")
	_ = v.BindEnv("default_region", "AWS_REGION", "AWS_DEFAULT_REGION")
	return v
}

// ApplyEnv overrides fields whose variables are set (and non-empty) in v.
func (c *Config) ApplyEnv(v *viper.Viper) {
	if v.IsSet("default_bucket") {
		c.DefaultBucket = v.GetString("default_bucket")
	}
	if v.IsSet("cors_enabled") {
		c.CORSEnabled = v.GetBool("cors_enabled")
	}
	if v.IsSet("cors_allow_origin") {
		c.CORSAllowOrigin = v.GetString("cors_allow_origin")
	}
	if v.IsSet("log_level") {
		c.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("default_profile") {
		c.DefaultProfile = v.GetString("default_profile")
	}
	if v.IsSet("default_region") {
		c.DefaultRegion = v.GetString("default_region")
	}
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Options converts the config into the handler's explicit settings.
func (c *Config) Options() lister.Options {
	origin := c.CORSAllowOrigin
	if origin == "" {
		origin = DefaultAllowOrigin
	}
	return lister.Options{
		DefaultBucket: c.DefaultBucket,
		CORS:          c.CORSEnabled,
		AllowOrigin:   origin,
	}
}
