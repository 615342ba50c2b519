package common

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/danieldk/projector"
	"github.com/danieldk/projector/translate"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no config file is given.
const DefaultConfigPath = "go2projector.yaml"

// ConfigError wraps errors in the configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TranslateConfig configures the online translation of metadata files.
type TranslateConfig struct {
	SourceLang    string  `yaml:"source_lang"`
	TargetLang    string  `yaml:"target_lang"`
	TargetName    string  `yaml:"target_name"`
	Endpoint      string  `yaml:"endpoint"`
	EmailEnv      string  `yaml:"email_env"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	TimeoutSecs   int     `yaml:"timeout_secs"`
}

// Config is the root configuration structure.
type Config struct {
	Limit      int    `yaml:"limit"`
	Dimensions int    `yaml:"dimensions"`
	OutputDir  string `yaml:"output_dir"`
	Encoding   string `yaml:"encoding"`
	Normalize  bool   `yaml:"normalize"`
	Readme     bool   `yaml:"readme"`
	Workers    int    `yaml:"workers"`

	Translate TranslateConfig `yaml:"translate"`
}

// Load reads a config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, &ConfigError{Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("%s: %w", path, err)}
	}
	applyDefaults(&cfg)

	return &cfg, cfg.validate()
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Encoding == "" {
		cfg.Encoding = projector.DefaultEncoding
	}
	if cfg.Translate.SourceLang == "" {
		cfg.Translate.SourceLang = "auto"
	}
	if cfg.Translate.TargetLang == "" {
		cfg.Translate.TargetLang = "en"
	}
	if cfg.Translate.TargetName == "" {
		cfg.Translate.TargetName = "English"
	}
	if cfg.Translate.Endpoint == "" {
		cfg.Translate.Endpoint = translate.DefaultEndpoint
	}
	if cfg.Translate.EmailEnv == "" {
		cfg.Translate.EmailEnv = "MYMEMORY_EMAIL"
	}
	if cfg.Translate.RatePerSecond == 0 {
		cfg.Translate.RatePerSecond = 2
	}
	if cfg.Translate.TimeoutSecs == 0 {
		cfg.Translate.TimeoutSecs = 10
	}
}

func (c *Config) validate() error {
	if err := c.Options().Validate(); err != nil {
		return &ConfigError{Err: err}
	}
	if _, err := projector.LookupEncoding(c.Encoding); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}

// Options returns the conversion options of the configuration.
func (c *Config) Options() projector.Options {
	return projector.Options{
		Limit:      c.Limit,
		Dimensions: c.Dimensions,
		Normalize:  c.Normalize,
		Workers:    c.Workers,
	}
}

// WriteOptions returns the output options of the configuration.
func (c *Config) WriteOptions() projector.WriteOptions {
	return projector.WriteOptions{
		Dir:      c.OutputDir,
		Encoding: c.Encoding,
		Readme:   c.Readme,
	}
}

// TranslatorConfig returns the MyMemory client configuration. The contact
// email is read from the environment variable named by EmailEnv.
func (c *Config) TranslatorConfig() translate.Config {
	return translate.Config{
		Endpoint:      c.Translate.Endpoint,
		SourceLang:    c.Translate.SourceLang,
		TargetLang:    c.Translate.TargetLang,
		Email:         os.Getenv(c.Translate.EmailEnv),
		RatePerSecond: c.Translate.RatePerSecond,
		Timeout:       time.Duration(c.Translate.TimeoutSecs) * time.Second,
	}
}
