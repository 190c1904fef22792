package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-audio/internal/model"
)

// Playlist enumerator implementations
const (
	EnumeratorSubprocess = "subprocess"
	EnumeratorNative     = "native"
)

// Environment variable names
const (
	EnvToolsDir   = "YTAUDIO_TOOLS_DIR"
	EnvRootDir    = "YTAUDIO_ROOT_DIR"
	EnvOutputDir  = "YTAUDIO_OUTPUT_DIR"
	EnvLogLevel   = "YTAUDIO_LOG_LEVEL"
	EnvLogFile    = "YTAUDIO_LOG_FILE"
	EnvEnumerator = "YTAUDIO_ENUMERATOR"
)

// Default values
const (
	DefaultEnvFile          = ".env"
	DefaultEncoding         = model.EncodingMP3
	DefaultEnumerator       = EnumeratorSubprocess
	DefaultEnumerateTimeout = 60
	DefaultLogLevel         = "info"
	DefaultLogMaxSizeMB     = 10
	DefaultLogMaxBackups    = 3
	DefaultLogMaxAgeDays    = 28
)

// Config is the runtime configuration shared by the console and GUI front ends
type Config struct {
	ToolsDir         string    `yaml:"tools_dir"`
	RootDir          string    `yaml:"root_dir"`
	OutputDir        string    `yaml:"output_dir"`
	SearchPath       bool      `yaml:"search_path"`
	Encoding         string    `yaml:"encoding"`
	Enumerator       string    `yaml:"enumerator"`
	EnumerateTimeout int       `yaml:"enumerate_timeout"`
	Log              LogConfig `yaml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Defaults returns a configuration with every default applied
func Defaults() *Config {
	return &Config{
		Encoding:         DefaultEncoding.String(),
		Enumerator:       DefaultEnumerator,
		EnumerateTimeout: DefaultEnumerateTimeout,
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
	}
}

// Load reads the YAML file at path (optional; empty or missing means
// defaults), then the .env file, then applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// loadEnvFile loads variables from a .env file without overriding the
// process environment. A missing file is ignored.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from YTAUDIO_* variables
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvToolsDir:   &c.ToolsDir,
		EnvRootDir:    &c.RootDir,
		EnvOutputDir:  &c.OutputDir,
		EnvLogLevel:   &c.Log.Level,
		EnvLogFile:    &c.Log.File,
		EnvEnumerator: &c.Enumerator,
	}
	for key, field := range overrides {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			*field = strings.TrimSpace(value)
		}
	}
}

// fillDefaults restores defaults for fields a config file left blank
func (c *Config) fillDefaults() {
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding.String()
	}
	if c.Enumerator == "" {
		c.Enumerator = DefaultEnumerator
	}
	if c.EnumerateTimeout <= 0 {
		c.EnumerateTimeout = DefaultEnumerateTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate rejects unknown encoding and enumerator values
func (c *Config) Validate() error {
	if _, err := model.ParseEncodingTarget(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}
	switch strings.ToLower(c.Enumerator) {
	case EnumeratorSubprocess, EnumeratorNative:
	default:
		return fmt.Errorf("invalid enumerator %q: expected %s or %s", c.Enumerator, EnumeratorSubprocess, EnumeratorNative)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}

// EncodingTarget returns the configured default encoding
func (c *Config) EncodingTarget() model.EncodingTarget {
	enc, err := model.ParseEncodingTarget(c.Encoding)
	if err != nil {
		return DefaultEncoding
	}
	return enc
}

// UseNativeEnumerator returns true when playlists are enumerated without yt-dlp
func (c *Config) UseNativeEnumerator() bool {
	return strings.EqualFold(c.Enumerator, EnumeratorNative)
}

// EnumerateTimeoutDuration returns the native enumeration timeout
func (c *Config) EnumerateTimeoutDuration() time.Duration {
	return time.Duration(c.EnumerateTimeout) * time.Second
}
