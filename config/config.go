// Package config loads the settings shared by the bufcrypt command-line
// tools: defaults, then an optional YAML file, then BUFCRYPT_* environment
// variables. Command-line flags are applied on top by the tools themselves.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/bufcrypt/limits"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Cipher modes understood by the file tool.
const (
	ModeStream = "stream"
	ModeOTP    = "otp"
)

// EnvPrefix prefixes every environment override, e.g. BUFCRYPT_LOG_LEVEL.
const EnvPrefix = "BUFCRYPT"

// Config holds the tool settings.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	// Debug enables key and buffer dumps at debug level.
	Debug bool `mapstructure:"debug"`

	Mode        string `mapstructure:"mode"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("debug", false)
	v.SetDefault("mode", ModeStream)
	v.SetDefault("max_file_size", limits.MaxFileSize)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the tools cannot act on.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}

	switch c.Mode {
	case ModeStream, ModeOTP:
	default:
		return fmt.Errorf("invalid mode %q: must be %s or %s", c.Mode, ModeStream, ModeOTP)
	}

	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive")
	}

	return nil
}

// ApplyLogging configures the standard logrus logger to write to out at the
// configured level and format. Debug forces the debug level.
func (c *Config) ApplyLogging(out io.Writer) error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Debug {
		level = logrus.DebugLevel
	}

	logrus.SetOutput(out)
	logrus.SetLevel(level)
	if c.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return nil
}
