// Package cli holds the flag handling shared by the bufcrypt commands.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/opd-ai/bufcrypt/config"
	"github.com/opd-ai/bufcrypt/dump"
	"github.com/opd-ai/bufcrypt/limits"
	"github.com/sirupsen/logrus"
)

// dumpLimit caps how much of a buffer the debug dump prints.
const dumpLimit = 32

// CommonFlags are the options every command accepts.
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Debug      bool
	Escaped    bool
	Help       bool
}

// Register adds the common options to fs.
func (c *CommonFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&c.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", "", "Log format (text, json)")
	fs.BoolVar(&c.Debug, "debug", false, "Dump keys and buffers at debug level")
	fs.BoolVar(&c.Debug, "d", false, "Shorthand for -debug")
	fs.BoolVar(&c.Escaped, "escaped", false, `Decode \NN hex escapes in the key text`)
	fs.BoolVar(&c.Help, "help", false, "Show help message")
}

// LoadConfig loads the configuration file and environment, then applies any
// flag the user set explicitly on fs. The result is validated and the
// logger is configured to write to logOut.
func (c *CommonFlags) LoadConfig(fs *flag.FlagSet, logOut io.Writer) (*config.Config, error) {
	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = c.LogLevel
		case "log-format":
			cfg.Log.Format = c.LogFormat
		case "debug", "d":
			cfg.Debug = c.Debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyLogging(logOut); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeKey turns key text into key bytes. The key length is the byte
// length of the text, or of its decoded form when escaped is set.
func DecodeKey(text string, escaped bool) ([]byte, error) {
	key := []byte(text)
	if escaped {
		var err error
		if key, err = dump.Unescape(text); err != nil {
			return nil, fmt.Errorf("invalid key: %w", err)
		}
	}
	if err := limits.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	return key, nil
}

// DebugDump logs a named buffer as a dump table when debug logging is on.
func DebugDump(name string, data []byte) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, line := range dump.TablePrefix(name, data, dumpLimit) {
		logrus.WithField("dump", name).Debug(line)
	}
}
