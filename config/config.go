// Package config loads the settings shared by tree codecs and logging.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DDD_CODEC_INDENT.
	EnvPrefix = "DDD"

	// FileName is the configuration file searched for when no path is given.
	FileName = "ddd"
)

// Config represents the module configuration.
type Config struct {
	Codec CodecConfig `mapstructure:"codec"`
	Log   LogConfig   `mapstructure:"log"`
}

// CodecConfig controls the serialized tree documents.
type CodecConfig struct {
	// Indent is the number of spaces per YAML nesting level.
	Indent int `mapstructure:"indent"`
	// FileMode is the permission of files written by WriteToFile.
	FileMode uint32 `mapstructure:"file_mode"`
}

// LogConfig controls the zap logger built by Logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Perm returns FileMode as a file permission.
func (c CodecConfig) Perm() fs.FileMode {
	return fs.FileMode(c.FileMode).Perm()
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Codec: CodecConfig{Indent: 2, FileMode: 0o644},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads configuration from path, or searches for ddd.yaml in the
// working directory when path is empty. A missing searched file is not an
// error. Environment variables prefixed with DDD_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("codec.indent", def.Codec.Indent)
	v.SetDefault("codec.file_mode", def.Codec.FileMode)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.development", def.Log.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Codec.Indent < 2 || c.Codec.Indent > 9 {
		return fmt.Errorf("codec.indent must be between 2 and 9, got: %d", c.Codec.Indent)
	}

	if c.Codec.FileMode&^uint32(os.ModePerm) != 0 {
		return fmt.Errorf("codec.file_mode must only hold permission bits, got: %o", c.Codec.FileMode)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level is invalid: %w", err)
	}

	return nil
}

// Logger builds a zap logger from the log settings.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level is invalid: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
