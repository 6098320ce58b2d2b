// Package config provides hierarchical configuration: defaults, an optional
// YAML config file, and POCKETLEDGER_-prefixed environment variables, with a
// .env file loaded once at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var envOnce sync.Once

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Port string `mapstructure:"port" yaml:"port"`
	} `mapstructure:"server" yaml:"server"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Schema struct {
		ExtensionsFile string `mapstructure:"extensions_file" yaml:"extensions_file"`
	} `mapstructure:"schema" yaml:"schema"`
}

// Load initializes Viper and returns the resolved configuration.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pocketledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POCKETLEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.port", "8080")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("schema.extensions_file", "")
}

func validate(cfg *Config) error {
	if len(cfg.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", cfg.CSV.Delimiter)
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}

// Delimiter returns the configured CSV output delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// LoadEnv loads environment variables from a .env file in the working
// directory or the project root, once per process.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// ConfigureLogging builds a logrus logger from LOG_LEVEL and LOG_FORMAT
// environment variables, falling back to info/text.
func ConfigureLogging() *logrus.Logger {
	logger := logrus.New()

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", levelStr)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
