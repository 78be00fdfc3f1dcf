// Package config loads runtime settings for the library CLI.
//
// Values come from, in increasing priority: built-in defaults, an optional
// library.yaml (in ./ or ./config, or an explicit path), .env files, and
// LIBRARY_* environment variables. .env files never override variables the
// runtime already set.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
)

var (
	ErrInvalidStore    = errors.New("store must be \"memory\" or \"file\"")
	ErrInvalidLoanDays = errors.New("loan_days must be positive")
	ErrEmptyDataFile   = errors.New("data_file is required for the file store")
)

type Config struct {
	Store    string    `mapstructure:"store"`
	DataFile string    `mapstructure:"data_file"`
	LoanDays int       `mapstructure:"loan_days"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration. An empty configPath searches for an optional
// library.yaml; a non-empty one must exist.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetDefault("store", StoreFile)
	v.SetDefault("data_file", "biblioteca.txt")
	v.SetDefault("loan_days", 14)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("LIBRARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("library")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
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

// Validate checks the settings that have no usable fallback.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory:
	case StoreFile:
		if strings.TrimSpace(c.DataFile) == "" {
			return ErrEmptyDataFile
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStore, c.Store)
	}
	if c.LoanDays <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLoanDays, c.LoanDays)
	}
	return nil
}
