// Package config provides configuration loading and validation for the
// variable refactoring analysis.
package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/NickyBoy89/varrefactor/internal/textutil"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidSupport   = errors.New("minimum rename support must be at least 2")
)

const envPrefix = "VARREFACTOR"

// Config holds all configuration for an analysis run.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig tunes the detection heuristics.
type AnalysisConfig struct {
	// Annotations stripped from a line before it is tested as a method
	// signature of an anonymous class.
	SignatureAnnotations []string `mapstructure:"signature_annotations"`
	// Number of supporting mappings from which a rename is trusted on
	// consistency alone, without being a local declaration match.
	MinRenameSupport int `mapstructure:"min_rename_support"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SignatureAnnotations: append([]string(nil), textutil.DefaultSignatureAnnotations...),
			MinRenameSupport:     2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from file and environment variables. An
// empty path loads only defaults and environment.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)

		readErr := viperCfg.ReadInConfig()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	defaults := Default()

	viperCfg.SetDefault("analysis.signature_annotations", defaults.Analysis.SignatureAnnotations)
	viperCfg.SetDefault("analysis.min_rename_support", defaults.Analysis.MinRenameSupport)

	viperCfg.SetDefault("logging.level", defaults.Logging.Level)
	viperCfg.SetDefault("logging.format", defaults.Logging.Format)
}

func validateConfig(config *Config) error {
	if _, err := log.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Analysis.MinRenameSupport < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSupport, config.Analysis.MinRenameSupport)
	}

	return nil
}

// Apply configures logger according to the logging configuration.
func (lc LoggingConfig) Apply(logger *log.Logger) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, lc.Level)
	}
	logger.SetLevel(level)

	switch lc.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, lc.Format)
	}

	return nil
}
