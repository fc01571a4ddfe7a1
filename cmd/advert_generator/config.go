package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/advert-generator/internal/advert"
	"github.com/jonathan/advert-generator/internal/config"
	"github.com/jonathan/advert-generator/internal/logging"
)

// resolveConfig merges configuration sources. Precedence: flags, then
// environment, then the config file, then built-in defaults.
func resolveConfig(flags config.Config, configPath string, lookup func(string) string) (config.Config, error) {
	cfg := flags.MergeWithDefaults(config.FromEnv(lookup))

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newGenerator builds the logger and the Gemini-backed generator for cfg.
func newGenerator(cfg config.Config) (*advert.Generator, *zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	if cfg.APIKey == "" {
		logger.Warn("no API key configured; generation will fail until one is provided",
			zap.String("env", config.EnvAPIKey))
	}

	gen := advert.NewGenerator(
		advert.Config{APIKey: cfg.APIKey, LLM: cfg.LLMConfig()},
		advert.WithLogger(logger.Named("advert")),
	)
	logger.Debug("generator configured", zap.String("model", gen.Model()))
	return gen, logger, nil
}
