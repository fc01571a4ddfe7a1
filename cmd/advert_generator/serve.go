package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/advert-generator/internal/config"
	"github.com/jonathan/advert-generator/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveAPIKey     string
	serveModel      string
	serveLogLevel   string
	serveLogFormat  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the advert generator web server",
	Long: `Start an HTTP server that serves the advert form and the JSON API.

Configuration can be loaded from a JSON file using --config. Flags override
environment variables, which override config file values. The API key is read
from GEMINI_API_KEY (or API_KEY); without one the server still starts and
each generation reports the missing key.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model name (default gemini-2.5-flash)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: console or json")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Port:      servePort,
		APIKey:    serveAPIKey,
		Model:     serveModel,
		LogLevel:  serveLogLevel,
		LogFormat: serveLogFormat,
	}, serveConfigPath, os.Getenv)
	if err != nil {
		return err
	}

	gen, logger, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Generator: gen,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
