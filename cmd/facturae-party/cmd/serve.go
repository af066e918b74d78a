package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/facturio/facturae-party/internal/config"
	"github.com/facturio/facturae-party/internal/server"
)

var (
	configPath  string
	serverAddr  string
	serverDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for rendering Facturae party fragments.

The API provides endpoints for:
  - POST /api/v1/format/centre - Render an AdministrativeCentre fragment
  - POST /api/v1/format/party  - Render TaxIdentification and party blocks
  - POST /api/v1/validate      - Check a party record
  - GET  /health               - Health check

Examples:
  # Start server with defaults
  facturae-party serve

  # Start with a config file
  facturae-party serve --config config.yml

  # Start on a custom address in debug mode
  facturae-party serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")
	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if serverAddr != "" {
		cfg.Server.Address = serverAddr
	}
	if serverDebug {
		cfg.Server.Debug = true
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	srv := server.NewServer(&server.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		Debug:        cfg.Server.Debug,
		Logger:       log,
	})

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down server")
		os.Exit(0)
	}()

	log.Info().Str("address", cfg.Server.Address).Msg("starting server")
	return srv.Run()
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
