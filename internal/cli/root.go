// Package cli wires the products-api commands: serve, migrate and config.
package cli

import (
	"context"
	"fmt"

	"github.com/deppfellow/products-api/internal/config"
	"github.com/deppfellow/products-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           config.ServiceName,
	Short:         "Products CRUD API over PostgreSQL",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors are printed to stderr before returning.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// runtime is what every command needs before doing its work.
type runtime struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
}

func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing New Relic: %w", err)
	}

	return &runtime{
		cfg:           cfg,
		loggerService: loggerService,
		log:           logger.NewLogger(cfg, loggerService),
	}, nil
}
