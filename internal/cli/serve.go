package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/products-api/internal/database"
	"github.com/deppfellow/products-api/internal/handler"
	"github.com/deppfellow/products-api/internal/repository"
	"github.com/deppfellow/products-api/internal/router"
	"github.com/deppfellow/products-api/internal/server"
	"github.com/deppfellow/products-api/internal/service"
	"github.com/spf13/cobra"
)

// DefaultShutdownTimeout bounds how long in-flight requests may run after
// a termination signal.
const DefaultShutdownTimeout = 30 * time.Second

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := bootstrap()
		if err != nil {
			return err
		}

		if serveMigrate {
			if err := database.Migrate(ctx, &rt.log, rt.cfg); err != nil {
				rt.loggerService.Shutdown()
				return err
			}
		}

		srv, err := server.New(rt.cfg, &rt.log, rt.loggerService)
		if err != nil {
			rt.loggerService.Shutdown()
			return err
		}

		repos := repository.NewRepositories(srv)
		services := service.NewServices(srv, repos)
		handlers := handler.NewHandlers(srv, services)
		srv.SetupHTTPServer(router.NewRouter(srv, handlers))

		serveErr := make(chan error, 1)
		go func() {
			serveErr <- srv.Start()
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				rt.log.Error().Err(err).Msg("server stopped unexpectedly")
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer cancel()
			if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
				rt.log.Error().Err(shutdownErr).Msg("shutdown failed")
			}
			if err != nil {
				return fmt.Errorf("serving HTTP: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		rt.log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		rt.log.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
