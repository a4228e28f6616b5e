// Command api runs the employee HTTP API.
//
// Startup order: config -> logger -> migrations -> server container ->
// repositories -> services -> handlers -> middlewares -> router. The
// process then serves until SIGINT/SIGTERM and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stafflane/employee-api/internal/config"
	"github.com/stafflane/employee-api/internal/database"
	"github.com/stafflane/employee-api/internal/handler"
	loggerPkg "github.com/stafflane/employee-api/internal/logger"
	"github.com/stafflane/employee-api/internal/middleware"
	"github.com/stafflane/employee-api/internal/repository"
	"github.com/stafflane/employee-api/internal/router"
	"github.com/stafflane/employee-api/internal/server"
	"github.com/stafflane/employee-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "employee-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := loggerPkg.New(cfg)

	if err := database.Migrate(context.Background(), &logger, cfg); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	s, err := server.New(cfg, &logger)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	// Explicit constructor wiring, leaf to root: repositories feed services,
	// services feed handlers.
	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}
