package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/persona-api/internal/config"
	"github.com/phrazzld/persona-api/internal/platform/randomuser"
	"github.com/phrazzld/persona-api/internal/service"
)

// application holds the shared, immutable dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	randomUserService *service.RandomUserService
	userService       *service.UserService
}

// newApplication wires the services. A contradictory endpoint schema is a
// programming error and fails startup here, never a request.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if err := service.CheckAll(); err != nil {
		return nil, fmt.Errorf("endpoint schemas are invalid: %w", err)
	}

	client, err := randomuser.NewClient(cfg.Upstream, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	randomUserService, err := service.NewRandomUserService(client, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create random user service: %w", err)
	}

	userService, err := service.NewUserService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"upstream_base_url", cfg.Upstream.BaseURL)

	return &application{
		config:            cfg,
		logger:            logger,
		randomUserService: randomUserService,
		userService:       userService,
	}, nil
}

// Run listens on the configured port and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if err := app.serve(ctx, ln, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
