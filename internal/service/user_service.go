package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/persona-api/internal/domain"
	"github.com/phrazzld/persona-api/internal/platform/logger"
	"github.com/phrazzld/persona-api/internal/projection"
	"github.com/phrazzld/persona-api/internal/schema"
)

// UserService validates client-submitted users.
type UserService struct {
	create *schema.Validator
	logger *slog.Logger
}

// NewUserService creates a UserService. It fails if the input schema is
// contradictory.
func NewUserService(logger *slog.Logger) (*UserService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	create, err := schema.New(CreateUserBody())
	if err != nil {
		return nil, NewServiceError("create_service", "create user schema", err)
	}

	return &UserService{
		create: create,
		logger: logger.With("component", "user_service"),
	}, nil
}

// CreateUser validates body and returns the normalized user: defaults
// applied, transforms run, undeclared keys dropped. On failure the error
// wraps domain.ErrValidation and the full schema.Violations list.
func (s *UserService) CreateUser(ctx context.Context, body any) (projection.User, error) {
	out := s.create.Validate(body)
	if !out.OK() {
		logger.FromContextOrDefault(ctx, s.logger).Debug("user body rejected",
			"violation_count", len(out.Violations()),
			"violation_paths", out.Violations().Paths())
		return projection.User{}, NewServiceError("create_user", "validate body",
			fmt.Errorf("%w: %w", domain.ErrValidation, out.Violations()))
	}

	rec, _ := out.Value().(map[string]any)
	return projection.ToUser(rec), nil
}
