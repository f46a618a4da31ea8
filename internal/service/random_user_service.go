package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/persona-api/internal/domain"
	"github.com/phrazzld/persona-api/internal/platform/logger"
	"github.com/phrazzld/persona-api/internal/projection"
	"github.com/phrazzld/persona-api/internal/schema"
)

// Fetcher acquires one decoded JSON document from the upstream provider.
// Implementations return an error wrapping domain.ErrUpstreamUnavailable
// when the provider cannot be reached or answers with something unusable.
type Fetcher interface {
	Fetch(ctx context.Context) (any, error)
}

// RandomUserService serves the upstream-backed endpoints. It holds only
// immutable state and is safe for concurrent use.
type RandomUserService struct {
	fetcher Fetcher
	person  *schema.Validator
	login   *schema.Validator
	address *schema.Validator
	logger  *slog.Logger
}

// NewRandomUserService creates a RandomUserService. It fails if fetcher is
// nil or any endpoint schema is contradictory.
func NewRandomUserService(fetcher Fetcher, logger *slog.Logger) (*RandomUserService, error) {
	if fetcher == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "fetcher cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	person, err := schema.New(PersonEnvelope())
	if err != nil {
		return nil, NewServiceError("create_service", "person schema", err)
	}
	login, err := schema.New(LoginEnvelope())
	if err != nil {
		return nil, NewServiceError("create_service", "login schema", err)
	}
	address, err := schema.New(AddressEnvelope())
	if err != nil {
		return nil, NewServiceError("create_service", "address schema", err)
	}

	return &RandomUserService{
		fetcher: fetcher,
		person:  person,
		login:   login,
		address: address,
		logger:  logger.With("component", "random_user_service"),
	}, nil
}

// RandomPerson fetches one random user and projects it to a Person.
func (s *RandomUserService) RandomPerson(ctx context.Context) (projection.Person, error) {
	rec, err := s.firstRecord(ctx, "random_person", s.person)
	if err != nil {
		return projection.Person{}, err
	}
	return projection.ToPerson(rec), nil
}

// RandomLogin fetches one random user and projects it to a Login.
func (s *RandomUserService) RandomLogin(ctx context.Context) (projection.Login, error) {
	rec, err := s.firstRecord(ctx, "random_login", s.login)
	if err != nil {
		return projection.Login{}, err
	}
	return projection.ToLogin(rec), nil
}

// RandomAddress fetches one random user and projects it to an Address.
func (s *RandomUserService) RandomAddress(ctx context.Context) (projection.Address, error) {
	rec, err := s.firstRecord(ctx, "random_address", s.address)
	if err != nil {
		return projection.Address{}, err
	}
	return projection.ToAddress(rec), nil
}

// firstRecord runs fetch, validate and the empty check, returning the first
// validated record. The upstream is called exactly once.
func (s *RandomUserService) firstRecord(
	ctx context.Context,
	op string,
	v *schema.Validator,
) (projection.Record, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With("operation", op)

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
		}
		return nil, NewServiceError(op, "fetch upstream", err)
	}

	out := v.Validate(raw)
	if !out.OK() {
		log.Warn("upstream response violates schema",
			"violation_count", len(out.Violations()),
			"violation_paths", out.Violations().Paths())
		return nil, NewServiceError(op, "validate upstream response",
			fmt.Errorf("%w: %w", domain.ErrUpstreamContract, out.Violations()))
	}

	results, _ := out.Value().(map[string]any)["results"].([]any)
	if len(results) == 0 {
		return nil, NewServiceError(op, "select first record", domain.ErrEmptyResult)
	}

	rec, _ := results[0].(map[string]any)
	log.Debug("upstream record accepted", "result_count", len(results))
	return rec, nil
}
