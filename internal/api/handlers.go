package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/persona-api/internal/api/shared"
	"github.com/phrazzld/persona-api/internal/domain"
	"github.com/phrazzld/persona-api/internal/platform/logger"
	"github.com/phrazzld/persona-api/internal/projection"
	"github.com/phrazzld/persona-api/internal/redact"
	"github.com/phrazzld/persona-api/internal/schema"
	"github.com/phrazzld/persona-api/internal/service"
)

// PingResponse is the GET /ping response body.
type PingResponse struct {
	Message string `json:"message"`
}

// Ping handles GET /ping.
func Ping(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, PingResponse{Message: "pong"})
}

// NotFound handles requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed handles known routes requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// RandomUserService is what RandomUserHandler needs from the service layer.
type RandomUserService interface {
	RandomPerson(ctx context.Context) (projection.Person, error)
	RandomLogin(ctx context.Context) (projection.Login, error)
	RandomAddress(ctx context.Context) (projection.Address, error)
}

// RandomUserHandler handles the upstream-backed /random-* endpoints.
type RandomUserHandler struct {
	service RandomUserService
}

// NewRandomUserHandler creates a new RandomUserHandler.
func NewRandomUserHandler(svc RandomUserService) *RandomUserHandler {
	return &RandomUserHandler{service: svc}
}

// RandomPerson handles GET /random-person.
func (h *RandomUserHandler) RandomPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.RandomPerson(r.Context())
	respondUpstream(w, r, MsgPersonFailed, person, err)
}

// RandomLogin handles GET /random-login.
func (h *RandomUserHandler) RandomLogin(w http.ResponseWriter, r *http.Request) {
	login, err := h.service.RandomLogin(r.Context())
	respondUpstream(w, r, MsgLoginFailed, login, err)
}

// RandomAddress handles GET /random-address.
func (h *RandomUserHandler) RandomAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.service.RandomAddress(r.Context())
	respondUpstream(w, r, MsgAddressFailed, address, err)
}

// respondUpstream writes exactly one response for an upstream-backed endpoint.
func respondUpstream(w http.ResponseWriter, r *http.Request, failure string, body any, err error) {
	if err != nil {
		opts := []shared.ResponseOption{
			shared.WithLogAttrs(slog.String("error_kind", service.ErrorKind(err))),
		}
		if errors.Is(err, domain.ErrEmptyResult) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err, failure), err, opts...)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// UserService is what UserHandler needs from the service layer.
type UserService interface {
	CreateUser(ctx context.Context, body any) (projection.User, error)
}

// UserHandler handles POST /users.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// CreateUser handles POST /users. It answers 201 with the normalized user,
// or 400 with every violation found in the body.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := shared.DecodeJSON(r, &body); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrInvalidBody, err)
		logger.FromContext(r.Context()).Debug("request body not decodable",
			"error", redact.Error(err),
			"error_kind", service.ErrorKind(err))
		shared.RespondWithViolations(w, r, schema.Violations{
			{Path: schema.Path{}, Message: bodyErrorMessage(err)},
		})
		return
	}

	user, err := h.service.CreateUser(r.Context(), body)
	if err != nil {
		var vs schema.Violations
		if errors.As(err, &vs) {
			shared.RespondWithViolations(w, r, vs)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnexpected, err,
			shared.WithLogAttrs(slog.String("error_kind", service.ErrorKind(err))))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

func bodyErrorMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "request body is empty"
	case errors.Is(err, shared.ErrBodyTooLarge):
		return "request body too large"
	default:
		return "request body is not valid JSON"
	}
}
