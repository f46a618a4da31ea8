package domain

import "errors"

// Request failure categories.
var (
	// ErrUpstreamUnavailable is returned when the upstream provider could not
	// be reached or did not answer with a usable JSON body: transport errors,
	// timeouts, non-success status codes and undecodable bodies.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamContract is returned when the upstream body decoded but does
	// not match the response schema the endpoint expects.
	ErrUpstreamContract = errors.New("upstream contract violation")

	// ErrEmptyResult is returned when a valid upstream envelope carries no
	// records.
	ErrEmptyResult = errors.New("no results")

	// ErrValidation is returned when a client-submitted body fails its input
	// schema. It is wrapped together with the schema.Violations describing
	// every failure.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidBody is returned when a client-submitted body is not JSON.
	ErrInvalidBody = errors.New("invalid request body")
)
