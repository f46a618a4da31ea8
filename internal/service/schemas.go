package service

import (
	"errors"

	"github.com/phrazzld/persona-api/internal/schema"
)

// Endpoint schemas. Each upstream schema covers the provider's full
// envelope but declares only the record fields its endpoint projects, so an
// unrelated change elsewhere in the provider's payload is not a contract
// violation.

// PersonEnvelope is the response schema behind GET /random-person.
func PersonEnvelope() *schema.Schema {
	return envelope(schema.Object(
		schema.Required("name", schema.Object(
			schema.Required("first", schema.String()),
			schema.Required("last", schema.String()),
		)),
		schema.Required("location", schema.Object(
			schema.Required("country", schema.String()),
		)),
	))
}

// LoginEnvelope is the response schema behind GET /random-login.
func LoginEnvelope() *schema.Schema {
	return envelope(schema.Object(
		schema.Required("login", schema.Object(
			schema.Required("username", schema.String()),
		)),
		schema.Required("registered", schema.Object(
			schema.Required("date", schema.String().Format(schema.FormatDateTime)),
		)),
	))
}

// AddressEnvelope is the response schema behind GET /random-address.
// Postcodes arrive as strings in some locales and numbers in others.
func AddressEnvelope() *schema.Schema {
	return envelope(schema.Object(
		schema.Required("location", schema.Object(
			schema.Required("city", schema.String()),
			schema.Required("postcode", schema.Union(schema.String(), schema.Number())),
		)),
	))
}

// DefaultUserAge is substituted when a POST /users body omits age.
const DefaultUserAge = 28

// CreateUserBody is the input schema for POST /users.
func CreateUserBody() *schema.Schema {
	return schema.Object(
		schema.Required("name", schema.String().Len(3, 12)),
		schema.OptionalDefault("age", schema.Number().Range(18, 100), DefaultUserAge),
		schema.Required("email", schema.String().Email().Lower()),
	)
}

func envelope(record *schema.Schema) *schema.Schema {
	return schema.Object(
		schema.Required("results", schema.Array(record)),
	)
}

// NamedSchema pairs an endpoint with its schema.
type NamedSchema struct {
	Endpoint string
	Role     string
	Schema   *schema.Schema
}

// Catalog lists every endpoint schema in route order.
func Catalog() []NamedSchema {
	return []NamedSchema{
		{Endpoint: "GET /random-person", Role: "upstream response", Schema: PersonEnvelope()},
		{Endpoint: "GET /random-login", Role: "upstream response", Schema: LoginEnvelope()},
		{Endpoint: "GET /random-address", Role: "upstream response", Schema: AddressEnvelope()},
		{Endpoint: "POST /users", Role: "request body", Schema: CreateUserBody()},
	}
}

// CheckAll reports every contradiction in the catalog's schemas.
func CheckAll() error {
	var errs []error
	for _, ns := range Catalog() {
		if err := schema.Check(ns.Schema); err != nil {
			errs = append(errs, NewServiceError("check_schema", ns.Endpoint, err))
		}
	}
	return errors.Join(errs...)
}
