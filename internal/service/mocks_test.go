package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFetcher mocks the Fetcher interface.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

// upstreamBody builds a provider envelope around records.
func upstreamBody(records ...map[string]any) map[string]any {
	results := make([]any, 0, len(records))
	for _, r := range records {
		results = append(results, r)
	}
	return map[string]any{
		"results": results,
		"info":    map[string]any{"seed": "abc", "results": 1.0, "page": 1.0, "version": "1.4"},
	}
}

func adaRecord() map[string]any {
	return map[string]any{
		"gender": "female",
		"name":   map[string]any{"title": "Ms", "first": "Ada", "last": "Lovelace"},
		"location": map[string]any{
			"city":     "London",
			"country":  "United Kingdom",
			"postcode": "SW1A 1AA",
		},
		"email":      "ada@example.com",
		"login":      map[string]any{"uuid": "x", "username": "ada"},
		"registered": map[string]any{"date": "1990-05-12T10:00:00.000Z", "age": 34.0},
	}
}
