// Package randomuser is the HTTP adapter for the random-user provider that
// backs the /random-* endpoints.
//
// The Client issues exactly one GET per Fetch, bounded by the configured
// timeout, and decodes the body into generic JSON values (objects as
// map[string]any, numbers as float64) for the schema validator to check.
// It does not interpret the payload. Every way the provider can fail to
// deliver a JSON document (transport error, timeout, non-2xx status,
// oversize or undecodable body) is reported as domain.ErrUpstreamUnavailable.
// No retries are attempted.
package randomuser
