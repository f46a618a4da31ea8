// Package service orchestrates the endpoint pipelines: fetch or decode
// untrusted data, validate it against the endpoint's schema, and project the
// validated value into a response body.
//
// Services never write HTTP responses. They return projected values or
// errors wrapping the sentinels in the domain package, and the API layer
// maps those to status codes.
package service
