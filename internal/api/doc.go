// Package api handles incoming HTTP requests and response formatting. It
// adapts HTTP to the endpoint services: handlers decode requests, call a
// service, and map the returned value or error to a JSON response.
package api
