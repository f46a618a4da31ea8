// Package domain defines the error taxonomy shared by the service and API
// layers. Each failure a request can end in is represented by one sentinel
// error so that callers classify outcomes with errors.Is rather than by
// inspecting messages.
package domain
