package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/persona-api/internal/api"
	apiMiddleware "github.com/phrazzld/persona-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.Recover)

	randomUserHandler := api.NewRandomUserHandler(app.randomUserService)
	userHandler := api.NewUserHandler(app.userService)

	r.Get("/ping", api.Ping)
	r.Get("/random-person", randomUserHandler.RandomPerson)
	r.Get("/random-login", randomUserHandler.RandomLogin)
	r.Get("/random-address", randomUserHandler.RandomAddress)
	r.Post("/users", userHandler.CreateUser)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	return r
}
