package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer, middlewares.Metrics)

	root.Mount("/api", apiRouter(app))
	root.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// driving the state machine
	api.Get("/screen", GetScreen(app))
	api.Post("/intents", PostIntent(app))
	api.Post("/retry", PostRetry(app))

	// read-only views of the stored data
	api.Get("/forms", ListForms(app))
	api.Get("/forms/{id}", GetFormById(app))
	api.Get("/forms/{id}/responses", GetFormResponses(app))

	return api
}
