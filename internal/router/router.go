// Package router wires handlers and middleware into the chi route tree.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toyland-backend/internal/config"
	"toyland-backend/internal/errs"
	"toyland-backend/internal/handlers"
	"toyland-backend/internal/middleware"
	"toyland-backend/internal/notify"
	"toyland-backend/internal/respond"
)

type Deps struct {
	DB         handlers.Pinger
	Categories handlers.CategoryStore
	Toys       handlers.ToyStore
	Feedback   handlers.FeedbackStore
	Notifier   notify.Notifier
}

func New(cfg *config.Config, deps Deps) http.Handler {
	categoryHandler := handlers.NewCategoryHandler(deps.Categories)
	toyHandler := handlers.NewToyHandler(deps.Toys)
	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback, deps.Notifier)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, errs.NewNotFoundError("route not found"))
	})

	r.Get("/", healthHandler.Welcome)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))

		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{id}", categoryHandler.Get)

		r.Get("/toys", toyHandler.List)
		r.Get("/toys/{id}", toyHandler.Get)
		r.Get("/toysTitle/{text}", toyHandler.Search)
		r.Get("/totalToys", toyHandler.Count)
		r.Get("/myToys/{email}", toyHandler.ListByOwner)
		r.Get("/updateToy/{id}", toyHandler.Get)

		r.Post("/feedbacks", feedbackHandler.Submit)
		r.Get("/feedbacks", feedbackHandler.List)

		// Listing writes; guarded only when a JWT secret is configured.
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.Auth.JWTSecret))

			r.Post("/toys", toyHandler.Create)
			r.Put("/updateToy/{id}", toyHandler.Update)
			r.Delete("/updateToy/{id}", toyHandler.Delete)
		})
	})

	return r
}
