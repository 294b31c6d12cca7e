package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/atopal/blog-backend/internal/api/handlers"
	"github.com/atopal/blog-backend/internal/config"
	"github.com/atopal/blog-backend/internal/metrics"
	"github.com/atopal/blog-backend/internal/middleware"
	"github.com/atopal/blog-backend/internal/services"
)

// NewRouter wires the REST surface. Authorization happens in the
// services; the router only resolves identity and shapes the paths.
func NewRouter(cfg config.Config, identity *middleware.Identity, users *services.UserService, posts *services.PostService, comments *services.CommentService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)
	r.Use(identity.Handler)

	ph := handlers.NewPostHandler(posts)
	ch := handlers.NewCommentHandler(comments)
	uh := handlers.NewUserHandler(users)
	ah := handlers.NewAuthHandler(users)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", ph.List)
		r.Post("/", ph.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ph.Get)
			r.Put("/", ph.Update)
			r.Patch("/", ph.Update)
			r.Delete("/", ph.Delete)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Post("/", ch.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ch.Get)
			r.Put("/", ch.Update)
			r.Patch("/", ch.Update)
			r.Delete("/", ch.Delete)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", uh.List)
		r.Post("/register", uh.Register)
		r.Post("/login", ah.Login)
		r.Post("/refresh", ah.Refresh)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", uh.Get)
			r.Put("/", uh.Update)
			r.Patch("/", uh.Update)
			r.Delete("/", uh.Delete)
		})
	})

	return r
}
