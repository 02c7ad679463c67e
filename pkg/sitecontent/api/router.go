package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// RouterConfig carries the dependencies of the HTTP surface. The
// authorizer is injected here, once, instead of being decided inside
// handlers.
type RouterConfig struct {
	Service    sitecontent.Service
	Authorizer Authorizer

	// Subscriber is optional; when nil the newsletter route is not
	// registered.
	Subscriber NewsletterSubscriber
}

// NewRouter assembles the full HTTP surface: an authorized admin API
// under /api/v1 and an unauthenticated public read API under /public.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RequireAdmin(cfg.Authorizer))
		r.Mount("/sections", NewSectionHandler(cfg.Service).Routes())
		r.Mount("/media", NewMediaHandler(cfg.Service).Routes())
	})

	public := NewPublicHandler(cfg.Service)
	r.Route("/public", func(r chi.Router) {
		r.Get("/sections", public.GetPublishedSections)
		if cfg.Subscriber != nil {
			r.Post("/newsletter", NewNewsletterHandler(cfg.Subscriber).Subscribe)
		}
	})

	return r
}
