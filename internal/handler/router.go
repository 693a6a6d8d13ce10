package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatkitHandler "github.com/Infinityagi/chatkit-starter/internal/handler/chatkit"
	healthHandler "github.com/Infinityagi/chatkit-starter/internal/handler/health"
	middlewarePkg "github.com/Infinityagi/chatkit-starter/internal/middleware"
	"github.com/Infinityagi/chatkit-starter/internal/model/widget"
	chatkitService "github.com/Infinityagi/chatkit-starter/internal/service/chatkit"
	"github.com/Infinityagi/chatkit-starter/internal/service/visitor"
	"github.com/Infinityagi/chatkit-starter/internal/web"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(version string, sessions *chatkitService.Service, visitors *visitor.Service, widgets widget.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		healthHandler.New(version).RegisterRoutes(api)
		chatkitHandler.New(sessions, visitors, widgets).RegisterRoutes(api)
	})

	// Everything else is the embedded demo frontend.
	r.NotFound(web.Handler().ServeHTTP)

	return r
}
