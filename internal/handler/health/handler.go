package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Infinityagi/chatkit-starter/pkg/utils"
)

// Handler exposes the liveness endpoint.
type Handler struct {
	version string
}

// New creates the health handler.
func New(version string) *Handler {
	return &Handler{version: version}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
