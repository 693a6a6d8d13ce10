package chatkit

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Infinityagi/chatkit-starter/internal/model/widget"
	chatkitService "github.com/Infinityagi/chatkit-starter/internal/service/chatkit"
	"github.com/Infinityagi/chatkit-starter/internal/service/visitor"
	"github.com/Infinityagi/chatkit-starter/pkg/utils"
)

// Handler serves the session-minting and widget-config endpoints.
type Handler struct {
	sessions *chatkitService.Service
	visitors *visitor.Service
	widgets  widget.Store
}

// New creates the chatkit handler.
func New(sessions *chatkitService.Service, visitors *visitor.Service, widgets widget.Store) *Handler {
	return &Handler{
		sessions: sessions,
		visitors: visitors,
		widgets:  widgets,
	}
}

// RegisterRoutes registers the chatkit routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chatkit/session", h.handleCreateSession)
	r.Get("/chatkit/config", h.handleWidgetConfig)
}

// handleCreateSession resolves the sticky visitor id, mints a session
// upstream, and hands the client secret to the widget. Upstream error
// statuses pass through; everything else degrades to a generic 500.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	visitorID, isNew := h.visitors.Resolve(r)
	if isNew {
		h.visitors.Issue(w, r, visitorID)
	}

	sess, err := h.sessions.CreateSession(r.Context(), visitorID)
	if err != nil {
		var upstream *chatkitService.UpstreamStatusError
		switch {
		case errors.As(err, &upstream):
			log.Printf("[session] upstream rejected request: status=%d message=%q", upstream.Status, upstream.Message)
			utils.RespondError(w, upstream.Status, upstream.Message)
		case errors.Is(err, chatkitService.ErrNotConfigured):
			log.Printf("[session] minting unavailable: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "chatkit is not configured on this server")
		default:
			log.Printf("[session] minting failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to create chatkit session")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, sess)
}

// handleWidgetConfig returns the demo constants the page renders with.
func (h *Handler) handleWidgetConfig(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.widgets.Get())
}
