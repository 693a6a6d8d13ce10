// Package visitor maintains the sticky per-browser identity used to
// attribute upstream workflow state to the same visitor across sessions.
package visitor

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Infinityagi/chatkit-starter/internal/config"
)

// Service resolves and issues the visitor cookie.
type Service struct {
	cookie config.CookieConfig
}

// NewService builds a visitor service from cookie configuration.
func NewService(cookie config.CookieConfig) *Service {
	return &Service{cookie: cookie}
}

// Resolve returns the visitor id for the request, generating a fresh one
// when the cookie is missing or empty. isNew reports whether the id was
// generated on this call and should be written back to the response.
func (s *Service) Resolve(r *http.Request) (id string, isNew bool) {
	if c, err := r.Cookie(s.cookie.Name); err == nil {
		if value := strings.TrimSpace(c.Value); value != "" {
			return value, false
		}
	}
	return uuid.NewString(), true
}

// Issue writes the visitor cookie on the response. The cookie is scoped to
// the whole site, hidden from scripts, and marked Secure when the request
// arrived over HTTPS (directly or behind a forwarding proxy).
func (s *Service) Issue(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   s.cookie.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   requestIsSecure(r),
	})
}

func requestIsSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
