// Package chatkit mints short-lived widget credentials by proxying session
// requests to the upstream workflow-execution API.
package chatkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Infinityagi/chatkit-starter/internal/config"
	"github.com/Infinityagi/chatkit-starter/internal/model/session"
)

const (
	sessionsPath = "/v1/chatkit/sessions"
	betaHeader   = "chatkit_beta=v1"

	// Upstream error bodies are small; anything past this is noise.
	maxErrorBody = 64 << 10
)

var (
	ErrNotConfigured = errors.New("chatkit credentials are not configured")
)

// UpstreamStatusError reports a non-2xx upstream reply whose status should
// be passed through to the browser together with a normalized message.
type UpstreamStatusError struct {
	Status  int
	Message string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// Service talks to the upstream sessions endpoint.
type Service struct {
	cfg    config.ChatKitConfig
	client *http.Client
}

// NewService builds the upstream client from configuration.
func NewService(cfg config.ChatKitConfig) *Service {
	return &Service{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Enabled reports whether the service holds the credentials it needs.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled()
}

// CreateSession requests a session for the given visitor id and returns the
// client secret to hand to the widget. A non-2xx upstream reply surfaces as
// *UpstreamStatusError; every other failure wraps the underlying cause.
func (s *Service) CreateSession(ctx context.Context, visitorID string) (session.Session, error) {
	if !s.cfg.Enabled() {
		return session.Session{}, ErrNotConfigured
	}
	if visitorID == "" {
		return session.Session{}, errors.New("visitor id is required")
	}

	payload, err := json.Marshal(session.UpstreamRequest{
		Workflow: session.Workflow{ID: s.cfg.WorkflowID},
		User:     visitorID,
	})
	if err != nil {
		return session.Session{}, fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+sessionsPath, bytes.NewReader(payload))
	if err != nil {
		return session.Session{}, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", betaHeader)

	resp, err := s.client.Do(req)
	if err != nil {
		return session.Session{}, fmt.Errorf("call sessions endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return session.Session{}, fmt.Errorf("read sessions response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return session.Session{}, &UpstreamStatusError{
			Status:  resp.StatusCode,
			Message: normalizeErrorBody(body),
		}
	}

	var parsed session.UpstreamResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return session.Session{}, fmt.Errorf("decode sessions response: %w", err)
	}
	if parsed.ClientSecret == "" {
		return session.Session{}, errors.New("sessions response missing client_secret")
	}

	return session.Session{
		ClientSecret: parsed.ClientSecret,
		ExpiresAfter: parsed.ExpiresAfter,
	}, nil
}

// normalizeErrorBody extracts human-readable text from an upstream error
// body: the nested error.message, then a top-level message, then the raw
// body, then a generic fallback.
func normalizeErrorBody(body []byte) string {
	var parsed session.UpstreamResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := parsed.ErrorMessage(); msg != "" {
			return msg
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return "failed to create chatkit session"
}
