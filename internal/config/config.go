package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every configurable part of the service.
type Config struct {
	Server  ServerConfig
	ChatKit ChatKitConfig
	Cookie  CookieConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chatkit, err := loadChatKitConfig()
	if err != nil {
		return nil, err
	}

	cookie, err := loadCookieConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, ChatKit: chatkit, Cookie: cookie}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ChatKitConfig describes the upstream workflow-execution API.
type ChatKitConfig struct {
	APIKey           string
	WorkflowID       string
	BaseURL          string
	TimeoutSeconds   int
	WidgetConfigPath string
}

// Enabled reports whether the credentials needed to mint sessions are set.
func (c ChatKitConfig) Enabled() bool {
	return c.APIKey != "" && c.WorkflowID != ""
}

func loadChatKitConfig() (ChatKitConfig, error) {
	timeout := 30
	if override, err := parseOptionalIntEnv("CHATKIT_TIMEOUT"); err != nil {
		return ChatKitConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ChatKitConfig{}, fmt.Errorf("CHATKIT_TIMEOUT must be at least 1 second, got %d", *override)
		}
		timeout = *override
	}

	return ChatKitConfig{
		APIKey:           strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		WorkflowID:       strings.TrimSpace(os.Getenv("CHATKIT_WORKFLOW_ID")),
		BaseURL:          strings.TrimRight(getEnvOrDefault("CHATKIT_API_BASE", "https://api.openai.com"), "/"),
		TimeoutSeconds:   timeout,
		WidgetConfigPath: strings.TrimSpace(os.Getenv("CHATKIT_WIDGET_CONFIG")),
	}, nil
}

// CookieConfig describes the sticky visitor cookie.
type CookieConfig struct {
	Name   string
	MaxAge int
}

func loadCookieConfig() (CookieConfig, error) {
	maxAge := 365 * 24 * 60 * 60
	if override, err := parseOptionalIntEnv("CHATKIT_COOKIE_MAX_AGE"); err != nil {
		return CookieConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return CookieConfig{}, fmt.Errorf("CHATKIT_COOKIE_MAX_AGE must be positive, got %d", *override)
		}
		maxAge = *override
	}

	name := getEnvOrDefault("CHATKIT_COOKIE_NAME", "chatkit_user_id")
	if strings.ContainsAny(name, " ;,=") {
		return CookieConfig{}, fmt.Errorf("invalid CHATKIT_COOKIE_NAME value: %q", name)
	}

	return CookieConfig{Name: name, MaxAge: maxAge}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
