package widget

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StartPrompt is a suggested opener rendered by the widget before the first
// message is sent.
type StartPrompt struct {
	Label  string `json:"label" yaml:"label"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Icon   string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// ClientTool names a widget callback the page handles locally.
type ClientTool struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Theme holds the color tokens the page applies for one color scheme.
type Theme struct {
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Text       string `json:"text" yaml:"text"`
}

// Config captures the demo constants exposed to the frontend: greeting,
// starter prompts, composer placeholder, theme tokens, and the client tool
// names the page is prepared to handle.
type Config struct {
	Greeting    string        `json:"greeting" yaml:"greeting"`
	Placeholder string        `json:"placeholder" yaml:"placeholder"`
	Prompts     []StartPrompt `json:"prompts" yaml:"prompts"`
	Tools       []ClientTool  `json:"tools" yaml:"tools"`
	LightTheme  Theme         `json:"lightTheme" yaml:"light_theme"`
	DarkTheme   Theme         `json:"darkTheme" yaml:"dark_theme"`
}

// Seed provides the default widget configuration for the demo.
func Seed() Config {
	return Config{
		Greeting:    "What can I help you with today?",
		Placeholder: "Ask anything...",
		Prompts: []StartPrompt{
			{Label: "What can you do?", Prompt: "What can you do?", Icon: "circle-question"},
			{Label: "Switch to dark mode", Prompt: "Switch the page to dark mode.", Icon: "moon"},
			{Label: "Remember a fact", Prompt: "Remember that my favorite color is teal.", Icon: "lightbulb"},
		},
		Tools: []ClientTool{
			{Name: "switch_theme", Description: "Switch the page color scheme to light or dark."},
			{Name: "record_fact", Description: "Save a short fact about the visitor in the page's fact list."},
		},
		LightTheme: Theme{
			Accent:     "#1a73e8",
			Background: "#f7f7f8",
			Surface:    "#ffffff",
			Text:       "#1f1f1f",
		},
		DarkTheme: Theme{
			Accent:     "#8ab4f8",
			Background: "#17181c",
			Surface:    "#222329",
			Text:       "#ececec",
		},
	}
}

// LoadFile reads a YAML override file and merges it over the seed defaults.
// Empty fields in the file keep their seeded values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read widget config: %w", err)
	}

	cfg := Seed()
	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, fmt.Errorf("parse widget config: %w", err)
	}

	cfg.merge(override)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.Greeting != "" {
		c.Greeting = o.Greeting
	}
	if o.Placeholder != "" {
		c.Placeholder = o.Placeholder
	}
	if len(o.Prompts) > 0 {
		c.Prompts = o.Prompts
	}
	if len(o.Tools) > 0 {
		c.Tools = o.Tools
	}
	c.LightTheme.merge(o.LightTheme)
	c.DarkTheme.merge(o.DarkTheme)
}

func (t *Theme) merge(o Theme) {
	if o.Accent != "" {
		t.Accent = o.Accent
	}
	if o.Background != "" {
		t.Background = o.Background
	}
	if o.Surface != "" {
		t.Surface = o.Surface
	}
	if o.Text != "" {
		t.Text = o.Text
	}
}
