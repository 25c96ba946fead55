package tui

import (
	"github.com/tallyhq/tally/internal/session"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Session    *session.Session
	Theme      themes.Theme
	ExportPath string
	Width      int
	Height     int
	DueDays    int
	Demo       bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		ExportPath: "books.csv",
		Width:      100,
		Height:     30,
		DueDays:    30,
	}
}

// WithSession sets the record session the UI operates on.
func WithSession(s *session.Session) Option {
	return func(c *Config) {
		c.Session = s
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithDueDays sets the default due date offset prefilled on new invoices.
func WithDueDays(days int) Option {
	return func(c *Config) {
		if days > 0 {
			c.DueDays = days
		}
	}
}

// WithExportPath sets the default path offered by the export prompt.
func WithExportPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.ExportPath = path
		}
	}
}

// WithDemoData seeds the session with sample records on startup.
func WithDemoData(enabled bool) Option {
	return func(c *Config) {
		c.Demo = enabled
	}
}
