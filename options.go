package datetok

import (
	"log/slog"

	"github.com/jamesainslie/go-datetok/pattern"
	"github.com/jamesainslie/go-datetok/table"
)

// Option configures a Dictionary.
type Option func(*config)

type config struct {
	cache  *pattern.Cache
	form   table.Form
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		cache:  pattern.Shared(),
		form:   table.FormNone,
		logger: slog.Default(),
	}
}

// WithCache sets the pattern cache (default: pattern.Shared()).
func WithCache(c *pattern.Cache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithNormalizationForm normalizes table keys with form (default: none).
func WithNormalizationForm(form table.Form) Option {
	return func(cfg *config) {
		cfg.form = form
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
