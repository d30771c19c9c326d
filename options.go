package grille

import (
	"log/slog"

	"github.com/tsawler/grille/tables"
)

// ExtractOptions holds configuration for zone extraction.
type ExtractOptions struct {
	// Page selection (1-indexed), nil means all pages
	pages []int

	// Geometry and classification settings
	config tables.Config

	// Logger for per-page events, nil means slog.Default()
	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:  nil,
		config: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		config: o.config,
		logger: o.logger,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
