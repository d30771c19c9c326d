package grille

import (
	"errors"

	"github.com/tsawler/grille/reader"
)

var (
	// ErrNoInput is returned when no input file or source was given.
	ErrNoInput = errors.New("no input specified")

	// ErrUnsupportedFormat is returned when the input is neither a PDF
	// nor a page dump.
	ErrUnsupportedFormat = reader.ErrUnsupportedFormat
)

// PageError reports a page that could not be decoded.
type PageError = reader.PageError
