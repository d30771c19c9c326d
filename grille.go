// Package grille reconstructs zoning grids from the positioned text of
// municipal by-law PDFs.
//
// A zoning grid is a table whose columns are zones ("204", "604-Ia") and
// whose rows carry setback margins, permitted usages marked with an "X",
// and a dominant-use code. grille rebuilds the table from geometry alone
// and returns a registry keyed by zone code.
//
// Basic usage:
//
//	zones, warnings, err := grille.Open("grilles.pdf").Zones()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", grille.FormatWarnings(warnings))
//	}
//
// With options:
//
//	cfg := tables.DefaultConfig()
//	cfg.UsageRadius = 40
//
//	zones, _, err := grille.Open("grilles.pdf").
//	    PageRange(12, 30).
//	    WithConfig(cfg).
//	    WithLogger(logger).
//	    Zones()
//
// Page dumps in JSON or JSON Lines are accepted in place of a PDF. For
// other inputs, implement reader.Source and use [FromSource].
package grille

import (
	"github.com/tsawler/grille/reader"
)

// Open opens a PDF or page dump and returns an Extractor for fluent
// configuration. The file is opened lazily by the first terminal
// operation; Zones closes it when done, other terminal operations leave
// it open until Close.
//
// Example:
//
//	zones, warnings, err := grille.Open("grilles.pdf").Zones()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-opened source.
// The caller is responsible for closing the source.
//
// Example:
//
//	src, err := reader.OpenJSONLines("pages.jsonl")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	zones, warnings, err := grille.FromSource(src).Zones()
func FromSource(src reader.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	count := grille.Must(grille.Open("grilles.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustZones is a helper that wraps a call to Zones() and panics if the
// error is non-nil. Warnings are discarded.
//
// Example:
//
//	zones := grille.MustZones(grille.Open("grilles.pdf").Zones())
func MustZones[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
