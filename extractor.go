package grille

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tsawler/grille/model"
	"github.com/tsawler/grille/reader"
	"github.com/tsawler/grille/tables"
)

// Extractor provides a fluent interface for extracting zoning grids.
// Each configuration method returns a new Extractor instance, so a
// partially configured Extractor can be reused as a template.
type Extractor struct {
	// Source
	filename string
	source   reader.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		if e.source == nil {
			return ErrNoInput
		}
		return nil
	}
	if e.filename == "" {
		return ErrNoInput
	}

	src, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.filename, err)
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases the source if the Extractor opened it.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	zones, _, err := grille.Open("grilles.pdf").Pages(12, 13).Zones()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	zones, _, err := grille.Open("grilles.pdf").PageRange(12, 30).Zones()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithConfig replaces the geometry and classification settings. An
// invalid configuration is reported by the terminal operation.
func (e *Extractor) WithConfig(config tables.Config) *Extractor {
	newExt := e.clone()
	if err := config.Validate(); err != nil && newExt.err == nil {
		newExt.err = fmt.Errorf("invalid config: %w", err)
	}
	newExt.options.config = config
	return newExt
}

// CarryGroup keeps the current usage group from one page to the next
// instead of resetting it on every page.
func (e *Extractor) CarryGroup() *Extractor {
	newExt := e.clone()
	newExt.options.config.CarryGroupAcrossPages = true
	return newExt
}

// WithLogger sets the logger for per-page events.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Zones extracts the zoning grid from the configured pages and returns
// the normalized registry. This is a terminal operation that closes a
// source opened by the Extractor.
//
// Pages that cannot be decoded are skipped and reported as warnings, as
// are pages without a zone header row.
//
// Example:
//
//	zones, warnings, err := grille.Open("grilles.pdf").Zones()
//	for _, z := range zones.Records() {
//	    fmt.Println(z.Code, z.MargeAvant, z.Dominante)
//	}
func (e *Extractor) Zones() (*model.Registry, []Warning, error) {
	results, warnings, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return results.registry, warnings, nil
}

// PageResults extracts like Zones and also returns what each folded page
// contributed, in page order. Skipped pages have no entry.
func (e *Extractor) PageResults() (*model.Registry, []tables.PageResult, []Warning, error) {
	results, warnings, err := e.run()
	if err != nil {
		return nil, nil, nil, err
	}
	return results.registry, results.pages, warnings, nil
}

// PageCount returns the number of pages in the input. The source stays
// open until Close.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.source.NumPages(), nil
}

type runResults struct {
	registry *model.Registry
	pages    []tables.PageResult
}

// run folds the selected pages in document order into a fresh registry.
func (e *Extractor) run() (runResults, []Warning, error) {
	if e.err != nil {
		return runResults{}, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return runResults{}, nil, err
	}
	defer e.Close()

	pageNums, err := e.resolvePages()
	if err != nil {
		return runResults{}, nil, err
	}

	ext := tables.NewExtractor()
	if err := ext.Configure(e.options.config); err != nil {
		return runResults{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	ext.SetLogger(e.options.logger)
	logger := e.logger()

	var warnings []Warning
	results := runResults{}
	state := ext.NewState()

	for _, n := range pageNums {
		page, err := e.source.Page(n)
		if err != nil {
			logger.Warn("skipping page", "page", n, "error", err)
			cause := err
			var pageErr *PageError
			if errors.As(err, &pageErr) {
				cause = pageErr.Err
			}
			warnings = append(warnings, Warning{
				Code:    WarningPageSkipped,
				Page:    n,
				Message: cause.Error(),
			})
			continue
		}

		res := ext.ProcessPage(state, page)
		if !res.HasHeader() {
			warnings = append(warnings, Warning{
				Code:    WarningNoHeader,
				Page:    n,
				Message: "no zone header row",
			})
		}
		results.pages = append(results.pages, res)
	}

	tables.Normalize(state.Registry)
	if state.Registry.Len() == 0 {
		warnings = append(warnings, Warning{
			Code:    WarningNoZones,
			Message: fmt.Sprintf("no zones found in %d page(s)", len(pageNums)),
		})
	}

	results.registry = state.Registry
	return results, warnings, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.options.logger != nil {
		return e.options.logger
	}
	return slog.Default()
}

// resolvePages returns the selected 1-indexed page numbers, sorted and
// without duplicates.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.source.NumPages()

	if len(e.options.pages) == 0 {
		pageNums := make([]int, pageCount)
		for i := range pageNums {
			pageNums[i] = i + 1
		}
		return pageNums, nil
	}

	seen := make(map[int]bool)
	var pageNums []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pageNums = append(pageNums, p)
		}
	}

	sort.Ints(pageNums)
	return pageNums, nil
}
