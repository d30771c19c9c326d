package tables

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/grille/layout"
	"github.com/tsawler/grille/model"
)

// Config holds extraction configuration
type Config struct {
	// RowTolerance is the baseline distance that separates two rows
	RowTolerance float64

	// LeftMargin separates row labels from data cells: only runs whose
	// origin is strictly right of it carry values
	LeftMargin float64

	// UsageRadius is the acceptance radius for usage marks
	UsageRadius float64

	// DominanceRadius is the acceptance radius for dominance codes
	DominanceRadius float64

	// MarginRadius is the acceptance radius for margin characters
	MarginRadius float64

	// DefaultGroup is the usage group before any group label row
	DefaultGroup string

	// CarryGroupAcrossPages keeps the current group from one page to the
	// next instead of resetting it to DefaultGroup on every page
	CarryGroupAcrossPages bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowTolerance:    layout.DefaultRowConfig().Tolerance,
		LeftMargin:      200,
		UsageRadius:     45,
		DominanceRadius: 45,
		MarginRadius:    55,
		DefaultGroup:    DefaultGroup,
	}
}

// Validate checks that distances are usable
func (c Config) Validate() error {
	if c.RowTolerance <= 0 {
		return fmt.Errorf("row tolerance must be positive, got %v", c.RowTolerance)
	}
	if c.UsageRadius < 0 || c.DominanceRadius < 0 || c.MarginRadius < 0 {
		return fmt.Errorf("acceptance radii must not be negative")
	}
	if strings.TrimSpace(c.DefaultGroup) == "" {
		return fmt.Errorf("default group must not be empty")
	}
	return nil
}

// State is the mutable state of one extraction run. It is owned by the run
// and must not be shared between concurrent runs.
type State struct {
	Registry     *model.Registry
	CurrentGroup string
}

// NewState creates the state of a new run
func NewState(defaultGroup string) *State {
	return &State{
		Registry:     model.NewRegistry(),
		CurrentGroup: defaultGroup,
	}
}

// PageResult summarizes what a page contributed
type PageResult struct {
	Page        int
	Rows        int
	HeaderRow   int
	Columns     []model.ZoneColumn
	Usages      int
	Dominances  int
	MarginChars int
}

// HasHeader reports whether a header row was found on the page
func (r PageResult) HasHeader() bool {
	return r.HeaderRow >= 0
}

// Extractor folds the rows of grid pages into a zone registry
type Extractor struct {
	config Config
	rows   *layout.RowDetector
	logger *slog.Logger
}

// NewExtractor creates an extractor with default configuration
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom configuration
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{
		config: config,
		rows:   layout.NewRowDetectorWithConfig(layout.RowConfig{Tolerance: config.RowTolerance}),
		logger: slog.Default(),
	}
}

// Configure sets the extractor configuration
func (e *Extractor) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	e.config = config
	e.rows = layout.NewRowDetectorWithConfig(layout.RowConfig{Tolerance: config.RowTolerance})
	return nil
}

// Config returns the extractor configuration
func (e *Extractor) Config() Config {
	return e.config
}

// SetLogger sets the logger used for page diagnostics. A nil logger
// restores slog.Default().
func (e *Extractor) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	e.logger = logger
}

// NewState creates a run state using the extractor's default group
func (e *Extractor) NewState() *State {
	return NewState(e.config.DefaultGroup)
}

// Run extracts and normalizes the zones of all pages, in order.
func (e *Extractor) Run(pages []model.Page) *model.Registry {
	state := e.NewState()
	for _, page := range pages {
		e.ProcessPage(state, page)
	}
	Normalize(state.Registry)
	return state.Registry
}

// ProcessPage folds one page into state. Pages without a header row leave
// the registry untouched.
func (e *Extractor) ProcessPage(state *State, page model.Page) PageResult {
	rows := e.rows.Detect(page.Runs)
	result := PageResult{Page: page.Number, Rows: len(rows), HeaderRow: -1}

	header, ok := LocateHeader(rows)
	if !ok || len(header.Columns) == 0 {
		e.logger.Info("no grid header on page", "page", page.Number, "rows", len(rows))
		return result
	}
	result.HeaderRow = header.RowIndex
	result.Columns = header.Columns

	if !e.config.CarryGroupAcrossPages {
		state.CurrentGroup = e.config.DefaultGroup
	}

	for _, row := range rows[header.RowIndex+1:] {
		e.applyRow(state, header.Columns, row, &result)
	}

	e.logger.Debug("grid page processed",
		"page", page.Number,
		"rows", len(rows),
		"zones", len(header.Columns),
		"usages", result.Usages,
		"dominances", result.Dominances,
		"margin_chars", result.MarginChars,
	)
	return result
}

func (e *Extractor) applyRow(state *State, columns []model.ZoneColumn, row layout.Row, result *PageResult) {
	class := Classify(row, e.config.LeftMargin)

	switch class.Kind {
	case RowGroupHeader:
		state.CurrentGroup = class.Group
	case RowUsage:
		result.Usages += e.extractUsages(state, columns, row, class.UsageCode)
	case RowDominance:
		result.Dominances += e.extractDominance(state, columns, row)
	case RowMargin:
		result.MarginChars += e.extractMargin(state, columns, row, class.Margin)
	}
}

// extractUsages records the usage for every zone with an X mark in the row.
func (e *Extractor) extractUsages(state *State, columns []model.ZoneColumn, row layout.Row, code string) int {
	added := 0
	usage := model.Usage{Code: code, Group: state.CurrentGroup}

	for _, run := range row.RunsRightOf(e.config.LeftMargin) {
		for i, ch := range []rune(run.Text) {
			if ch != 'X' && ch != 'x' {
				continue
			}
			col, ok := Assign(run.CharCenterX(i), columns, e.config.UsageRadius)
			if !ok {
				continue
			}
			if state.Registry.AddUsage(col.Code, usage) {
				added++
			}
		}
	}
	return added
}

// extractDominance sets the dominant use of the zone under each dominance code.
func (e *Extractor) extractDominance(state *State, columns []model.ZoneColumn, row layout.Row) int {
	assigned := 0
	for _, run := range row.RunsRightOf(e.config.LeftMargin) {
		code := strings.TrimSpace(run.Text)
		if !IsDominanceCode(code) {
			continue
		}
		col, ok := Assign(run.CenterX(), columns, e.config.DominanceRadius)
		if !ok {
			continue
		}
		state.Registry.SetDominance(col.Code, code)
		assigned++
	}
	return assigned
}

// extractMargin appends every character of the row's value runs to the
// margin of the zone below it. Runs are ordered by x, so characters land
// left to right.
func (e *Extractor) extractMargin(state *State, columns []model.ZoneColumn, row layout.Row, kind model.MarginKind) int {
	appended := 0
	for _, run := range row.RunsRightOf(e.config.LeftMargin) {
		for i, ch := range []rune(run.Text) {
			col, ok := Assign(run.CharCenterX(i), columns, e.config.MarginRadius)
			if !ok {
				continue
			}
			state.Registry.AppendMargin(col.Code, kind, string(ch))
			appended++
		}
	}
	return appended
}
