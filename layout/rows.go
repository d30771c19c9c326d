package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/grille/model"
)

// Row is a set of runs sharing an inferred baseline band
type Row struct {
	// Y is the baseline of the run that opened the row
	Y float64

	// Index is the row's position on the page (0-based, top to bottom)
	Index int

	// Runs are the row's runs sorted left to right
	Runs []model.TextRun
}

// Len returns the number of runs in the row
func (r Row) Len() int {
	return len(r.Runs)
}

// FirstText returns the trimmed text of the leftmost run, or "" for an
// empty row
func (r Row) FirstText() string {
	if len(r.Runs) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Runs[0].Text)
}

// Text returns the text of all runs joined by single spaces
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Runs))
	for _, run := range r.Runs {
		parts = append(parts, run.Text)
	}
	return strings.Join(parts, " ")
}

// RunsRightOf returns the runs whose origin lies strictly right of x
func (r Row) RunsRightOf(x float64) []model.TextRun {
	var runs []model.TextRun
	for _, run := range r.Runs {
		if run.X > x {
			runs = append(runs, run)
		}
	}
	return runs
}

// RowConfig holds configuration for row detection
type RowConfig struct {
	// Tolerance is the baseline distance at which a run starts a new row
	// (default: 4.0 layout units). A run exactly Tolerance away starts a
	// new row.
	Tolerance float64
}

// DefaultRowConfig returns the default row detection configuration
func DefaultRowConfig() RowConfig {
	return RowConfig{
		Tolerance: 4.0,
	}
}

// RowDetector clusters text runs into rows
type RowDetector struct {
	config RowConfig
}

// NewRowDetector creates a row detector with default configuration
func NewRowDetector() *RowDetector {
	return &RowDetector{
		config: DefaultRowConfig(),
	}
}

// NewRowDetectorWithConfig creates a row detector with custom configuration
func NewRowDetectorWithConfig(config RowConfig) *RowDetector {
	if config.Tolerance <= 0 {
		config.Tolerance = DefaultRowConfig().Tolerance
	}
	return &RowDetector{
		config: config,
	}
}

// Config returns the detector configuration
func (d *RowDetector) Config() RowConfig {
	return d.config
}

// Detect groups runs into rows ordered top to bottom. The input slice is
// not modified.
func (d *RowDetector) Detect(runs []model.TextRun) []Row {
	if len(runs) == 0 {
		return nil
	}

	// Higher Y first (top of page). Stable so runs on the same baseline
	// keep decoder order until the per-row X sort.
	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var rows []Row
	current := []model.TextRun{sorted[0]}
	currentY := sorted[0].Y

	for _, run := range sorted[1:] {
		if absFloat64(run.Y-currentY) < d.config.Tolerance {
			current = append(current, run)
			continue
		}
		rows = append(rows, newRow(currentY, len(rows), current))
		current = []model.TextRun{run}
		currentY = run.Y
	}
	rows = append(rows, newRow(currentY, len(rows), current))

	return rows
}

func newRow(y float64, index int, runs []model.TextRun) Row {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].X < runs[j].X
	})
	return Row{Y: y, Index: index, Runs: runs}
}

// absFloat64 returns the absolute value of a float64
func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
