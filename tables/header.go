package tables

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/grille/layout"
	"github.com/tsawler/grille/model"
)

// minHeaderCodes is the number of zone codes a row needs to be a header.
const minHeaderCodes = 2

// Header is the located header row of a page
type Header struct {
	// RowIndex is the index of the header row within the page's rows
	RowIndex int

	// Columns are the zone columns sorted by ascending CenterX
	Columns []model.ZoneColumn
}

// LocateHeader scans rows top to bottom and returns the first row whose
// runs name at least two zones. The second result is false when no row
// qualifies, in which case the page has no zones.
func LocateHeader(rows []layout.Row) (Header, bool) {
	for i, row := range rows {
		expanded := ExpandRuns(row.Runs)
		if countZoneCodes(expanded) < minHeaderCodes {
			continue
		}
		return Header{RowIndex: i, Columns: zoneColumns(expanded)}, true
	}
	return Header{RowIndex: -1}, false
}

// ExpandRuns splits every run that merges two or more zone codes into one
// run per code. Sub-run positions are interpolated from the parent's
// average character width; other runs are returned unchanged.
func ExpandRuns(runs []model.TextRun) []model.TextRun {
	expanded := make([]model.TextRun, 0, len(runs))
	for _, run := range runs {
		expanded = append(expanded, splitRun(run)...)
	}
	return expanded
}

func splitRun(run model.TextRun) []model.TextRun {
	matches := embeddedCodePattern.FindAllStringIndex(run.Text, -1)
	if len(matches) < 2 {
		return []model.TextRun{run}
	}

	parts := make([]model.TextRun, 0, len(matches))
	for _, m := range matches {
		start := utf8.RuneCountInString(run.Text[:m[0]])
		n := utf8.RuneCountInString(run.Text[m[0]:m[1]])
		parts = append(parts, run.Slice(start, n))
	}
	return parts
}

func countZoneCodes(runs []model.TextRun) int {
	count := 0
	for _, run := range runs {
		if IsZoneCode(run.Text) {
			count++
		}
	}
	return count
}

// zoneColumns builds the sorted, duplicate-free column list of a header.
// A code seen twice keeps its leftmost position, and a column whose center
// coincides with the previous one is dropped so centers strictly increase.
func zoneColumns(runs []model.TextRun) []model.ZoneColumn {
	var columns []model.ZoneColumn
	for _, run := range runs {
		if !IsZoneCode(run.Text) {
			continue
		}
		columns = append(columns, model.ZoneColumn{
			Code:    strings.TrimSpace(run.Text),
			CenterX: run.CenterX(),
		})
	}

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].CenterX < columns[j].CenterX
	})

	seen := make(map[string]bool, len(columns))
	result := make([]model.ZoneColumn, 0, len(columns))
	for _, col := range columns {
		if seen[col.Code] {
			continue
		}
		if n := len(result); n > 0 && result[n-1].CenterX >= col.CenterX {
			continue
		}
		seen[col.Code] = true
		result = append(result, col)
	}
	return result
}
