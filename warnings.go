package grille

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of a non-fatal issue.
type WarningCode int

const (
	// WarningPageSkipped means a page could not be decoded and was skipped.
	WarningPageSkipped WarningCode = iota
	// WarningNoHeader means a page has no zone header row and contributed
	// nothing.
	WarningNoHeader
	// WarningNoZones means the run finished without finding any zone.
	WarningNoZones
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarningPageSkipped:
		return "page-skipped"
	case WarningNoHeader:
		return "no-header"
	case WarningNoZones:
		return "no-zones"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue met during extraction. Page is 0
// when the warning concerns the whole run.
type Warning struct {
	Code    WarningCode
	Page    int
	Message string
}

// String formats the warning on one line.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into one line per warning.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// CountWarnings returns the number of warnings with the given code.
func CountWarnings(warnings []Warning, code WarningCode) int {
	n := 0
	for _, w := range warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}
