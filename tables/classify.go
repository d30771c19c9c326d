package tables

import (
	"github.com/tsawler/grille/layout"
	"github.com/tsawler/grille/model"
)

// RowKind is the role of a data row below the header
type RowKind int

const (
	RowIgnored RowKind = iota
	RowGroupHeader
	RowUsage
	RowDominance
	RowMargin
)

// String returns a string representation of the row kind
func (k RowKind) String() string {
	switch k {
	case RowGroupHeader:
		return "group-header"
	case RowUsage:
		return "usage"
	case RowDominance:
		return "dominance"
	case RowMargin:
		return "margin"
	default:
		return "ignored"
	}
}

// RowClass is the classification of one row. Only the field matching Kind
// is set: Group for group headers, UsageCode for usage rows, Margin for
// margin rows.
type RowClass struct {
	Kind      RowKind
	Group     string
	UsageCode string
	Margin    model.MarginKind
}

// Classify assigns a role to a row. The checks run in a fixed order and
// the first match wins:
//
//  1. group header - the first run opens with a group label
//  2. usage row - the first run opens with a usage code
//  3. dominance row - a run right of leftMargin is a dominance code
//  4. margin row - the first run names a setback margin
//
// Rows 1-3 must not mention a margin or a height anywhere.
func Classify(row layout.Row, leftMargin float64) RowClass {
	first := row.FirstText()
	if first == "" {
		return RowClass{Kind: RowIgnored}
	}

	marginOrHeight := mentionsMarginOrHeight(row.Text())

	if !marginOrHeight && groupPattern.MatchString(Fold(first)) {
		return RowClass{Kind: RowGroupHeader, Group: groupLabel(first)}
	}

	usage := UsageCode(first)
	if usage != "" && !marginOrHeight {
		return RowClass{Kind: RowUsage, UsageCode: usage}
	}

	if usage == "" && !marginOrHeight && hasDominanceCode(row, leftMargin) {
		return RowClass{Kind: RowDominance}
	}

	if kind, ok := marginKindOf(first); ok {
		return RowClass{Kind: RowMargin, Margin: kind}
	}

	return RowClass{Kind: RowIgnored}
}

func hasDominanceCode(row layout.Row, leftMargin float64) bool {
	for _, run := range row.RunsRightOf(leftMargin) {
		if IsDominanceCode(run.Text) {
			return true
		}
	}
	return false
}
