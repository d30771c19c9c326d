package tables

import (
	"math"
	"testing"

	"github.com/tsawler/grille/layout"
	"github.com/tsawler/grille/model"
)

// makeRun creates a test text run
func makeRun(txt string, x, y, width float64) model.TextRun {
	return model.TextRun{Text: txt, X: x, Y: y, Width: width}
}

// makeRow creates a row from runs already sorted left to right
func makeRow(runs ...model.TextRun) layout.Row {
	return layout.Row{Runs: runs}
}

func TestLocateHeader_TwoZones(t *testing.T) {
	rows := []layout.Row{
		makeRow(makeRun("GRILLE DES SPÉCIFICATIONS", 10, 750, 200)),
		makeRow(makeRun("100-Ia", 200, 700, 40), makeRun("101-Ib", 300, 700, 40)),
		makeRow(makeRun("H-a", 10, 680, 20), makeRun("X", 222, 680, 8)),
	}

	header, ok := LocateHeader(rows)
	if !ok {
		t.Fatal("Expected a header row")
	}
	if header.RowIndex != 1 {
		t.Errorf("Expected header row 1, got %d", header.RowIndex)
	}

	want := []model.ZoneColumn{{Code: "100-Ia", CenterX: 220}, {Code: "101-Ib", CenterX: 320}}
	if len(header.Columns) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(header.Columns))
	}
	for i := range want {
		if header.Columns[i] != want[i] {
			t.Errorf("Column %d: expected %+v, got %+v", i, want[i], header.Columns[i])
		}
	}
}

func TestLocateHeader_FirstCandidateWins(t *testing.T) {
	rows := []layout.Row{
		makeRow(makeRun("204", 250, 700, 18), makeRun("205", 350, 700, 18)),
		makeRow(makeRun("300", 250, 600, 18), makeRun("301", 350, 600, 18)),
	}

	header, ok := LocateHeader(rows)
	if !ok || header.RowIndex != 0 {
		t.Fatalf("Expected header at row 0, got %d (ok=%v)", header.RowIndex, ok)
	}
	if header.Columns[0].Code != "204" {
		t.Errorf("Expected first column 204, got %s", header.Columns[0].Code)
	}
}

func TestLocateHeader_NotFound(t *testing.T) {
	rows := []layout.Row{
		makeRow(makeRun("Règlement de zonage", 10, 700, 150)),
		makeRow(makeRun("H-a", 10, 680, 20), makeRun("X", 222, 680, 8)),
	}

	header, ok := LocateHeader(rows)
	if ok {
		t.Errorf("Expected no header, got row %d", header.RowIndex)
	}
	if header.RowIndex != -1 {
		t.Errorf("Expected RowIndex -1, got %d", header.RowIndex)
	}
}

func TestLocateHeader_RangeRowIsNotHeader(t *testing.T) {
	rows := []layout.Row{
		makeRow(makeRun("Règlement 2014-14", 10, 750, 120)),
		makeRow(makeRun("Nombre d'étages", 10, 700, 90), makeRun("1-2", 212, 700, 16), makeRun("2-3", 312, 700, 16)),
		makeRow(makeRun("Marge de recul avant", 10, 680, 110), makeRun("6", 222, 680, 6)),
	}

	if header, ok := LocateHeader(rows); ok {
		t.Errorf("Expected no header, got row %d with %+v", header.RowIndex, header.Columns)
	}
}

func TestLocateHeader_SplitsMergedRun(t *testing.T) {
	// 13 runes over 130 units: 10 units per character
	rows := []layout.Row{
		makeRow(makeRun("Zones", 10, 700, 40), makeRun("604-Ia 605-Ib", 200, 700, 130)),
	}

	header, ok := LocateHeader(rows)
	if !ok {
		t.Fatal("Expected merged run to produce a header")
	}

	want := []model.ZoneColumn{{Code: "604-Ia", CenterX: 230}, {Code: "605-Ib", CenterX: 300}}
	if len(header.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %+v", header.Columns)
	}
	for i := range want {
		got := header.Columns[i]
		if got.Code != want[i].Code || math.Abs(got.CenterX-want[i].CenterX) > 0.0001 {
			t.Errorf("Column %d: expected %+v, got %+v", i, want[i], got)
		}
	}
}

func TestExpandRuns(t *testing.T) {
	tests := []struct {
		name  string
		run   model.TextRun
		texts []string
	}{
		{"single code untouched", makeRun("604-Ia", 0, 0, 60), []string{"604-Ia"}},
		{"label untouched", makeRun("Usages permis", 0, 0, 60), []string{"Usages permis"}},
		{"three digit codes", makeRun("204 205 206", 0, 0, 110), []string{"204", "205", "206"}},
		{"mixed forms", makeRun("C-a 301", 0, 0, 70), []string{"C-a", "301"}},
		{"ranges untouched", makeRun("1-2 2-3", 0, 0, 70), []string{"1-2 2-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandRuns([]model.TextRun{tt.run})
			if len(got) != len(tt.texts) {
				t.Fatalf("Expected %d runs, got %d (%+v)", len(tt.texts), len(got), got)
			}
			for i, want := range tt.texts {
				if got[i].Text != want {
					t.Errorf("Run %d: expected %q, got %q", i, want, got[i].Text)
				}
			}
		})
	}
}

func TestLocateHeader_ColumnsStrictlyAscending(t *testing.T) {
	rows := []layout.Row{
		makeRow(
			makeRun("103", 500, 700, 18),
			makeRun("100", 200, 700, 18),
			makeRun("102", 400, 700, 18),
			makeRun("100", 450, 700, 18),
			makeRun("101", 300, 700, 18),
		),
	}

	header, ok := LocateHeader(rows)
	if !ok {
		t.Fatal("Expected a header row")
	}

	codes := []string{"100", "101", "102", "103"}
	if len(header.Columns) != len(codes) {
		t.Fatalf("Expected %d columns, got %+v", len(codes), header.Columns)
	}
	for i, col := range header.Columns {
		if col.Code != codes[i] {
			t.Errorf("Column %d: expected %s, got %s", i, codes[i], col.Code)
		}
		if i > 0 && col.CenterX <= header.Columns[i-1].CenterX {
			t.Errorf("Columns not strictly ascending at %d: %v <= %v", i, col.CenterX, header.Columns[i-1].CenterX)
		}
	}
}

func TestIsZoneCode(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"204", true},
		{" 204 ", true},
		{"204A", true},
		{"604-Ia", true},
		{"H-a", true},
		{"REC-b", true},
		{"2040", false},
		{"1-2", false},
		{"10-15", false},
		{"2014-14", false},
		{"h-a", false},
		{"X", false},
		{"Marge", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := IsZoneCode(tt.text); got != tt.want {
				t.Errorf("IsZoneCode(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
