package reader

import (
	"errors"
	"strings"
	"testing"
)

func TestNewJSONSource(t *testing.T) {
	dump := `[
		[{"text": "204", "x": 220, "y": 700, "width": 20},
		 {"str": "H-1", "x": 20, "y": 650, "w": 18}],
		[]
	]`

	src, err := NewJSONSource(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("NewJSONSource failed: %v", err)
	}
	defer src.Close()

	if src.NumPages() != 2 {
		t.Fatalf("Expected 2 pages, got %d", src.NumPages())
	}

	page, err := src.Page(1)
	if err != nil {
		t.Fatalf("Page(1) failed: %v", err)
	}
	if page.Number != 1 {
		t.Errorf("Expected page number 1, got %d", page.Number)
	}
	if page.RunCount() != 2 {
		t.Fatalf("Expected 2 runs, got %d", page.RunCount())
	}
	if page.Runs[0].Text != "204" || page.Runs[0].Width != 20 {
		t.Errorf("Unexpected first run %+v", page.Runs[0])
	}
	if page.Runs[1].Text != "H-1" || page.Runs[1].Width != 18 {
		t.Errorf("Expected short keys to be read, got %+v", page.Runs[1])
	}

	empty, err := src.Page(2)
	if err != nil {
		t.Fatalf("Page(2) failed: %v", err)
	}
	if empty.RunCount() != 0 {
		t.Errorf("Expected empty page, got %d runs", empty.RunCount())
	}
}

func TestNewJSONSource_NotAnArray(t *testing.T) {
	if _, err := NewJSONSource(strings.NewReader(`{"pages": 1}`)); err == nil {
		t.Error("Expected error for non-array dump")
	}
}

func TestDumpSource_MalformedPage(t *testing.T) {
	dump := `[[{"text": "204", "x": 1, "y": 2, "width": 3}], {"oops": true}, [{"text": "205", "x": 1, "y": 2, "width": 3}]]`

	src, err := NewJSONSource(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("NewJSONSource failed: %v", err)
	}

	_, err = src.Page(2)
	var pageErr *PageError
	if !errors.As(err, &pageErr) {
		t.Fatalf("Expected *PageError, got %v", err)
	}
	if pageErr.Page != 2 {
		t.Errorf("Expected page 2 in error, got %d", pageErr.Page)
	}

	if _, err := src.Page(3); err != nil {
		t.Errorf("Expected page 3 to decode after a bad page, got %v", err)
	}
}

func TestDumpSource_OutOfRange(t *testing.T) {
	src, _ := NewJSONSource(strings.NewReader(`[[]]`))

	for _, n := range []int{0, 2, -1} {
		if _, err := src.Page(n); err == nil {
			t.Errorf("Expected error for page %d", n)
		}
	}
}

func TestNewJSONLinesSource(t *testing.T) {
	dump := "[{\"text\":\"204\",\"x\":220,\"y\":700,\"width\":20}]\n\n" +
		"not json\n" +
		"[{\"str\":\"X\",\"x\":230,\"y\":650,\"w\":6}]\n"

	src, err := NewJSONLinesSource(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("NewJSONLinesSource failed: %v", err)
	}

	if src.NumPages() != 3 {
		t.Fatalf("Expected 3 pages (blank line skipped), got %d", src.NumPages())
	}

	if _, err := src.Page(2); err == nil {
		t.Error("Expected error for malformed line")
	}

	page, err := src.Page(3)
	if err != nil {
		t.Fatalf("Page(3) failed: %v", err)
	}
	if page.Number != 3 || page.Runs[0].Text != "X" {
		t.Errorf("Unexpected page %+v", page)
	}
}
