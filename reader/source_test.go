package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/grille/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestOpen_ByExtension(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pages   int
	}{
		{"pages.json", `[[], []]`, 2},
		{"pages.jsonl", "[]\n[]\n[]\n", 3},
		{"pages.ndjson", "[]\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Open(writeFile(t, tt.name, tt.content))
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer src.Close()

			if src.NumPages() != tt.pages {
				t.Errorf("Expected %d pages, got %d", tt.pages, src.NumPages())
			}
		})
	}
}

func TestOpen_SniffsUnknownExtension(t *testing.T) {
	src, err := Open(writeFile(t, "dump.txt", "[{\"text\":\"204\"}]\n[]\n"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.NumPages() != 2 {
		t.Errorf("Expected JSON Lines with 2 pages, got %d", src.NumPages())
	}
}

func TestOpen_Unsupported(t *testing.T) {
	_, err := Open(writeFile(t, "notes.txt", "plain text"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	_, err = Open(writeFile(t, "book.xlsx", "PK"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for workbook, got %v", err)
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestOpenPDF_Garbage(t *testing.T) {
	if _, err := OpenPDF(writeFile(t, "broken.pdf", "%PDF-1.4\nnot really a pdf")); err == nil {
		t.Error("Expected error for malformed PDF")
	}
}

func TestMemorySource(t *testing.T) {
	p := *model.NewPage(9)
	p.AddRun(model.NewTextRun("204", 220, 700, 20))

	src := NewMemorySource(p, *model.NewPage(4))
	if src.NumPages() != 2 {
		t.Fatalf("Expected 2 pages, got %d", src.NumPages())
	}

	got, err := src.Page(1)
	if err != nil {
		t.Fatalf("Page(1) failed: %v", err)
	}
	if got.Number != 1 {
		t.Errorf("Expected renumbered page 1, got %d", got.Number)
	}
	if got.RunCount() != 1 {
		t.Errorf("Expected 1 run, got %d", got.RunCount())
	}

	if _, err := src.Page(3); err == nil {
		t.Error("Expected out-of-range error")
	}
}

func TestPageError(t *testing.T) {
	inner := errors.New("bad stream")
	err := error(&PageError{Page: 3, Err: inner})

	if err.Error() != "page 3: bad stream" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Expected PageError to unwrap to inner error")
	}
}
