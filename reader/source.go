package reader

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/grille/format"
	"github.com/tsawler/grille/model"
)

// ErrUnsupportedFormat is returned when a file cannot be used as a page source.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Source supplies pages of text runs.
type Source interface {
	// NumPages returns the number of pages in the source.
	NumPages() int
	// Page returns page n (1-indexed).
	Page(n int) (model.Page, error)
	// Close releases any underlying file.
	Close() error
}

// PageError reports a page that could not be decoded.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Open opens path as a page source, choosing the decoder from the file
// extension or, failing that, from the file's leading bytes.
func Open(path string) (Source, error) {
	f := format.Detect(path)
	if f == format.Unknown {
		sniffed, err := sniff(path)
		if err != nil {
			return nil, err
		}
		f = sniffed
	}

	switch f {
	case format.PDF:
		return OpenPDF(path)
	case format.JSON:
		return OpenJSON(path)
	case format.JSONLines:
		return OpenJSONLines(path)
	default:
		return nil, fmt.Errorf("%s: %w (%s)", path, ErrUnsupportedFormat, f)
	}
}

func sniff(path string) (format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return format.Unknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return format.Unknown, fmt.Errorf("failed to get file info: %w", err)
	}
	return format.DetectFromReader(file, info.Size())
}

// checkPage validates a 1-indexed page number against a page count.
func checkPage(n, count int) error {
	if n < 1 || n > count {
		return &PageError{Page: n, Err: fmt.Errorf("out of range (1-%d)", count)}
	}
	return nil
}

// MemorySource serves pages held in memory.
type MemorySource struct {
	pages []model.Page
}

// NewMemorySource creates a source over the given pages. Pages are
// renumbered 1..n in the order given.
func NewMemorySource(pages ...model.Page) *MemorySource {
	s := &MemorySource{pages: make([]model.Page, len(pages))}
	for i, p := range pages {
		p.Number = i + 1
		s.pages[i] = p
	}
	return s
}

// NumPages returns the number of pages.
func (s *MemorySource) NumPages() int {
	return len(s.pages)
}

// Page returns page n.
func (s *MemorySource) Page(n int) (model.Page, error) {
	if err := checkPage(n, len(s.pages)); err != nil {
		return model.Page{}, err
	}
	return s.pages[n-1], nil
}

// Close is a no-op.
func (s *MemorySource) Close() error {
	return nil
}
