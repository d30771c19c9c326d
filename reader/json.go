package reader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/grille/model"
)

// dumpRun is a run as written in a page dump. Both the long
// (text/width) and short (str/w) key spellings are accepted.
type dumpRun struct {
	Text  *string  `json:"text"`
	Str   *string  `json:"str"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Width *float64 `json:"width"`
	W     *float64 `json:"w"`
}

func (d dumpRun) toTextRun() model.TextRun {
	var text string
	switch {
	case d.Text != nil:
		text = *d.Text
	case d.Str != nil:
		text = *d.Str
	}
	var width float64
	switch {
	case d.Width != nil:
		width = *d.Width
	case d.W != nil:
		width = *d.W
	}
	return model.NewTextRun(text, d.X, d.Y, width)
}

// DumpSource serves pages from a JSON or JSON Lines page dump. Each page
// is kept raw and decoded on demand, so one malformed page does not spoil
// the others.
type DumpSource struct {
	pages []json.RawMessage
}

// OpenJSON reads a JSON page dump: an array with one array of runs per page.
func OpenJSON(path string) (*DumpSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return NewJSONSource(f)
}

// NewJSONSource reads a JSON page dump from r.
func NewJSONSource(r io.Reader) (*DumpSource, error) {
	var pages []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pages); err != nil {
		return nil, fmt.Errorf("failed to decode page dump: %w", err)
	}
	return &DumpSource{pages: pages}, nil
}

// OpenJSONLines reads a JSON Lines page dump: one array of runs per line.
func OpenJSONLines(path string) (*DumpSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return NewJSONLinesSource(f)
}

// NewJSONLinesSource reads a JSON Lines page dump from r. Blank lines are
// skipped; every other line is one page, valid or not.
func NewJSONLinesSource(r io.Reader) (*DumpSource, error) {
	var pages []json.RawMessage
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		pages = append(pages, json.RawMessage(bytes.Clone(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page dump: %w", err)
	}
	return &DumpSource{pages: pages}, nil
}

// NumPages returns the number of pages.
func (s *DumpSource) NumPages() int {
	return len(s.pages)
}

// Page decodes page n.
func (s *DumpSource) Page(n int) (model.Page, error) {
	if err := checkPage(n, len(s.pages)); err != nil {
		return model.Page{}, err
	}

	var items []dumpRun
	if err := json.Unmarshal(s.pages[n-1], &items); err != nil {
		return model.Page{}, &PageError{Page: n, Err: err}
	}

	page := model.NewPage(n)
	for _, item := range items {
		page.AddRun(item.toTextRun())
	}
	return *page, nil
}

// Close is a no-op; dumps are read fully when opened.
func (s *DumpSource) Close() error {
	return nil
}
