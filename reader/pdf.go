package reader

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/grille/model"
)

// PDFSource decodes pages of a PDF document.
type PDFSource struct {
	file  *os.File
	doc   *pdf.Reader
	pages int
}

// OpenPDF opens a PDF file. The page count is read with pdfcpu, which also
// rejects files whose structure is too damaged to page through.
func OpenPDF(path string) (*PDFSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	src, err := NewPDFSource(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return src, nil
}

// NewPDFSource creates a source over an open PDF file. The source takes
// ownership of the file and closes it on Close.
func NewPDFSource(file *os.File) (*PDFSource, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	count, err := api.PageCount(file, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	doc, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	// Trust the smaller count when the two decoders disagree.
	if n := doc.NumPage(); n < count {
		count = n
	}

	return &PDFSource{file: file, doc: doc, pages: count}, nil
}

// NumPages returns the number of pages.
func (s *PDFSource) NumPages() int {
	return s.pages
}

// Page decodes page n into text runs. A panic inside the decoder is
// recovered and returned as a *PageError.
func (s *PDFSource) Page(n int) (page model.Page, err error) {
	if err := checkPage(n, s.pages); err != nil {
		return model.Page{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			page = model.Page{}
			err = &PageError{Page: n, Err: fmt.Errorf("decoder panic: %v", r)}
		}
	}()

	p := s.doc.Page(n)
	if p.V.IsNull() {
		return model.Page{}, &PageError{Page: n, Err: errors.New("page object missing")}
	}

	texts := p.Content().Text
	glyphs := make([]Glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, Glyph{
			Text:     t.S,
			Font:     t.Font,
			FontSize: t.FontSize,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
		})
	}

	return model.Page{Number: n, Runs: MergeGlyphs(glyphs)}, nil
}

// Close closes the underlying file.
func (s *PDFSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
