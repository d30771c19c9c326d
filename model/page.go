package model

// Page holds the text runs decoded from a single page
type Page struct {
	Number int       // 1-indexed page number
	Runs   []TextRun // Runs in decoder order (unsorted)
}

// NewPage creates an empty page
func NewPage(number int) *Page {
	return &Page{
		Number: number,
		Runs:   make([]TextRun, 0),
	}
}

// AddRun appends a run to the page
func (p *Page) AddRun(run TextRun) {
	p.Runs = append(p.Runs, run)
}

// RunCount returns the number of runs on the page
func (p *Page) RunCount() int {
	return len(p.Runs)
}
