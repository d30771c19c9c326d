package model

import (
	"math"
	"unicode/utf8"
)

// TextRun is a positioned string fragment as emitted by a page decoder.
// X grows rightward and Y grows upward (top of page has the larger Y).
type TextRun struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// NewTextRun creates a text run
func NewTextRun(text string, x, y, width float64) TextRun {
	return TextRun{Text: text, X: x, Y: y, Width: width}
}

// Right returns the right edge X coordinate
func (r TextRun) Right() float64 {
	return r.X + r.Width
}

// CenterX returns the horizontal center of the run
func (r TextRun) CenterX() float64 {
	return r.X + r.Width/2
}

// Len returns the number of characters (runes) in the run
func (r TextRun) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// CharWidth estimates the width of a single character by spreading the
// rendered width evenly over the runes. Empty runs have zero char width.
func (r TextRun) CharWidth() float64 {
	n := r.Len()
	if n == 0 {
		return 0
	}
	return r.Width / float64(n)
}

// CharCenterX returns the estimated center of the i-th rune.
func (r TextRun) CharCenterX(i int) float64 {
	cw := r.CharWidth()
	return r.X + float64(i)*cw + cw/2
}

// Slice returns the sub-run covering runes [start, start+n), with its origin
// and width interpolated from the parent's character width.
func (r TextRun) Slice(start, n int) TextRun {
	runes := []rune(r.Text)
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + n
	if end > len(runes) {
		end = len(runes)
	}
	cw := r.CharWidth()
	return TextRun{
		Text:  string(runes[start:end]),
		X:     r.X + float64(start)*cw,
		Y:     r.Y,
		Width: float64(end-start) * cw,
	}
}

// DistanceX returns the absolute horizontal distance between two x positions.
func DistanceX(a, b float64) float64 {
	return math.Abs(a - b)
}
