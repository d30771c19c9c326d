package reader

import (
	"strings"
	"unicode"

	"github.com/tsawler/grille/model"
)

// Glyph is a single positioned glyph as reported by a PDF decoder.
type Glyph struct {
	Text     string
	Font     string
	FontSize float64
	X        float64
	Y        float64
	Width    float64
}

// Glyphs closer than this fraction of the font size join the same run.
// It is half of the usual space-width estimate of fontSize * 0.25.
const joinGapRatio = 0.125

// MergeGlyphs joins glyphs into text runs. Glyphs are taken in decoder
// order; a glyph extends the open run when it shares the run's font, sits
// on the same baseline (within half the font size) and starts less than
// half a space width from the run's right edge. Whitespace glyphs extend a
// run but never open one, and trailing whitespace is trimmed.
func MergeGlyphs(glyphs []Glyph) []model.TextRun {
	var runs []model.TextRun
	var cur *runBuilder

	flush := func() {
		if cur != nil {
			if run, ok := cur.build(); ok {
				runs = append(runs, run)
			}
			cur = nil
		}
	}

	for _, g := range glyphs {
		if g.Text == "" {
			continue
		}
		blank := strings.TrimSpace(g.Text) == ""

		if cur != nil && cur.accepts(g) {
			cur.add(g, blank)
			continue
		}

		flush()
		if blank {
			continue
		}
		cur = newRunBuilder(g)
	}
	flush()

	return runs
}

type runBuilder struct {
	font     string
	fontSize float64
	x        float64
	y        float64
	right    float64
	text     strings.Builder

	// End of the last non-blank glyph, used to trim trailing whitespace.
	solidRight float64
	solidLen   int
}

func newRunBuilder(g Glyph) *runBuilder {
	b := &runBuilder{
		font:     g.Font,
		fontSize: g.FontSize,
		x:        g.X,
		y:        g.Y,
		right:    g.X,
	}
	b.add(g, false)
	return b
}

func (b *runBuilder) accepts(g Glyph) bool {
	if g.Font != b.font {
		return false
	}
	size := b.fontSize
	if size <= 0 {
		size = g.FontSize
	}
	if absFloat64(g.Y-b.y) > size*0.5 {
		return false
	}
	gap := g.X - b.right
	limit := size * joinGapRatio
	return gap < limit && gap > -size
}

func (b *runBuilder) add(g Glyph, blank bool) {
	b.text.WriteString(g.Text)
	end := g.X + g.Width
	if end > b.right {
		b.right = end
	}
	if !blank {
		b.solidRight = b.right
		b.solidLen = b.text.Len()
	}
}

func (b *runBuilder) build() (model.TextRun, bool) {
	text := strings.TrimRightFunc(b.text.String()[:b.solidLen], unicode.IsSpace)
	if text == "" {
		return model.TextRun{}, false
	}
	return model.NewTextRun(text, b.x, b.y, b.solidRight-b.x), true
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
