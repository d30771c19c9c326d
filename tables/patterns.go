package tables

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/grille/model"
)

var (
	// zoneCodePattern matches a whole header cell naming a zone:
	// "204", "204A", "604-Ia", "H-a". Numeric ranges such as "1-2" or
	// "2014-14" are not codes.
	zoneCodePattern = regexp.MustCompile(`^(?:[0-9]{3}[A-Za-z]?|[0-9]{3}-[A-Za-z0-9]+|[A-Z]{1,4}-[a-z0-9]+)$`)

	// embeddedCodePattern finds zone codes inside a run that merged several
	// header cells, e.g. "604-Ia 605-Ib 606".
	embeddedCodePattern = regexp.MustCompile(`\b[0-9]{3}-[A-Za-z0-9]+\b|\b[A-Z]{1,4}-[a-z0-9]+\b|\b[0-9]{3}[A-Za-z]?\b`)

	// usageCodePattern matches the usage code at the start of a usage row.
	usageCodePattern = regexp.MustCompile(`^(?:[A-Z]{1,4}-[a-z0-9]+|[A-Z]{2})\b`)

	// groupPattern matches a group label row, on accent-folded text.
	groupPattern = regexp.MustCompile(`(?i)^(?:HABITATION|COMMERCE|INDUSTRIE|RECREATION|PUBLIC|INSTITUT|AGRICOLE|MIXTE|FORESTIER|CONSERVATION)`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// dominanceCodes is the closed vocabulary of dominant-use codes.
var dominanceCodes = map[string]bool{
	"H":   true,
	"C":   true,
	"I":   true,
	"P":   true,
	"REC": true,
	"Ag":  true,
	"RN":  true,
	"CN":  true,
	"MIX": true,
	"PUB": true,
}

// DefaultGroup is the usage group in effect before any group label row.
const DefaultGroup = "AUTRE"

// IsZoneCode reports whether s (trimmed) looks like a zone code
func IsZoneCode(s string) bool {
	return zoneCodePattern.MatchString(strings.TrimSpace(s))
}

// IsDominanceCode reports whether s (trimmed) is a dominant-use code
func IsDominanceCode(s string) bool {
	return dominanceCodes[strings.TrimSpace(s)]
}

// UsageCode returns the usage code heading a row label, or "" if the label
// does not start with one.
func UsageCode(label string) string {
	return usageCodePattern.FindString(label)
}

// Fold strips diacritics and lowercases s so that labels match with or
// without accents ("Arrière" and "arriere").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// mentionsMarginOrHeight reports whether text names a margin or a height,
// which rules a row out as a group label, usage or dominance row.
func mentionsMarginOrHeight(text string) bool {
	f := Fold(text)
	return strings.Contains(f, "marge") || strings.Contains(f, "hauteur")
}

// groupLabel normalizes a group label row's text into a group name.
func groupLabel(text string) string {
	label := strings.ReplaceAll(text, ":", "")
	label = whitespacePattern.ReplaceAllString(label, " ")
	return strings.ToUpper(strings.TrimSpace(label))
}

// marginLabels lists the label fragments of each margin row, checked in
// order. The combined side margin comes first since its labels also mention
// the side margin ("Somme des marges latérales").
var marginLabels = []struct {
	kind    model.MarginKind
	needles []string
}{
	{model.MarginCombinedSide, []string{"combine", "somme des marges"}},
	{model.MarginFront, []string{"avant"}},
	{model.MarginRear, []string{"arriere"}},
	{model.MarginSide, []string{"lateral"}},
}

// marginKindOf maps a margin row label to its margin kind.
func marginKindOf(label string) (model.MarginKind, bool) {
	f := Fold(label)
	if !(strings.Contains(f, "marge") || strings.Contains(f, "recul") ||
		strings.Contains(f, "largeur") || strings.Contains(f, "somme")) {
		return 0, false
	}

	for _, candidate := range marginLabels {
		for _, needle := range candidate.needles {
			if strings.Contains(f, needle) {
				return candidate.kind, true
			}
		}
	}
	return 0, false
}
