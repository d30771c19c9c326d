package tables

import (
	"strings"

	"github.com/tsawler/grille/model"
)

// Normalize finalizes the margins of every zone: surrounding whitespace is
// trimmed and decimal commas become periods. Dominance codes and usages are
// left as extracted. Values stay strings; numeric coercion belongs to the
// consumer.
func Normalize(reg *model.Registry) {
	for _, z := range reg.Records() {
		for _, kind := range model.MarginKinds() {
			v := z.Margin(kind)
			if v == "" {
				continue
			}
			z.SetMargin(kind, NormalizeMargin(v))
		}
	}
}

// NormalizeMargin trims a raw margin string and replaces decimal commas
func NormalizeMargin(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}
