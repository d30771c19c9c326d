package export

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortCodes sorts zone codes in place with numeric, case-insensitive
// collation, so digit runs compare by value.
func SortCodes(codes []string) {
	c := collate.New(language.French, collate.Numeric, collate.IgnoreCase)
	c.SortStrings(codes)
}

// CompareCodes compares two zone codes the way SortCodes orders them.
func CompareCodes(a, b string) int {
	c := collate.New(language.French, collate.Numeric, collate.IgnoreCase)
	return c.CompareString(a, b)
}
