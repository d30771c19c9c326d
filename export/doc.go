// Package export writes a zone registry as JSON, YAML or an Excel workbook,
// and validates JSON output against the registry schema.
//
// JSON output is an object keyed by zone code with keys in sorted order.
// With [Options.Coerce] set, margin values that read as finite numbers are
// written as numbers; anything else stays a string. YAML and XLSX output
// list zones in natural order ("204" before "1010", "604-Ia" after "604").
package export
