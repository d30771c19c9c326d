package merge

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/grille/export"
	"github.com/tsawler/grille/tables"
)

// Sheet names read from an inspection workbook.
const (
	ListSheet   = "Liste"
	MarginSheet = "marge"
)

// listColumns maps "Liste" sheet headers (trimmed) to dataset keys.
var listColumns = map[string]string{
	"Type de terrain":                        "type_terrain",
	"Adjac. ter. res.":                       "adjacency_residential",
	"Réseau":                                 "reseau",
	"Type de toit":                           "type_toit",
	"type batiment compl.":                   "type_batiment_compl",
	"entreposage":                            "entreposage",
	"matériaux revêtement murale prohibé":    "mat_mur_prohibe",
	"matériaux revêtement toiture autorisés": "mat_toit_permis",
	"matériaux bordure":                      "mat_bordure",
}

// ImportWorkbook builds a dataset from an inspection workbook.
//
// The "Liste" sheet is a plain table with one zone per row under a "Zone"
// column. The "marge" sheet is pivoted: its header row lists zone codes
// and each following row holds one rule, labelled in the first column.
// The two rows labelled "Marge latérale combiné" hold the one-side
// minimum and the combined total, in that order. Either sheet may be
// missing. Zones appear in the order first met.
func ImportWorkbook(path string) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	b := newDatasetBuilder()

	if hasSheet(f, ListSheet) {
		rows, err := f.GetRows(ListSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", ListSheet, err)
		}
		b.addList(rows)
	}

	if hasSheet(f, MarginSheet) {
		rows, err := f.GetRows(MarginSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", MarginSheet, err)
		}
		b.addMargins(rows)
	}

	return b.entries, nil
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

type datasetBuilder struct {
	entries Dataset
	index   map[string]Entry
}

func newDatasetBuilder() *datasetBuilder {
	return &datasetBuilder{index: make(map[string]Entry)}
}

func (b *datasetBuilder) entry(zone string) Entry {
	if e, ok := b.index[zone]; ok {
		return e
	}
	e := Entry{"zone": zone}
	b.index[zone] = e
	b.entries = append(b.entries, e)
	return e
}

func (b *datasetBuilder) addList(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	header := trimAll(rows[0])
	zoneCol := indexOf(header, "Zone")
	if zoneCol < 0 {
		return
	}

	for _, row := range rows[1:] {
		zone := cell(row, zoneCol)
		if zone == "" {
			continue
		}
		e := b.entry(zone)
		for i, name := range header {
			key, ok := listColumns[name]
			if !ok {
				continue
			}
			if v := cell(row, i); v != "" {
				e[key] = v
			}
		}
		e["notes"] = []any{}
	}
}

func (b *datasetBuilder) addMargins(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	header := trimAll(rows[0])

	combined := 0
	for _, row := range rows[1:] {
		key := marginRowKey(cell(row, 0), &combined)
		if key == "" {
			continue
		}
		for i := 1; i < len(header); i++ {
			zone := header[i]
			if zone == "" {
				continue
			}
			v := cell(row, i)
			if v == "" {
				continue
			}
			b.entry(zone)[key] = export.Coerce(v)
		}
	}
}

// marginRowKey maps a "marge" sheet label to its dataset key. combined
// counts the "latérale combiné" rows seen so far.
func marginRowKey(label string, combined *int) string {
	l := tables.Fold(label)
	switch {
	case strings.Contains(l, "marge avant"):
		return "marge_avant"
	case strings.Contains(l, "marge arriere"):
		return "marge_arriere"
	case strings.Contains(l, "marge laterale combine"):
		*combined++
		switch *combined {
		case 1:
			return "marge_laterale"
		case 2:
			return "marge_laterale_combinee"
		}
		return ""
	case strings.Contains(l, "type d'entreposage"):
		return "nature_entreposage"
	default:
		return ""
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
