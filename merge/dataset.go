package merge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tsawler/grille/export"
)

// Entry is one zone object of a dataset.
type Entry map[string]any

// Zone returns the entry's zone code, or "" if it has none.
func (e Entry) Zone() string {
	s, _ := e["zone"].(string)
	return s
}

// Dataset is an ordered list of zone entries.
type Dataset []Entry

// Find returns the first entry for zone, or nil.
func (d Dataset) Find(zone string) Entry {
	for _, e := range d {
		if e.Zone() == zone {
			return e
		}
	}
	return nil
}

// Sort orders entries by zone code with numeric, case-insensitive
// collation. Entries with equal codes keep their relative order.
func (d Dataset) Sort() {
	sort.SliceStable(d, func(i, j int) bool {
		return export.CompareCodes(d[i].Zone(), d[j].Zone()) < 0
	})
}

// LoadDataset reads a dataset from a JSON file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return ds, nil
}

// SaveDataset writes a dataset as indented JSON.
func SaveDataset(path string, ds Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
