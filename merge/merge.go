package merge

import (
	"strings"

	"github.com/tsawler/grille/export"
	"github.com/tsawler/grille/model"
)

// Result counts the effect of a merge.
type Result struct {
	// Updated is the number of dataset entries that received values.
	Updated int
	// Added is the number of zones appended as new entries.
	Added int
}

// Merge writes every zone of reg into ds and returns the merged dataset,
// sorted by zone code. Entries of ds are updated in place.
func Merge(ds Dataset, reg *model.Registry) (Dataset, Result) {
	var res Result

	for _, z := range reg.Records() {
		fields := Fields(z)

		matched := false
		for _, e := range ds {
			if !matches(e.Zone(), z.Code) {
				continue
			}
			for k, v := range fields {
				e[k] = v
			}
			matched = true
			res.Updated++
		}
		if matched {
			continue
		}

		entry := Entry{"zone": z.Code}
		for k, v := range fields {
			entry[k] = v
		}
		entry["notes"] = []any{}
		ds = append(ds, entry)
		res.Added++
	}

	ds.Sort()
	return ds, res
}

// Fields returns the observed values of z under their dataset keys.
// Margins that parse as finite numbers become float64.
func Fields(z *model.ZoneRecord) map[string]any {
	fields := make(map[string]any)
	for _, kind := range model.MarginKinds() {
		if v := z.Margin(kind); v != "" {
			fields[kind.SnakeKey()] = export.Coerce(v)
		}
	}
	if z.Dominante != "" {
		fields["dominante"] = z.Dominante
	}
	if len(z.Usages) > 0 {
		fields["usages"] = z.Usages
	}
	return fields
}

func matches(entryZone, code string) bool {
	return entryZone == code || strings.HasPrefix(entryZone, code+"-")
}
