package export

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/grille/model"
)

// Coerce returns s as a float64 when it parses as a finite number and s
// unchanged otherwise.
func Coerce(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	return f
}

// recordFields returns the non-empty fields of a record keyed by their
// output names, in output order.
func recordFields(z *model.ZoneRecord, coerce bool, key func(model.MarginKind) string) ([]string, map[string]any) {
	var names []string
	values := make(map[string]any)

	for _, kind := range model.MarginKinds() {
		v := z.Margin(kind)
		if v == "" {
			continue
		}
		name := key(kind)
		names = append(names, name)
		if coerce {
			values[name] = Coerce(v)
		} else {
			values[name] = v
		}
	}
	if z.Dominante != "" {
		names = append(names, "dominante")
		values["dominante"] = z.Dominante
	}
	if len(z.Usages) > 0 {
		names = append(names, "usages")
		values["usages"] = z.Usages
	}
	return names, values
}

// sortedRecords returns the registry's records in natural code order.
func sortedRecords(reg *model.Registry) []*model.ZoneRecord {
	codes := reg.Codes()
	SortCodes(codes)
	records := make([]*model.ZoneRecord, 0, len(codes))
	for _, code := range codes {
		records = append(records, reg.Get(code))
	}
	return records
}
