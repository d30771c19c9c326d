package model

import (
	"encoding/json"
	"sort"
)

// Registry maps zone codes to their accumulated records. Records are
// created on first reference and never removed; iteration follows the
// order in which zones were first referenced.
type Registry struct {
	zones map[string]*ZoneRecord
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		zones: make(map[string]*ZoneRecord),
		order: make([]string, 0),
	}
}

// Len returns the number of zones
func (r *Registry) Len() int {
	return len(r.order)
}

// Get returns the record of a zone, or nil if the zone was never referenced
func (r *Registry) Get(code string) *ZoneRecord {
	return r.zones[code]
}

// Ensure returns the record of a zone, creating it if needed
func (r *Registry) Ensure(code string) *ZoneRecord {
	if z, ok := r.zones[code]; ok {
		return z
	}
	z := NewZoneRecord(code)
	r.zones[code] = z
	r.order = append(r.order, code)
	return z
}

// Codes returns the zone codes in first-seen order
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.order))
	copy(codes, r.order)
	return codes
}

// Records returns the zone records in first-seen order
func (r *Registry) Records() []*ZoneRecord {
	records := make([]*ZoneRecord, 0, len(r.order))
	for _, code := range r.order {
		records = append(records, r.zones[code])
	}
	return records
}

// AddUsage records a usage for a zone. Returns false if the (code, group)
// pair was already present.
func (r *Registry) AddUsage(zone string, u Usage) bool {
	return r.Ensure(zone).AddUsage(u)
}

// SetDominance sets the dominant use of a zone, replacing any earlier value
func (r *Registry) SetDominance(zone, value string) {
	r.Ensure(zone).Dominante = value
}

// AppendMargin appends characters to a margin of a zone
func (r *Registry) AppendMargin(zone string, kind MarginKind, s string) {
	r.Ensure(zone).AppendMargin(kind, s)
}

// MarshalJSON encodes the registry as an object keyed by zone code
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.zones)
}

// UnmarshalJSON decodes an object keyed by zone code. Since JSON objects
// carry no order, zones are registered in sorted code order.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var zones map[string]*ZoneRecord
	if err := json.Unmarshal(data, &zones); err != nil {
		return err
	}

	codes := make([]string, 0, len(zones))
	for code := range zones {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	r.zones = make(map[string]*ZoneRecord, len(zones))
	r.order = make([]string, 0, len(zones))
	for _, code := range codes {
		z := zones[code]
		if z == nil {
			z = NewZoneRecord(code)
		}
		z.Code = code
		r.zones[code] = z
		r.order = append(r.order, code)
	}
	return nil
}
