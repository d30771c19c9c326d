package model

import "fmt"

// ZoneColumn is one zone column of a grid header. CenterX is only meaningful
// on the page whose header produced it.
type ZoneColumn struct {
	Code    string
	CenterX float64
}

// Usage is a permitted usage code recorded for a zone, qualified by the
// usage group that was active when the mark was read.
type Usage struct {
	Code  string `json:"code" yaml:"code"`
	Group string `json:"group" yaml:"group"`
}

// MarginKind identifies one of the setback margins of a zone
type MarginKind int

const (
	MarginFront MarginKind = iota
	MarginRear
	MarginSide
	MarginCombinedSide
)

// MarginKinds lists every margin kind in output order
func MarginKinds() []MarginKind {
	return []MarginKind{MarginFront, MarginRear, MarginSide, MarginCombinedSide}
}

// String returns a string representation of the margin kind
func (k MarginKind) String() string {
	switch k {
	case MarginFront:
		return "front"
	case MarginRear:
		return "rear"
	case MarginSide:
		return "side"
	case MarginCombinedSide:
		return "combined-side"
	default:
		return fmt.Sprintf("MarginKind(%d)", int(k))
	}
}

// Key returns the output field name of the margin
func (k MarginKind) Key() string {
	switch k {
	case MarginFront:
		return "margeAvant"
	case MarginRear:
		return "margeArriere"
	case MarginSide:
		return "margeLaterale"
	case MarginCombinedSide:
		return "margeLateraleCombinee"
	default:
		return ""
	}
}

// SnakeKey returns the field name used by zoning datasets
func (k MarginKind) SnakeKey() string {
	switch k {
	case MarginFront:
		return "marge_avant"
	case MarginRear:
		return "marge_arriere"
	case MarginSide:
		return "marge_laterale"
	case MarginCombinedSide:
		return "marge_laterale_combinee"
	default:
		return ""
	}
}

// ZoneRecord accumulates everything observed for one zone. Empty fields
// mean the value was never observed.
type ZoneRecord struct {
	Code                  string  `json:"-" yaml:"-"`
	MargeAvant            string  `json:"margeAvant,omitempty" yaml:"margeAvant,omitempty"`
	MargeArriere          string  `json:"margeArriere,omitempty" yaml:"margeArriere,omitempty"`
	MargeLaterale         string  `json:"margeLaterale,omitempty" yaml:"margeLaterale,omitempty"`
	MargeLateraleCombinee string  `json:"margeLateraleCombinee,omitempty" yaml:"margeLateraleCombinee,omitempty"`
	Dominante             string  `json:"dominante,omitempty" yaml:"dominante,omitempty"`
	Usages                []Usage `json:"usages,omitempty" yaml:"usages,omitempty"`
}

// NewZoneRecord creates an empty record for a zone
func NewZoneRecord(code string) *ZoneRecord {
	return &ZoneRecord{Code: code}
}

// Margin returns the raw value of a margin
func (z *ZoneRecord) Margin(kind MarginKind) string {
	if p := z.marginField(kind); p != nil {
		return *p
	}
	return ""
}

// SetMargin replaces the value of a margin
func (z *ZoneRecord) SetMargin(kind MarginKind, value string) {
	if p := z.marginField(kind); p != nil {
		*p = value
	}
}

// AppendMargin appends s to the current value of a margin
func (z *ZoneRecord) AppendMargin(kind MarginKind, s string) {
	if p := z.marginField(kind); p != nil {
		*p += s
	}
}

func (z *ZoneRecord) marginField(kind MarginKind) *string {
	switch kind {
	case MarginFront:
		return &z.MargeAvant
	case MarginRear:
		return &z.MargeArriere
	case MarginSide:
		return &z.MargeLaterale
	case MarginCombinedSide:
		return &z.MargeLateraleCombinee
	default:
		return nil
	}
}

// HasUsage reports whether the exact (code, group) pair is already recorded
func (z *ZoneRecord) HasUsage(u Usage) bool {
	for _, existing := range z.Usages {
		if existing == u {
			return true
		}
	}
	return false
}

// AddUsage records u unless the same (code, group) pair is present.
// Returns true if the usage was added.
func (z *ZoneRecord) AddUsage(u Usage) bool {
	if z.HasUsage(u) {
		return false
	}
	z.Usages = append(z.Usages, u)
	return true
}

// IsEmpty reports whether nothing has been observed for the zone
func (z *ZoneRecord) IsEmpty() bool {
	for _, k := range MarginKinds() {
		if z.Margin(k) != "" {
			return false
		}
	}
	return z.Dominante == "" && len(z.Usages) == 0
}
