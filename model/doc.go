// Package model defines the data exchanged between the stages of a zoning
// grid extraction.
//
// Positioned input:
//
//   - [TextRun] - one text fragment with its origin and rendered width
//   - [Page] - the runs of one page, in decoder order
//
// Derived and accumulated values:
//
//   - [ZoneColumn] - a zone code and the x center of its header cell
//   - [ZoneRecord] - everything observed for one zone across all pages
//   - [Registry] - zone code to [ZoneRecord], in first-seen order
//
// Margins are addressed through the closed [MarginKind] enum rather than by
// field name:
//
//	reg := model.NewRegistry()
//	reg.AppendMargin("604-Ia", model.MarginFront, "1")
//	reg.AppendMargin("604-Ia", model.MarginFront, "5")
//	reg.Get("604-Ia").Margin(model.MarginFront) // "15"
package model
