// Package tables reconstructs zoning grids from rows of positioned text.
//
// A zoning grid page has no cell structure, only runs of text. This package
// recovers it in stages:
//
//  1. [LocateHeader] finds the row holding the zone codes and turns it into
//     [model.ZoneColumn] values, splitting runs that merge several codes
//  2. [Classify] tags every row below the header as a group label, a usage
//     row, a dominance row, a margin row, or noise
//  3. [Nearest] maps an x position to the closest zone column; callers
//     reject matches beyond their acceptance radius
//  4. The [Extractor] folds the classified rows of every page into a
//     [model.Registry]
//  5. [Normalize] cleans the accumulated margin strings once at the end
//
// # Extraction
//
//	ext := tables.NewExtractor()
//	reg := ext.Run(pages)
//
// For page-by-page control, thread a [State] through [Extractor.ProcessPage]
// and call [Normalize] when done:
//
//	state := tables.NewState(tables.DefaultGroup)
//	for _, page := range pages {
//	    result := ext.ProcessPage(state, page)
//	    if !result.HasHeader() {
//	        continue
//	    }
//	}
//	tables.Normalize(state.Registry)
//
// # Configuration
//
// Distances are in page layout units. Defaults mirror the printed grids the
// extractor was tuned on:
//
//   - RowTolerance 4 - baseline band of a row
//   - LeftMargin 200 - runs at or left of this x are row labels
//   - UsageRadius 45, DominanceRadius 45, MarginRadius 55
//
// Extraction is single-threaded by construction: the registry and the
// current usage group are mutated in row order.
package tables
