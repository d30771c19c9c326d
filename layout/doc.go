// Package layout groups positioned text runs into table rows.
//
// Grid pages carry no tabular markup, so rows are inferred from the
// baseline of each run. The [RowDetector] sorts a page's runs from the top
// of the page down and opens a new row whenever a run's baseline is at
// least the configured tolerance away from the baseline of the run that
// opened the current row:
//
//	detector := layout.NewRowDetector()
//	rows := detector.Detect(page.Runs)
//	for _, row := range rows {
//	    fmt.Println(row.Y, row.Text())
//	}
//
// Runs inside a row are ordered left to right. Detection is a pure
// function of its input: the same runs always produce the same rows.
package layout
