// Package reader supplies pages of positioned text runs to the grid
// extractor.
//
// A [Source] yields one [model.Page] per call to Page, numbered from 1.
// Three sources are provided:
//
//   - PDF documents, decoded with github.com/ledongthuc/pdf. The decoder
//     reports one entry per glyph; glyphs sharing a baseline and font that
//     sit closer than half a space width are merged into runs.
//   - JSON page dumps: a single array holding one array of runs per page.
//   - JSON Lines page dumps: one array of runs per line.
//
// Run objects in dumps use either {"text","x","y","width"} or the shorter
// {"str","x","y","w"} keys.
//
// # Opening a Source
//
// [Open] picks the source from the file extension, falling back to the
// leading bytes when the extension is unknown:
//
//	src, err := reader.Open("grilles.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for n := 1; n <= src.NumPages(); n++ {
//	    page, err := src.Page(n)
//	    ...
//	}
//
// # Page Errors
//
// A page that cannot be decoded returns a *[PageError]. Callers skip the
// page and continue; decoder panics are recovered at the page boundary
// and reported the same way.
package reader
