// Package listview arranges flat records into the data a sectioned list
// widget with sticky headers is built from.
//
// A sectioned list needs three parallel structures: a content table holding
// the display value of every section header and every row, the order of the
// sections, and the order of the rows within each section. [Format] produces
// all three in one pass as a [Result]:
//
//	res := listview.Format(contacts,
//		func(c Contact) string { return c.Initial }, // section key
//		func(c Contact) string { return c.Initial }, // section header
//		func(c Contact) string { return c.Name },    // row value
//	)
//
// # Sections and Rows
//
// Records are grouped by section key. Sections appear in the order their key
// first appears in the input, not in key order, and rows keep the input order
// of their records. Sections are numbered from 0 ([SectionID]); a row is
// identified by its section and its position within it ([RowID]), written
// "section,row".
//
// The header value of a section is taken from its first record. All records
// of a section are expected to produce the same header; this is not checked.
//
// # Grouping
//
// [Format] compares keys with ==. Use [FormatFunc] to supply an equality
// function for keys that are not comparable or need a looser match, or
// [FormatWith] to plug in any [Grouper]. [GroupBy] and [GroupByFunc] are the
// stable groupers the formatters use.
//
// Records that implement [Grouped] can be sectioned directly with
// [FormatGrouped].
//
// # Streaming Input
//
// [FormatSeq] and [FormatChan] accept an iterator or a channel. The records
// are collected before grouping because a section may gain rows until the
// input ends.
//
// # Encoding
//
// [Write] and [Marshal] serialize a [Result]:
//
//   - [JSON] and [YAML] — {dataBlob, sectionIDs, rowIDs}, the shape list
//     widgets take. [Result] also implements the json and yaml marshaler
//     interfaces, so results decode back into typed maps.
//   - [CSV] — one record per section header and per row
//   - [Outline] — indented plain text for terminals and logs
//   - [GoTemplate] — a text/template executed once per [Section]
//
// Use [ParseEncoding] to convert a CLI flag string into an [Encoding].
//
// # Errors
//
// Formatting never fails. Panics raised by the caller's extractor or equality
// functions propagate unchanged. Encoding exports sentinel errors:
//
//   - [ErrUnsupportedEncoding] — unknown encoding string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrInvalidID] — malformed section or row identifier
package listview
