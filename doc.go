// Package bcftab flattens parsed BCF (BIM Collaboration Format) project
// data into tabular rows and serializes them to two output encodings: a
// delimited text document and a spreadsheet workbook.
//
// The package consumes an already-parsed object graph — a sequence of
// [ProjectFile] values, each holding topics with comments and 3D
// viewpoints — and a caller-supplied ordered field selection drawn from a
// closed vocabulary of [FieldID] constants. It does not parse BCF
// containers, validate schema conformance, or mutate source data.
//
// # Entry Points
//
// The central entry points are [Write] and [Marshal], which accept a
// [Format] constant:
//
//	out, err := bcftab.Marshal(bcftab.Delimited, files, selection)
//
// Per-format functions [WriteDelimited] and [WriteWorkbook] are also
// exported, along with the flattening core [Flatten] and its streaming
// form [FlattenSeq].
//
// # Flattening
//
// [Flatten] walks every topic in order and produces [FlatRow] values:
// one topic-row per topic, one comment-row per comment in ascending date
// order, and — only when the selection includes camera fields — one
// viewpoint-row per viewpoint carrying coordinate data. Rows are
// numbered hierarchically ("3", "3.2", "3.V1"). Every row holds one
// value per selected field; fields that do not apply to the row's type
// are empty, never omitted, so column counts are fixed per selection.
//
// When a topic-row needs camera values, they come from the topic's
// primary viewpoint, chosen by [PrimaryViewpoint] with a deterministic
// three-tier priority. Both serializers resolve camera data through the
// same function, so they always agree on a topic's camera values.
//
// # Output Formats
//
// The delimited serializer emits an RFC 4180 document: a header row of
// "Row Type", "Topic #", and the selected field labels, then one line
// per flattened row, with ISO dates and "; "-joined lists.
//
// The workbook serializer produces a single-sheet workbook named
// "BCF Report": a dated title row, a metadata block, a styled column
// header, and per-topic data rows interleaved with viewpoint and
// comment sub-blocks. It renders display dates and joins lists with
// line breaks for in-cell readability; these are the only two value
// divergences from the delimited output.
//
// # Field Discovery
//
// [DiscoverFields] scans a data set and reports which fields actually
// carry data, producing the menu a caller may select from.
// [DiscoverCustomFields] catalogs vendor and project extension fields
// found outside the base schema; the resulting registry is
// informational and not consumed by either serializer.
//
// # Field Selection
//
// Selections are ordered slices of [FieldID]. [ParseSelection] reads a
// YAML selection document and validates every entry against the
// vocabulary. Unknown entries reaching a serializer directly are
// filtered out before the header is built, so headers and row values
// always come from the same field list.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoData] — empty project-file collection
//   - [ErrNoTopics] — files present but every one has zero topics
//   - [ErrUnknownField] — selection entry outside the vocabulary
//   - [ErrUnsupportedFormat] — unknown format string
//
// Value-level problems (bad dates, non-numeric coordinates) never abort
// an export; they degrade to an empty string or pass the raw value
// through.
package bcftab
