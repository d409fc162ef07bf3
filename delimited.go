package bcftab

import (
	"bytes"
	"encoding/csv"
	"io"
	"iter"
	"slices"
)

// rowTypePrefix are the columns prepended before the selected fields in
// delimited output.
var rowTypePrefix = []string{"Row Type", "Topic #"}

// WriteDelimited renders the project files as an RFC 4180 delimited
// text document: a header row of "Row Type", "Topic #", and the
// selected field labels, then one line per flattened row. Values use
// ISO dates and "; " list joins. Fields outside the vocabulary are
// dropped from header and rows alike.
func WriteDelimited(w io.Writer, files []ProjectFile, selection []FieldID) error {
	if err := Validate(files); err != nil {
		return err
	}
	return WriteDelimitedSeq(w, FlattenSeq(files, selection), selection)
}

// MarshalDelimited renders the project files as delimited text and
// returns the bytes.
func MarshalDelimited(files []ProjectFile, selection []FieldID) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDelimited(&buf, files, selection); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDelimitedRows serializes already-flattened rows. The selection
// must be the one the rows were flattened with, or columns will not
// line up with the header.
func WriteDelimitedRows(w io.Writer, rows []FlatRow, selection []FieldID) error {
	return WriteDelimitedSeq(w, slices.Values(rows), selection)
}

// WriteDelimitedSeq serializes a row sequence as it arrives. The header
// and every record are built from the same filtered field list, so they
// cannot misalign.
func WriteDelimitedSeq(w io.Writer, rows iter.Seq[FlatRow], selection []FieldID) error {
	fields := selectFields(selection)
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(rowTypePrefix)+len(fields))
	header = append(header, rowTypePrefix...)
	for _, f := range fields {
		header = append(header, f.Label())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Type.String(), row.Number)
		record = append(record, row.Values...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
