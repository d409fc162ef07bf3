package bcftab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoData            = errors.New("no project data")
	ErrNoTopics          = errors.New("no topics in project data")
	ErrUnknownField      = errors.New("unknown field")
)

// Format represents an output encoding.
type Format string

const (
	Delimited Format = "csv"
	Workbook  Format = "xlsx"
)

var formats = []Format{Delimited, Workbook}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders files in format f using the given field selection and
// writes the result to w.
func Write(w io.Writer, f Format, files []ProjectFile, selection []FieldID) error {
	switch f {
	case Delimited:
		return WriteDelimited(w, files, selection)
	case Workbook:
		return WriteWorkbook(w, files, selection)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders files in format f and returns the bytes.
func Marshal(f Format, files []ProjectFile, selection []FieldID) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, files, selection); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks that files contain anything to export: ErrNoData for
// an empty collection, ErrNoTopics when every file has zero topics.
// Both serializers call it before producing any output; callers driving
// [FlattenSeq] directly should call it themselves to keep the two error
// cases distinguishable.
func Validate(files []ProjectFile) error {
	if len(files) == 0 {
		return ErrNoData
	}
	for i := range files {
		if len(files[i].Topics) > 0 {
			return nil
		}
	}
	return ErrNoTopics
}
