package bcftab

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type selectionDoc struct {
	Fields []string `yaml:"fields"`
}

// ParseSelection parses a YAML selection document of the form
//
//	fields:
//	  - title
//	  - status
//	  - commentText
//
// Every entry must belong to the field vocabulary; the first unknown
// entry fails the parse with ErrUnknownField.
func ParseSelection(data []byte) ([]FieldID, error) {
	var doc selectionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse selection: %w", err)
	}
	out := make([]FieldID, 0, len(doc.Fields))
	for _, s := range doc.Fields {
		f := FieldID(s)
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, s)
		}
		out = append(out, f)
	}
	return out, nil
}

// selectFields filters a caller selection down to vocabulary entries,
// preserving order. Serializers build the header and every row from the
// result, never from the raw selection.
func selectFields(selection []FieldID) []FieldID {
	out := make([]FieldID, 0, len(selection))
	for _, f := range selection {
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// hasCameraField reports whether any camera/coordinate field is
// selected. This is the switch that turns viewpoint-row emission on.
func hasCameraField(fields []FieldID) bool {
	for _, f := range fields {
		if fieldSpecs[f].Camera {
			return true
		}
	}
	return false
}

// hasCommentField reports whether any comment-exclusive field is
// selected; the workbook serializer keys its comment sub-blocks on it.
func hasCommentField(fields []FieldID) bool {
	for _, f := range fields {
		if fieldSpecs[f].Rows == onComment {
			return true
		}
	}
	return false
}
