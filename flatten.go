package bcftab

import (
	"iter"
	"slices"
	"strconv"
	"time"
)

// FlatRow is one record of the canonical row model. Values holds one
// entry per selected (and known) field, in selection order; fields not
// applicable to the row's type are empty, never omitted, so the column
// count is fixed per selection. Rows are value snapshots with no
// reference back into the source graph.
type FlatRow struct {
	Type   RowType
	Number string // hierarchical number: "3", "3.2", "3.V1"
	Values []string
}

// Flatten converts the project files into the canonical row sequence
// for the given field selection: one topic-row per topic, comment-rows
// in ascending date order, and viewpoint-rows when the selection
// includes camera fields. It returns ErrNoData or ErrNoTopics for
// structurally empty input.
func Flatten(files []ProjectFile, selection []FieldID) ([]FlatRow, error) {
	if err := Validate(files); err != nil {
		return nil, err
	}
	var rows []FlatRow
	for row := range FlattenSeq(files, selection) {
		rows = append(rows, row)
	}
	return rows, nil
}

// FlattenSeq is the streaming form of Flatten. Rows are produced one at
// a time, so a host can interleave progress reporting or stop pulling
// whenever it likes. It performs no structural validation; callers that
// need the ErrNoData/ErrNoTopics distinction call [Validate] first.
func FlattenSeq(files []ProjectFile, selection []FieldID) iter.Seq[FlatRow] {
	fields := selectFields(selection)
	wantCamera := hasCameraField(fields)
	return func(yield func(FlatRow) bool) {
		topicNumber := 0
		for fi := range files {
			file := &files[fi]
			for ti := range file.Topics {
				topicNumber++
				if !flattenTopic(yield, file, &file.Topics[ti], topicNumber, fields, wantCamera) {
					return
				}
			}
		}
	}
}

func flattenTopic(yield func(FlatRow) bool, file *ProjectFile, topic *Topic, topicNumber int, fields []FieldID, wantCamera bool) bool {
	rc := rowContext{
		typ:         RowTopic,
		file:        file,
		topic:       topic,
		topicNumber: topicNumber,
	}
	if wantCamera {
		rc.primary = PrimaryViewpoint(topic)
	}
	if !yield(makeRow(strconv.Itoa(topicNumber), fields, &rc)) {
		return false
	}

	for i, c := range sortedComments(topic) {
		crc := rc
		crc.typ = RowComment
		crc.primary = nil
		crc.comment = c
		crc.commentNumber = i + 1
		number := strconv.Itoa(topicNumber) + "." + strconv.Itoa(i+1)
		if !yield(makeRow(number, fields, &crc)) {
			return false
		}
	}

	if wantCamera {
		for i, vp := range coordinateViewpoints(topic) {
			vrc := rc
			vrc.typ = RowViewpoint
			vrc.primary = nil
			vrc.viewpoint = vp
			vrc.viewpointNumber = i + 1
			number := strconv.Itoa(topicNumber) + ".V" + strconv.Itoa(i+1)
			if !yield(makeRow(number, fields, &vrc)) {
				return false
			}
		}
	}
	return true
}

func makeRow(number string, fields []FieldID, rc *rowContext) FlatRow {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = resolveValue(f, rc, delimitedOptions)
	}
	return FlatRow{Type: rc.typ, Number: number, Values: values}
}

// sortedComments returns pointers to the topic's comments in ascending
// date order. Missing or unparseable dates sort as the epoch; the sort
// is stable so ties keep their insertion order.
func sortedComments(t *Topic) []*Comment {
	out := make([]*Comment, len(t.Comments))
	for i := range t.Comments {
		out[i] = &t.Comments[i]
	}
	slices.SortStableFunc(out, func(a, b *Comment) int {
		return commentTime(a).Compare(commentTime(b))
	})
	return out
}

func commentTime(c *Comment) time.Time {
	if t, ok := parseDate(c.Date); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}
