package bcftab

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet everything lands on.
const SheetName = "BCF Report"

// Column width points per semantic class: free text goes wide, GUIDs
// wider still, coordinates fixed-narrow.
var classWidths = map[widthClass]float64{
	widthNarrow:    10,
	widthMedium:    18,
	widthWide:      46,
	widthExtraWide: 40,
	widthCoord:     12,
}

var (
	viewpointSubHeader = []string{"Viewpoint #", "Coordinates", "Camera Position", "Camera Target", "GUID"}
	commentSubHeader   = []string{"Comment #", "Comments", "Author", "Date", "Comment Text"}
)

// WriteWorkbook renders the project files as a single-sheet workbook.
// Layout: a dated title row, a metadata block, a styled column header
// of "Topic #" plus the selected field labels, then per topic one data
// row with viewpoint and comment sub-blocks, separated by blank spacer
// rows. Field values match WriteDelimited except for the two sanctioned
// divergences: display dates and newline list joins.
func WriteWorkbook(w io.Writer, files []ProjectFile, selection []FieldID) error {
	if err := Validate(files); err != nil {
		return err
	}
	f, err := buildWorkbook(files, selection)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// MarshalWorkbook renders the project files as a workbook and returns
// the binary buffer. Callers persist it under their own filename
// convention.
func MarshalWorkbook(files []ProjectFile, selection []FieldID) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, files, selection); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildWorkbook(files []ProjectFile, selection []FieldID) (*excelize.File, error) {
	b, err := newWorkbookBuilder(selectFields(selection))
	if err != nil {
		return nil, err
	}
	if err := b.build(files); err != nil {
		b.f.Close()
		return nil, err
	}
	return b.f, nil
}

type workbookBuilder struct {
	f      *excelize.File
	fields []FieldID
	row    int // next sheet row, 1-based

	titleStyle     int
	metaLabelStyle int
	headerStyle    int
	subHeaderStyle int
	numberStyle    int
}

func newWorkbookBuilder(fields []FieldID) (*workbookBuilder, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}
	b := &workbookBuilder{f: f, fields: fields, row: 1}
	if err := b.makeStyles(); err != nil {
		f.Close()
		return nil, err
	}
	return b, nil
}

func (b *workbookBuilder) makeStyles() error {
	var err error
	if b.titleStyle, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return err
	}
	if b.metaLabelStyle, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return err
	}
	thin := []excelize.Border{
		{Type: "left", Color: "999999", Style: 1},
		{Type: "right", Color: "999999", Style: 1},
		{Type: "top", Color: "999999", Style: 1},
		{Type: "bottom", Color: "999999", Style: 1},
	}
	if b.headerStyle, err = b.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Border:    thin,
	}); err != nil {
		return err
	}
	if b.subHeaderStyle, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true},
	}); err != nil {
		return err
	}
	b.numberStyle, err = b.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	return err
}

func (b *workbookBuilder) build(files []ProjectFile) error {
	if err := b.writeTitle(); err != nil {
		return err
	}
	if err := b.writeMetadata(files); err != nil {
		return err
	}
	if err := b.writeHeader(); err != nil {
		return err
	}
	topicNumber := 0
	for fi := range files {
		file := &files[fi]
		for ti := range file.Topics {
			topicNumber++
			if err := b.writeTopic(file, &file.Topics[ti], topicNumber); err != nil {
				return err
			}
		}
	}
	return b.setColumnWidths()
}

// writeRow writes cells starting at column A of the next sheet row and
// returns that row. Nil cells produce a blank spacer row.
func (b *workbookBuilder) writeRow(cells []any) (int, error) {
	r := b.row
	b.row++
	if len(cells) == 0 {
		return r, nil
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		return r, err
	}
	return r, b.f.SetSheetRow(SheetName, cell, &cells)
}

func (b *workbookBuilder) styleRow(row, cols, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return b.f.SetCellStyle(SheetName, start, end, style)
}

func (b *workbookBuilder) writeTitle() error {
	title := fmt.Sprintf("BCF Report - %s", time.Now().Format("January 2, 2006"))
	r, err := b.writeRow([]any{title})
	if err != nil {
		return err
	}
	if err := b.styleRow(r, 1, b.titleStyle); err != nil {
		return err
	}
	_, err = b.writeRow(nil)
	return err
}

func (b *workbookBuilder) writeMetadata(files []ProjectFile) error {
	var topics, comments int
	var names, versions []string
	for i := range files {
		names = append(names, files[i].ProjectName)
		versions = append(versions, files[i].Version)
		topics += len(files[i].Topics)
		for t := range files[i].Topics {
			comments += len(files[i].Topics[t].Comments)
		}
	}
	names = distinct(names)
	versions = distinct(versions)

	project := ""
	if len(names) == 1 {
		project = names[0]
	} else {
		project = fmt.Sprintf("%d projects", len(names))
	}

	entries := [][2]any{
		{"Files Processed", len(files)},
		{"Project", project},
		{"BCF Versions", strings.Join(versions, ", ")},
		{"Total Topics", topics},
		{"Total Comments", comments},
	}
	for _, e := range entries {
		r, err := b.writeRow([]any{e[0], e[1]})
		if err != nil {
			return err
		}
		if err := b.styleRow(r, 1, b.metaLabelStyle); err != nil {
			return err
		}
	}
	_, err := b.writeRow(nil)
	return err
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (b *workbookBuilder) writeHeader() error {
	cells := make([]any, 0, len(b.fields)+1)
	cells = append(cells, "Topic #")
	for _, f := range b.fields {
		cells = append(cells, f.Label())
	}
	r, err := b.writeRow(cells)
	if err != nil {
		return err
	}
	return b.styleRow(r, len(cells), b.headerStyle)
}

func (b *workbookBuilder) writeTopic(file *ProjectFile, topic *Topic, topicNumber int) error {
	rc := rowContext{typ: RowTopic, file: file, topic: topic, topicNumber: topicNumber}
	wantCamera := hasCameraField(b.fields)
	if wantCamera {
		rc.primary = PrimaryViewpoint(topic)
	}
	if _, err := b.writeRow(b.fieldCells(strconv.Itoa(topicNumber), &rc)); err != nil {
		return err
	}

	if wantCamera {
		if vps := coordinateViewpoints(topic); len(vps) > 0 {
			if err := b.writeSubHeader(viewpointSubHeader); err != nil {
				return err
			}
			for i, vp := range vps {
				vrc := rc
				vrc.typ = RowViewpoint
				vrc.primary = nil
				vrc.viewpoint = vp
				vrc.viewpointNumber = i + 1
				number := fmt.Sprintf("%d.V%d", topicNumber, i+1)
				if _, err := b.writeRow(b.fieldCells(number, &vrc)); err != nil {
					return err
				}
			}
		}
	}

	if hasCommentField(b.fields) && len(topic.Comments) > 0 {
		if err := b.writeSubHeader(commentSubHeader); err != nil {
			return err
		}
		for i, c := range sortedComments(topic) {
			crc := rc
			crc.typ = RowComment
			crc.primary = nil
			crc.comment = c
			crc.commentNumber = i + 1
			number := fmt.Sprintf("%d.%d", topicNumber, i+1)
			if _, err := b.writeRow(b.fieldCells(number, &crc)); err != nil {
				return err
			}
		}
	}

	_, err := b.writeRow(nil)
	return err
}

func (b *workbookBuilder) fieldCells(number string, rc *rowContext) []any {
	cells := make([]any, 0, len(b.fields)+1)
	cells = append(cells, number)
	for _, f := range b.fields {
		cells = append(cells, resolveValue(f, rc, workbookOptions))
	}
	return cells
}

// writeSubHeader writes a bold-italic section header padded to the full
// selection width.
func (b *workbookBuilder) writeSubHeader(labels []string) error {
	width := len(b.fields) + 1
	cells := make([]any, width)
	for i := range cells {
		cells[i] = ""
	}
	for i, l := range labels {
		if i < width {
			cells[i] = l
		}
	}
	r, err := b.writeRow(cells)
	if err != nil {
		return err
	}
	return b.styleRow(r, width, b.subHeaderStyle)
}

func (b *workbookBuilder) setColumnWidths() error {
	if err := b.f.SetColWidth(SheetName, "A", "A", 10); err != nil {
		return err
	}
	for i, fld := range b.fields {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		w := classWidths[fieldSpecs[fld].Width]
		// Long or full-width (CJK) labels still need to fit the header
		// cell.
		if lw := float64(runewidth.StringWidth(fld.Label()) + 4); lw > w {
			w = lw
		}
		if err := b.f.SetColWidth(SheetName, col, col, w); err != nil {
			return err
		}
	}
	// The numbering column reads left-aligned even for numeric-looking
	// values. Cell-level styles set above still win over the column
	// style.
	return b.f.SetColStyle(SheetName, "A", b.numberStyle)
}
