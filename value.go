package bcftab

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the timestamp shapes real BCF sources emit.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateISO normalizes a date string to YYYY-MM-DD, the form the
// delimited serializer emits. Unparseable input passes through
// unchanged rather than failing the export.
func FormatDateISO(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}

// formatDateDisplay renders the workbook's human-readable date form.
func formatDateDisplay(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format("Jan 2, 2006")
	}
	return s
}

// FormatCoordinate renders a raw scalar as a fixed 3-decimal string.
// It is total: nil, empty, non-numeric, and non-finite input all
// degrade to "" and nothing panics.
func FormatCoordinate(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case *float64:
		if x == nil {
			return ""
		}
		return formatFinite(*x)
	case float64:
		return formatFinite(x)
	case float32:
		return formatFinite(float64(x))
	case int:
		return formatFinite(float64(x))
	case int64:
		return formatFinite(float64(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return ""
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ""
		}
		return formatFinite(n)
	default:
		return ""
	}
}

func formatFinite(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	return strconv.FormatFloat(n, 'f', 3, 64)
}

// valueOptions carries the two sanctioned per-serializer divergences:
// date rendering and the list-join delimiter. Everything else about a
// field's value is identical across formats.
type valueOptions struct {
	date    func(string) string
	listSep string
}

var (
	delimitedOptions = valueOptions{date: FormatDateISO, listSep: "; "}
	workbookOptions  = valueOptions{date: formatDateDisplay, listSep: "\n"}
)

// rowContext points at the records a single output row draws from.
type rowContext struct {
	typ         RowType
	file        *ProjectFile
	topic       *Topic
	topicNumber int

	comment       *Comment
	commentNumber int

	viewpoint       *Viewpoint
	viewpointNumber int

	// primary is resolved once per topic when camera fields are
	// selected; topic-rows read camera values from it.
	primary *Viewpoint
}

// cameraSource returns the viewpoint camera fields read from: the row's
// own viewpoint on viewpoint-rows, the topic's primary viewpoint on
// topic-rows.
func (rc *rowContext) cameraSource() *Viewpoint {
	if rc.viewpoint != nil {
		return rc.viewpoint
	}
	return rc.primary
}

// resolveValue produces the value of field f for one row. Fields not
// applicable to the row's type are always empty, per the applicability
// table in fieldSpecs; this is the single population rule both
// serializers share.
func resolveValue(f FieldID, rc *rowContext, o valueOptions) string {
	spec, ok := fieldSpecs[f]
	if !ok || !spec.Rows.has(rc.typ) {
		return ""
	}
	switch f {
	case FieldTitle:
		return rc.topic.Title
	case FieldDescription:
		return rc.topic.Description
	case FieldStatus:
		return rc.topic.Status
	case FieldType:
		return rc.topic.Type
	case FieldPriority:
		return rc.topic.Priority
	case FieldStage:
		return rc.topic.Stage
	case FieldLabels:
		return strings.Join(rc.topic.Labels, o.listSep)
	case FieldAssignedTo:
		return rc.topic.AssignedTo
	case FieldCreationDate:
		return o.date(rc.topic.CreationDate)
	case FieldCreationAuthor:
		return rc.topic.CreationAuthor
	case FieldModifiedDate:
		return o.date(rc.topic.ModifiedDate)
	case FieldModifiedAuthor:
		return rc.topic.ModifiedAuthor
	case FieldDueDate:
		return o.date(rc.topic.DueDate)
	case FieldTopicGUID:
		return rc.topic.GUID
	case FieldReferenceLinks:
		return strings.Join(rc.topic.ReferenceLinks, o.listSep)
	case FieldDocumentReferences:
		return formatDocumentReferences(rc.topic.DocumentReferences, o.listSep)
	case FieldHeaderFiles:
		return strings.Join(rc.topic.HeaderFiles, o.listSep)
	case FieldServerAssignedID:
		return rc.topic.ServerAssignedID
	case FieldIndex:
		return rc.topic.Index

	case FieldCommentNumber:
		return strconv.Itoa(rc.commentNumber)
	case FieldCommentDate:
		return o.date(rc.comment.Date)
	case FieldCommentAuthor:
		return rc.comment.Author
	case FieldCommentText:
		return rc.comment.Text
	case FieldCommentStatus:
		return rc.comment.Status

	case FieldSourceFile:
		return rc.file.Filename
	case FieldProjectName:
		return rc.file.ProjectName
	case FieldBCFVersion:
		return rc.file.Version
	case FieldViewpointCount:
		return strconv.Itoa(len(rc.topic.Viewpoints))
	case FieldCommentCount:
		return strconv.Itoa(len(rc.topic.Comments))

	default:
		return resolveCameraValue(f, rc.cameraSource())
	}
}

func resolveCameraValue(f FieldID, vp *Viewpoint) string {
	if vp == nil {
		return ""
	}
	switch f {
	case FieldCameraType:
		return vp.CameraType
	case FieldViewpointGUID:
		return vp.GUID
	case FieldCameraViewPointX:
		return FormatCoordinate(vp.CameraViewPoint.X)
	case FieldCameraViewPointY:
		return FormatCoordinate(vp.CameraViewPoint.Y)
	case FieldCameraViewPointZ:
		return FormatCoordinate(vp.CameraViewPoint.Z)
	case FieldCameraDirectionX:
		return FormatCoordinate(vp.CameraDirection.X)
	case FieldCameraDirectionY:
		return FormatCoordinate(vp.CameraDirection.Y)
	case FieldCameraDirectionZ:
		return FormatCoordinate(vp.CameraDirection.Z)
	case FieldCameraUpVectorX:
		return FormatCoordinate(vp.CameraUpVector.X)
	case FieldCameraUpVectorY:
		return FormatCoordinate(vp.CameraUpVector.Y)
	case FieldCameraUpVectorZ:
		return FormatCoordinate(vp.CameraUpVector.Z)
	case FieldFieldOfView:
		return FormatCoordinate(vp.FieldOfView)
	case FieldViewToWorldScale:
		return FormatCoordinate(vp.ViewToWorldScale)
	case FieldCameraPosX:
		return FormatCoordinate(vp.CameraPosition.X)
	case FieldCameraPosY:
		return FormatCoordinate(vp.CameraPosition.Y)
	case FieldCameraPosZ:
		return FormatCoordinate(vp.CameraPosition.Z)
	case FieldCameraTargetX:
		return FormatCoordinate(vp.CameraTarget.X)
	case FieldCameraTargetY:
		return FormatCoordinate(vp.CameraTarget.Y)
	case FieldCameraTargetZ:
		return FormatCoordinate(vp.CameraTarget.Z)
	default:
		return ""
	}
}

// formatDocumentReferences builds one compound string per reference
// from whichever identifying parts are present, parts joined by " | "
// and compounds by the serializer's list delimiter. References with no
// identifying parts at all are skipped.
func formatDocumentReferences(refs []DocumentReference, sep string) string {
	if len(refs) == 0 {
		return ""
	}
	compounds := make([]string, 0, len(refs))
	for _, r := range refs {
		var parts []string
		switch {
		case r.DocumentGUID != "":
			parts = append(parts, r.DocumentGUID)
		case r.URL != "":
			parts = append(parts, r.URL)
		}
		if r.Description != "" {
			parts = append(parts, r.Description)
		}
		if r.GUID != "" && r.GUID != r.DocumentGUID {
			parts = append(parts, r.GUID)
		}
		if len(parts) == 0 {
			continue
		}
		compounds = append(compounds, strings.Join(parts, " | "))
	}
	return strings.Join(compounds, sep)
}
