package bcftab

// FieldID identifies one logical column in the export vocabulary. The
// vocabulary is closed and versioned: serializers silently drop
// selection entries outside it, and both build their header and row
// values from the same filtered list so columns never misalign.
type FieldID string

// Topic fields.
const (
	FieldTitle              FieldID = "title"
	FieldDescription        FieldID = "description"
	FieldStatus             FieldID = "status"
	FieldType               FieldID = "type"
	FieldPriority           FieldID = "priority"
	FieldStage              FieldID = "stage"
	FieldLabels             FieldID = "labels"
	FieldAssignedTo         FieldID = "assignedTo"
	FieldCreationDate       FieldID = "creationDate"
	FieldCreationAuthor     FieldID = "creationAuthor"
	FieldModifiedDate       FieldID = "modifiedDate"
	FieldModifiedAuthor     FieldID = "modifiedAuthor"
	FieldDueDate            FieldID = "dueDate"
	FieldTopicGUID          FieldID = "topicGuid"
	FieldReferenceLinks     FieldID = "referenceLinks"
	FieldDocumentReferences FieldID = "documentReferences"
	FieldHeaderFiles        FieldID = "headerFiles"
	FieldServerAssignedID   FieldID = "serverAssignedId" // BCF 3.0
	FieldIndex              FieldID = "index"            // BCF 3.0
)

// Comment fields.
const (
	FieldCommentNumber FieldID = "commentNumber"
	FieldCommentDate   FieldID = "commentDate"
	FieldCommentAuthor FieldID = "commentAuthor"
	FieldCommentText   FieldID = "commentText"
	FieldCommentStatus FieldID = "commentStatus"
)

// Metadata fields. Always derivable, so always "available" to select.
const (
	FieldSourceFile     FieldID = "sourceFile"
	FieldProjectName    FieldID = "projectName"
	FieldBCFVersion     FieldID = "bcfVersion"
	FieldViewpointCount FieldID = "viewpointCount"
	FieldCommentCount   FieldID = "commentCount"
)

// Camera and coordinate fields. Selecting any of these makes the
// flattening engine emit viewpoint-rows for coordinate-bearing
// viewpoints.
const (
	FieldCameraType       FieldID = "cameraType"
	FieldCameraViewPointX FieldID = "cameraViewPointX"
	FieldCameraViewPointY FieldID = "cameraViewPointY"
	FieldCameraViewPointZ FieldID = "cameraViewPointZ"
	FieldCameraDirectionX FieldID = "cameraDirectionX"
	FieldCameraDirectionY FieldID = "cameraDirectionY"
	FieldCameraDirectionZ FieldID = "cameraDirectionZ"
	FieldCameraUpVectorX  FieldID = "cameraUpVectorX"
	FieldCameraUpVectorY  FieldID = "cameraUpVectorY"
	FieldCameraUpVectorZ  FieldID = "cameraUpVectorZ"
	FieldFieldOfView      FieldID = "fieldOfView"
	FieldViewToWorldScale FieldID = "viewToWorldScale"
	FieldViewpointGUID    FieldID = "viewpointGuid"

	// Legacy lower-case camera vectors.
	FieldCameraPosX    FieldID = "cameraPosX"
	FieldCameraPosY    FieldID = "cameraPosY"
	FieldCameraPosZ    FieldID = "cameraPosZ"
	FieldCameraTargetX FieldID = "cameraTargetX"
	FieldCameraTargetY FieldID = "cameraTargetY"
	FieldCameraTargetZ FieldID = "cameraTargetZ"
)

// RowType tags a flattened row.
type RowType int

const (
	RowTopic RowType = iota
	RowComment
	RowViewpoint
)

// String returns the row type's display name, used as the leading
// column of delimited output.
func (t RowType) String() string {
	switch t {
	case RowTopic:
		return "Topic"
	case RowComment:
		return "Comment"
	case RowViewpoint:
		return "Viewpoint"
	default:
		return "Unknown"
	}
}

// rowMask declares which row types a field is populated on. Fields are
// forced empty on every other row type; the single table below replaces
// the per-serializer exclusion lists the source design drifted between.
type rowMask uint8

const (
	onTopic rowMask = 1 << iota
	onComment
	onViewpoint
)

const onAll = onTopic | onComment | onViewpoint

func (m rowMask) has(t RowType) bool {
	switch t {
	case RowTopic:
		return m&onTopic != 0
	case RowComment:
		return m&onComment != 0
	case RowViewpoint:
		return m&onViewpoint != 0
	default:
		return false
	}
}

// valueKind drives value rendering: dates go through the serializer's
// date formatter, lists through its join delimiter, coordinates through
// FormatCoordinate.
type valueKind int

const (
	kindText valueKind = iota
	kindDate
	kindList
	kindDocRefs
	kindCoord
)

// widthClass buckets fields into workbook column widths by semantic
// class.
type widthClass int

const (
	widthNarrow widthClass = iota
	widthMedium
	widthWide
	widthExtraWide
	widthCoord
)

// fieldSpec is one row of the declarative field table: display label,
// row-type applicability, value kind, workbook width class, and whether
// the field belongs to the camera/coordinate group.
type fieldSpec struct {
	Label  string
	Rows   rowMask
	Kind   valueKind
	Width  widthClass
	Camera bool
}

var fieldSpecs = map[FieldID]fieldSpec{
	FieldTitle:              {"Title", onTopic, kindText, widthWide, false},
	FieldDescription:        {"Description", onTopic, kindText, widthWide, false},
	FieldStatus:             {"Status", onTopic, kindText, widthMedium, false},
	FieldType:               {"Type", onTopic, kindText, widthMedium, false},
	FieldPriority:           {"Priority", onTopic, kindText, widthMedium, false},
	FieldStage:              {"Stage", onTopic, kindText, widthMedium, false},
	FieldLabels:             {"Labels", onTopic, kindList, widthMedium, false},
	FieldAssignedTo:         {"Assigned To", onTopic, kindText, widthMedium, false},
	FieldCreationDate:       {"Creation Date", onTopic, kindDate, widthMedium, false},
	FieldCreationAuthor:     {"Creation Author", onTopic, kindText, widthMedium, false},
	FieldModifiedDate:       {"Modified Date", onTopic, kindDate, widthMedium, false},
	FieldModifiedAuthor:     {"Modified Author", onTopic, kindText, widthMedium, false},
	FieldDueDate:            {"Due Date", onTopic, kindDate, widthMedium, false},
	FieldTopicGUID:          {"Topic GUID", onTopic | onViewpoint, kindText, widthExtraWide, false},
	FieldReferenceLinks:     {"Reference Links", onTopic, kindList, widthWide, false},
	FieldDocumentReferences: {"Document References", onTopic, kindDocRefs, widthWide, false},
	FieldHeaderFiles:        {"Header Files", onTopic, kindList, widthWide, false},
	FieldServerAssignedID:   {"Server Assigned ID", onTopic, kindText, widthMedium, false},
	FieldIndex:              {"Index", onTopic, kindText, widthNarrow, false},

	FieldCommentNumber: {"Comment #", onComment, kindText, widthNarrow, false},
	FieldCommentDate:   {"Comment Date", onComment, kindDate, widthMedium, false},
	FieldCommentAuthor: {"Comment Author", onComment, kindText, widthMedium, false},
	FieldCommentText:   {"Comment Text", onComment, kindText, widthWide, false},
	FieldCommentStatus: {"Comment Status", onComment, kindText, widthMedium, false},

	FieldSourceFile:     {"Source File", onAll, kindText, widthMedium, false},
	FieldProjectName:    {"Project Name", onAll, kindText, widthMedium, false},
	FieldBCFVersion:     {"BCF Version", onAll, kindText, widthNarrow, false},
	FieldViewpointCount: {"Viewpoint Count", onTopic | onViewpoint, kindText, widthNarrow, false},
	FieldCommentCount:   {"Comment Count", onTopic, kindText, widthNarrow, false},

	FieldCameraType:       {"Camera Type", onTopic | onViewpoint, kindText, widthMedium, true},
	FieldCameraViewPointX: {"Camera View Point X", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraViewPointY: {"Camera View Point Y", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraViewPointZ: {"Camera View Point Z", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraDirectionX: {"Camera Direction X", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraDirectionY: {"Camera Direction Y", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraDirectionZ: {"Camera Direction Z", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraUpVectorX:  {"Camera Up Vector X", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraUpVectorY:  {"Camera Up Vector Y", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraUpVectorZ:  {"Camera Up Vector Z", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldFieldOfView:      {"Field Of View", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldViewToWorldScale: {"View To World Scale", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldViewpointGUID:    {"Viewpoint GUID", onTopic | onViewpoint, kindText, widthExtraWide, true},

	FieldCameraPosX:    {"Camera Position X", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraPosY:    {"Camera Position Y", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraPosZ:    {"Camera Position Z", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraTargetX: {"Camera Target X", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraTargetY: {"Camera Target Y", onTopic | onViewpoint, kindCoord, widthCoord, true},
	FieldCameraTargetZ: {"Camera Target Z", onTopic | onViewpoint, kindCoord, widthCoord, true},
}

// Canonical ordering of each field group, used by discovery results and
// the field listing surface.
var (
	topicFields = []FieldID{
		FieldTitle, FieldDescription, FieldStatus, FieldType,
		FieldPriority, FieldStage, FieldLabels, FieldAssignedTo,
		FieldCreationDate, FieldCreationAuthor, FieldModifiedDate,
		FieldModifiedAuthor, FieldDueDate, FieldTopicGUID,
		FieldReferenceLinks, FieldDocumentReferences, FieldHeaderFiles,
		FieldServerAssignedID, FieldIndex,
	}
	commentFields = []FieldID{
		FieldCommentNumber, FieldCommentDate, FieldCommentAuthor,
		FieldCommentText, FieldCommentStatus,
	}
	metadataFields = []FieldID{
		FieldSourceFile, FieldProjectName, FieldBCFVersion,
		FieldViewpointCount, FieldCommentCount,
	}
	cameraFields = []FieldID{
		FieldCameraType,
		FieldCameraViewPointX, FieldCameraViewPointY, FieldCameraViewPointZ,
		FieldCameraDirectionX, FieldCameraDirectionY, FieldCameraDirectionZ,
		FieldCameraUpVectorX, FieldCameraUpVectorY, FieldCameraUpVectorZ,
		FieldFieldOfView, FieldViewToWorldScale, FieldViewpointGUID,
		FieldCameraPosX, FieldCameraPosY, FieldCameraPosZ,
		FieldCameraTargetX, FieldCameraTargetY, FieldCameraTargetZ,
	}
)

// TopicFields returns the topic-level vocabulary in canonical order.
func TopicFields() []FieldID { return copyFields(topicFields) }

// CommentFields returns the comment-level vocabulary in canonical order.
func CommentFields() []FieldID { return copyFields(commentFields) }

// MetadataFields returns the metadata vocabulary in canonical order.
func MetadataFields() []FieldID { return copyFields(metadataFields) }

// CameraFields returns the camera/coordinate vocabulary in canonical
// order.
func CameraFields() []FieldID { return copyFields(cameraFields) }

// AllFields returns the complete vocabulary in canonical group order.
func AllFields() []FieldID {
	out := make([]FieldID, 0, len(fieldSpecs))
	out = append(out, topicFields...)
	out = append(out, commentFields...)
	out = append(out, metadataFields...)
	out = append(out, cameraFields...)
	return out
}

func copyFields(fields []FieldID) []FieldID {
	out := make([]FieldID, len(fields))
	copy(out, fields)
	return out
}

// Valid reports whether f belongs to the vocabulary.
func (f FieldID) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Label returns the field's display name, or "" for unknown fields.
func (f FieldID) Label() string { return fieldSpecs[f].Label }
