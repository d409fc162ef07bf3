package bcftab

// The types below mirror the object graph produced by the BCF parsing
// collaborator. They are read-only to this package: flattening and both
// serializers copy values out and never hold references back into the
// graph, so later mutation of a ProjectFile cannot corrupt output that
// has already been produced.
//
// Dates are carried as raw strings because real-world BCF sources mix
// timestamp shapes and occasionally emit values that do not parse at
// all; parsing happens at the point of use and degrades to the raw
// string (see FormatDateISO).

// Vector is a camera vector with independently optional components, as
// serialized by BCF 2.x/3.0 sources (upper-case keys).
type Vector struct {
	X *float64 `json:"X,omitempty"`
	Y *float64 `json:"Y,omitempty"`
	Z *float64 `json:"Z,omitempty"`
}

// IsZero reports whether no component is set.
func (v Vector) IsZero() bool { return v.X == nil && v.Y == nil && v.Z == nil }

// LegacyVector mirrors Vector with the lower-case keys older exports
// use for cameraPosition/cameraTarget.
type LegacyVector struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// IsZero reports whether no component is set.
func (v LegacyVector) IsZero() bool { return v.X == nil && v.Y == nil && v.Z == nil }

// Viewpoint is a saved 3D camera associated with a Topic.
type Viewpoint struct {
	GUID string `json:"guid"`
	// File is the viewpoint's source file name inside the BCF
	// container, e.g. "viewpoint.bcfv".
	File             string   `json:"viewpointFile"`
	CameraType       string   `json:"cameraType"` // "perspective" or "orthogonal"
	CameraViewPoint  Vector   `json:"CameraViewPoint"`
	CameraDirection  Vector   `json:"CameraDirection"`
	CameraUpVector   Vector   `json:"CameraUpVector"`
	FieldOfView      *float64 `json:"FieldOfView,omitempty"`
	ViewToWorldScale *float64 `json:"ViewToWorldScale,omitempty"`

	// Legacy camera vectors kept for backward compatibility with
	// pre-2.1 sources.
	CameraPosition LegacyVector `json:"cameraPosition"`
	CameraTarget   LegacyVector `json:"cameraTarget"`
}

// Comment is one entry of a topic's discussion thread.
type Comment struct {
	Date   string            `json:"date"`
	Author string            `json:"author"`
	Text   string            `json:"comment"`
	Status string            `json:"status"`
	Custom map[string]string `json:"_customFields,omitempty"`
}

// DocumentReference points a Topic at an external or contained
// document. Which identifying parts are present varies by schema
// revision.
type DocumentReference struct {
	GUID         string `json:"guid,omitempty"`
	DocumentGUID string `json:"documentGuid,omitempty"`
	URL          string `json:"url,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Topic is one issue thread. Comments and Viewpoints are
// insertion-ordered; neither is assumed sorted by date.
type Topic struct {
	GUID             string   `json:"guid"`
	ServerAssignedID string   `json:"serverAssignedId,omitempty"` // BCF 3.0
	Index            string   `json:"index,omitempty"`            // BCF 3.0
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Status           string   `json:"status,omitempty"`
	Type             string   `json:"type,omitempty"`
	Priority         string   `json:"priority,omitempty"`
	Stage            string   `json:"stage,omitempty"`
	Labels           []string `json:"labels,omitempty"`
	AssignedTo       string   `json:"assignedTo,omitempty"`
	CreationDate     string   `json:"creationDate,omitempty"`
	CreationAuthor   string   `json:"creationAuthor,omitempty"`
	ModifiedDate     string   `json:"modifiedDate,omitempty"`
	ModifiedAuthor   string   `json:"modifiedAuthor,omitempty"`
	DueDate          string   `json:"dueDate,omitempty"`

	Comments   []Comment   `json:"comments,omitempty"`
	Viewpoints []Viewpoint `json:"viewpoints,omitempty"`

	ReferenceLinks     []string            `json:"referenceLinks,omitempty"`
	DocumentReferences []DocumentReference `json:"documentReferences,omitempty"`
	HeaderFiles        []string            `json:"headerFiles,omitempty"`

	Custom map[string]string `json:"_customFields,omitempty"`
}

// ProjectFile is one parsed BCF source.
type ProjectFile struct {
	Filename    string  `json:"filename"`
	ProjectName string  `json:"projectName"`
	Version     string  `json:"version"` // schema revision string, e.g. "2.1"
	Topics      []Topic `json:"topics"`
}
