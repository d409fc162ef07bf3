package bcftab

import "strings"

// primaryMarker is the conventional file name BCF writers give the
// viewpoint that represents a topic.
const primaryMarker = "viewpoint.bcfv"

// genericGUID is the sentinel GUID some exporters assign a generated
// default viewpoint.
const genericGUID = "viewpoint-generic"

// PrimaryViewpoint picks the single viewpoint that represents a topic's
// camera data. Priority, evaluated in order, first match wins:
//
//  1. a viewpoint whose file name contains "viewpoint.bcfv"
//     (case-insensitive) or whose GUID is the "viewpoint-generic"
//     sentinel,
//  2. the first viewpoint, in original order, with any camera hint — a
//     camera type, or any component of the modern or legacy camera
//     position vectors,
//  3. the first viewpoint in the list.
//
// It returns nil only when the topic has no viewpoints. Every
// topic-level camera lookup resolves through this function, so both
// serializers always agree on a topic's camera values.
func PrimaryViewpoint(t *Topic) *Viewpoint {
	if t == nil || len(t.Viewpoints) == 0 {
		return nil
	}
	for i := range t.Viewpoints {
		vp := &t.Viewpoints[i]
		if strings.Contains(strings.ToLower(vp.File), primaryMarker) || vp.GUID == genericGUID {
			return vp
		}
	}
	for i := range t.Viewpoints {
		vp := &t.Viewpoints[i]
		if hasCameraHint(vp) {
			return vp
		}
	}
	return &t.Viewpoints[0]
}

// hasCameraHint is the narrow test used for primary-viewpoint
// selection: a camera type, or any component of the view point or
// legacy position/target vectors.
func hasCameraHint(vp *Viewpoint) bool {
	if vp.CameraType != "" {
		return true
	}
	return !vp.CameraViewPoint.IsZero() || !vp.CameraPosition.IsZero() || !vp.CameraTarget.IsZero()
}

// hasCoordinateData is the broad test used for viewpoint-row emission:
// any coordinate-bearing property at all, not just the priority
// markers.
func hasCoordinateData(vp *Viewpoint) bool {
	if !vp.CameraViewPoint.IsZero() || !vp.CameraDirection.IsZero() || !vp.CameraUpVector.IsZero() {
		return true
	}
	if !vp.CameraPosition.IsZero() || !vp.CameraTarget.IsZero() {
		return true
	}
	return vp.FieldOfView != nil || vp.ViewToWorldScale != nil
}

// coordinateViewpoints filters a topic's viewpoints to those carrying
// coordinate data, preserving original order.
func coordinateViewpoints(t *Topic) []*Viewpoint {
	var out []*Viewpoint
	for i := range t.Viewpoints {
		if hasCoordinateData(&t.Viewpoints[i]) {
			out = append(out, &t.Viewpoints[i])
		}
	}
	return out
}
