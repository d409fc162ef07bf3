package bcftab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/bcftab"
)

func TestPrimaryViewpointNamedMarkerWinsAnywhere(t *testing.T) {
	t.Parallel()
	topic := &bcftab.Topic{Viewpoints: []bcftab.Viewpoint{
		{GUID: "vp-1", CameraType: "perspective"},
		{GUID: "vp-2", File: "snapshots/Viewpoint.BCFV"},
		{GUID: "vp-3", CameraViewPoint: bcftab.Vector{X: fp(1)}},
	}}
	vp := bcftab.PrimaryViewpoint(topic)
	require.NotNil(t, vp)
	assert.Equal(t, "vp-2", vp.GUID)
}

func TestPrimaryViewpointGenericGUIDSentinel(t *testing.T) {
	t.Parallel()
	topic := &bcftab.Topic{Viewpoints: []bcftab.Viewpoint{
		{GUID: "vp-1", CameraType: "perspective"},
		{GUID: "viewpoint-generic"},
	}}
	vp := bcftab.PrimaryViewpoint(topic)
	require.NotNil(t, vp)
	assert.Equal(t, "viewpoint-generic", vp.GUID)
}

func TestPrimaryViewpointFirstWithCameraData(t *testing.T) {
	t.Parallel()
	topic := &bcftab.Topic{Viewpoints: []bcftab.Viewpoint{
		{GUID: "vp-1", File: "extra.bcfv"},
		{GUID: "vp-2", File: "other.bcfv", CameraViewPoint: bcftab.Vector{Z: fp(2)}},
		{GUID: "vp-3", File: "more.bcfv", CameraType: "orthogonal"},
	}}
	vp := bcftab.PrimaryViewpoint(topic)
	require.NotNil(t, vp)
	assert.Equal(t, "vp-2", vp.GUID)
}

func TestPrimaryViewpointLegacyVectorsCountAsCameraData(t *testing.T) {
	t.Parallel()
	topic := &bcftab.Topic{Viewpoints: []bcftab.Viewpoint{
		{GUID: "vp-1"},
		{GUID: "vp-2", CameraTarget: bcftab.LegacyVector{Y: fp(4.5)}},
	}}
	vp := bcftab.PrimaryViewpoint(topic)
	require.NotNil(t, vp)
	assert.Equal(t, "vp-2", vp.GUID)
}

func TestPrimaryViewpointFallsBackToFirst(t *testing.T) {
	t.Parallel()
	topic := &bcftab.Topic{Viewpoints: []bcftab.Viewpoint{
		{GUID: "vp-1", File: "a.png"},
		{GUID: "vp-2", File: "b.png"},
	}}
	vp := bcftab.PrimaryViewpoint(topic)
	require.NotNil(t, vp)
	assert.Equal(t, "vp-1", vp.GUID)
}

func TestPrimaryViewpointNilForNoViewpoints(t *testing.T) {
	t.Parallel()
	assert.Nil(t, bcftab.PrimaryViewpoint(&bcftab.Topic{}))
	assert.Nil(t, bcftab.PrimaryViewpoint(nil))
}

// Moving the marker viewpoint around the list must not change the
// outcome.
func TestPrimaryViewpointOrderIndependentForMarker(t *testing.T) {
	t.Parallel()
	marker := bcftab.Viewpoint{GUID: "the-one", File: "viewpoint.bcfv"}
	others := []bcftab.Viewpoint{
		{GUID: "vp-a", CameraType: "perspective"},
		{GUID: "vp-b", CameraViewPoint: bcftab.Vector{X: fp(9)}},
	}
	for pos := 0; pos <= len(others); pos++ {
		vps := make([]bcftab.Viewpoint, 0, len(others)+1)
		vps = append(vps, others[:pos]...)
		vps = append(vps, marker)
		vps = append(vps, others[pos:]...)
		vp := bcftab.PrimaryViewpoint(&bcftab.Topic{Viewpoints: vps})
		require.NotNil(t, vp)
		assert.Equal(t, "the-one", vp.GUID, "marker at position %d", pos)
	}
}
