package bcftab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/bcftab"
)

func TestParseSelection(t *testing.T) {
	t.Parallel()
	doc := []byte(`fields:
  - title
  - status
  - commentText
  - cameraViewPointX
`)
	got, err := bcftab.ParseSelection(doc)
	require.NoError(t, err)
	assert.Equal(t, leakSelection(), got)
}

func TestParseSelectionUnknownField(t *testing.T) {
	t.Parallel()
	doc := []byte(`fields:
  - title
  - nonsense
  - status
`)
	_, err := bcftab.ParseSelection(doc)
	assert.ErrorIs(t, err, bcftab.ErrUnknownField)
	assert.Contains(t, err.Error(), `"nonsense"`)
}

func TestParseSelectionEmpty(t *testing.T) {
	t.Parallel()
	got, err := bcftab.ParseSelection([]byte("fields: []\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseSelectionBadYAML(t *testing.T) {
	t.Parallel()
	_, err := bcftab.ParseSelection([]byte("fields: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, bcftab.ErrUnknownField)
}
