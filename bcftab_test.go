package bcftab_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/bcftab"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range bcftab.Formats() {
		parsed, err := bcftab.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	t.Parallel()
	_, err := bcftab.ParseFormat("pdf")
	assert.ErrorIs(t, err, bcftab.ErrUnsupportedFormat)
}

func TestFormatsReturnsCopy(t *testing.T) {
	t.Parallel()
	a := bcftab.Formats()
	a[0] = "mangled"
	b := bcftab.Formats()
	assert.Equal(t, bcftab.Delimited, b[0])
}

func TestWriteDispatch(t *testing.T) {
	t.Parallel()
	files := []bcftab.ProjectFile{leakFile()}

	var csvBuf bytes.Buffer
	require.NoError(t, bcftab.Write(&csvBuf, bcftab.Delimited, files, leakSelection()))
	assert.Contains(t, csvBuf.String(), "Leak in roof")

	var xlsxBuf bytes.Buffer
	require.NoError(t, bcftab.Write(&xlsxBuf, bcftab.Workbook, files, leakSelection()))
	// XLSX is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, xlsxBuf.Bytes()[:2])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := bcftab.Write(&buf, "pdf", []bcftab.ProjectFile{leakFile()}, leakSelection())
	assert.ErrorIs(t, err, bcftab.ErrUnsupportedFormat)
}

func TestMarshalMatchesWrite(t *testing.T) {
	t.Parallel()
	files := []bcftab.ProjectFile{leakFile()}
	var buf bytes.Buffer
	require.NoError(t, bcftab.Write(&buf, bcftab.Delimited, files, leakSelection()))
	out, err := bcftab.Marshal(bcftab.Delimited, files, leakSelection())
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), out)
}

func TestValidateNoData(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, bcftab.Validate(nil), bcftab.ErrNoData)
	assert.ErrorIs(t, bcftab.Validate([]bcftab.ProjectFile{}), bcftab.ErrNoData)
}

func TestValidateNoTopics(t *testing.T) {
	t.Parallel()
	files := []bcftab.ProjectFile{{Filename: "empty.bcf"}}
	assert.ErrorIs(t, bcftab.Validate(files), bcftab.ErrNoTopics)
}

func TestValidateOK(t *testing.T) {
	t.Parallel()
	files := []bcftab.ProjectFile{{Filename: "empty.bcf"}, leakFile()}
	assert.NoError(t, bcftab.Validate(files))
}

// Both serializers must raise the structural errors before producing
// any output.
func TestSerializersRaiseStructuralErrors(t *testing.T) {
	t.Parallel()
	for _, f := range bcftab.Formats() {
		out, err := bcftab.Marshal(f, nil, leakSelection())
		assert.ErrorIs(t, err, bcftab.ErrNoData, "format %s", f)
		assert.Nil(t, out)

		out, err = bcftab.Marshal(f, []bcftab.ProjectFile{{Filename: "x.bcf"}}, leakSelection())
		assert.ErrorIs(t, err, bcftab.ErrNoTopics, "format %s", f)
		assert.Nil(t, out)
	}
}
