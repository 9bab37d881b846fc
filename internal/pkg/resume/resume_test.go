package resume

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campushire/internal/pkg/apperrors"
)

var pdfSample = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF")

func TestEncodePDF(t *testing.T) {
	dataURL, err := Encode(bytes.NewReader(pdfSample))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(dataURL, "data:application/pdf;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:application/pdf;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pdfSample, decoded)
}

func TestEncodeRejectsNonPDF(t *testing.T) {
	_, err := Encode(strings.NewReader("just some text"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidResume)

	_, err = Encode(strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrInvalidResume)
}

func TestEncodeRejectsOversizedFile(t *testing.T) {
	big := append([]byte("%PDF-"), bytes.Repeat([]byte("a"), MaxSize)...)
	_, err := Encode(bytes.NewReader(big))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestReadDeliversSingleResult(t *testing.T) {
	out := Read(bytes.NewReader(pdfSample))

	result := <-out
	require.NoError(t, result.Err)
	assert.True(t, strings.HasPrefix(result.DataURL, "data:application/pdf;base64,"))

	// The channel closes after the single result.
	_, open := <-out
	assert.False(t, open)
}

func TestReadPropagatesError(t *testing.T) {
	result := <-Read(strings.NewReader("not a pdf"))
	assert.ErrorIs(t, result.Err, apperrors.ErrInvalidResume)
	assert.Empty(t, result.DataURL)
}
