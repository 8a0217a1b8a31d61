package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart header by parsing an encoded form.
func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("evidence", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/report", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(32<<20))

	_, fh, err := r.FormFile("evidence")
	require.NoError(t, err)
	return fh
}

func TestSaveEvidence(t *testing.T) {
	dir := t.TempDir()

	url, err := SaveEvidence(dir, "r-1", fileHeader(t, "Shelf.JPG", []byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/reports/r-1/evidence.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "r-1", "evidence.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestSaveEvidence_RejectsFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveEvidence(dir, "r-2", fileHeader(t, "notes.pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, statErr := os.Stat(filepath.Join(dir, "reports", "r-2"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveEvidence_RejectsLargeFile(t *testing.T) {
	fh := fileHeader(t, "big.png", []byte("png"))
	fh.Size = MaxFileSize + 1

	_, err := SaveEvidence(t.TempDir(), "r-3", fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveEvidence_CapsUnderstatedSize(t *testing.T) {
	dir := t.TempDir()
	fh := fileHeader(t, "big.png", bytes.Repeat([]byte{1}, MaxFileSize+10))
	fh.Size = 10

	_, err := SaveEvidence(dir, "r-4", fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, statErr := os.Stat(filepath.Join(dir, "reports", "r-4"))
	assert.True(t, os.IsNotExist(statErr))
}
