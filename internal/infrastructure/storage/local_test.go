package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
)

func testStorage(t *testing.T) *LocalStorage {
	t.Helper()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			UploadDir: t.TempDir(),
			URLPrefix: "/uploads",
		},
		Upload: config.UploadConfig{
			MaxSize:           1 << 20,
			AllowedExtensions: []string{"jpg", "jpeg", "png", "gif", "webp"},
		},
	}
	s, err := NewLocal(cfg)
	require.NoError(t, err)
	return s
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("imagen", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["imagen"][0]
}

func TestSaveStoresFileWithUniqueName(t *testing.T) {
	s := testStorage(t)

	url1, err := s.Save(fileHeader(t, "martillo.jpg", []byte("img-1")), 7)
	require.NoError(t, err)
	url2, err := s.Save(fileHeader(t, "martillo.jpg", []byte("img-2")), 7)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url1, "/uploads/producto_7_"))
	assert.True(t, strings.HasSuffix(url1, ".jpg"))
	assert.NotEqual(t, url1, url2)

	data, err := os.ReadFile(filepath.Join(s.Dir(), filepath.Base(url1)))
	require.NoError(t, err)
	assert.Equal(t, []byte("img-1"), data)
}

func TestSaveNormalizesExtensionCase(t *testing.T) {
	s := testStorage(t)

	url, err := s.Save(fileHeader(t, "FOTO.PNG", []byte("x")), 1)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	s := testStorage(t)

	_, err := s.Save(fileHeader(t, "script.exe", []byte("x")), 1)
	assert.ErrorIs(t, err, ErrInvalidExtension)

	_, err = s.Save(fileHeader(t, "sinextension", []byte("x")), 1)
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

func TestSaveRejectsEmptyFile(t *testing.T) {
	s := testStorage(t)

	_, err := s.Save(fileHeader(t, "vacio.jpg", nil), 1)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = s.Save(nil, 1)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := testStorage(t)

	url, err := s.Save(fileHeader(t, "clavo.webp", []byte("x")), 3)
	require.NoError(t, err)

	require.NoError(t, s.Delete(url))
	_, statErr := os.Stat(filepath.Join(s.Dir(), filepath.Base(url)))
	assert.True(t, os.IsNotExist(statErr))

	// second delete is a no-op
	assert.NoError(t, s.Delete(url))
}
