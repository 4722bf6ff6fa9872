package services_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/pkg/filestorage"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestMediaService(t *testing.T) (services.MediaService, string) {
	t.Helper()

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	svc := services.NewMediaService(newTestRepos(t).Media, storage, zerolog.Nop())
	svc.Load(context.Background())

	return svc, dir
}

// uploadHeader builds a multipart file header the way gin hands one to the
// controller.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestMediaUpload(t *testing.T) {
	svc, dir := newTestMediaService(t)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 100)...)
	file, err := svc.Upload(context.Background(), uploadHeader(t, "Campus View (Final).PNG", content))
	require.NoError(t, err)

	require.Equal(t, "campus-view-final.png", file.Filename)
	require.Equal(t, "Campus View (Final).PNG", file.OriginalName)
	require.Equal(t, models.MediaTypeImage, file.Type)
	require.EqualValues(t, len(content), file.Size)
	require.Equal(t, "http://localhost:8080/uploads/campus-view-final.png", file.URL)

	// The physical file landed on disk.
	_, err = os.Stat(filepath.Join(dir, "campus-view-final.png"))
	require.NoError(t, err)

	found, err := svc.GetByID(file.ID)
	require.NoError(t, err)
	require.Equal(t, file.Filename, found.Filename)
}

func TestMediaUploadClassifiesDocuments(t *testing.T) {
	svc, _ := newTestMediaService(t)

	file, err := svc.Upload(context.Background(), uploadHeader(t, "notes.txt", []byte("plain text notes")))
	require.NoError(t, err)
	require.Equal(t, models.MediaTypeDocument, file.Type)
}

func TestMediaDeleteRemovesDiskFile(t *testing.T) {
	svc, dir := newTestMediaService(t)
	ctx := context.Background()

	file, err := svc.Upload(ctx, uploadHeader(t, "gone.txt", []byte("temporary")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, file.ID))

	_, err = svc.GetByID(file.ID)
	require.ErrorIs(t, err, apperrors.ErrMediaFileNotFound)

	_, err = os.Stat(filepath.Join(dir, file.Filename))
	require.True(t, os.IsNotExist(err))

	require.ErrorIs(t, svc.Delete(ctx, file.ID), apperrors.ErrMediaFileNotFound)
}

func TestMediaSearch(t *testing.T) {
	svc, _ := newTestMediaService(t)
	ctx := context.Background()

	png := append(append([]byte{}, pngHeader...), 0)
	_, err := svc.Upload(ctx, uploadHeader(t, "Campus Aerial.png", png))
	require.NoError(t, err)

	_, err = svc.Upload(ctx, uploadHeader(t, "handbook.txt", []byte("student handbook")))
	require.NoError(t, err)

	// Query matches both the storage name and the original name.
	page := svc.Search("campus", "", 1, 10)
	require.Len(t, page.Files, 1)
	require.Equal(t, "campus-aerial.png", page.Files[0].Filename)
	require.NotEmpty(t, page.Files[0].SizeFormatted)

	page = svc.Search("", string(models.MediaTypeDocument), 1, 10)
	require.Len(t, page.Files, 1)
	require.Equal(t, "handbook.txt", page.Files[0].Filename)

	page = svc.Search("", "", 1, 10)
	require.Len(t, page.Files, 2)
	require.Equal(t, "handbook.txt", page.Files[0].Filename, "newest first")
}
