package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"simplesocial/internal/mediahost"
	"simplesocial/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	uploadFn func(ctx context.Context, file io.Reader, fileName string) (mediahost.UploadResult, error)
}

func (s *stubUploader) Upload(ctx context.Context, file io.Reader, fileName string) (mediahost.UploadResult, error) {
	return s.uploadFn(ctx, file, fileName)
}

func multipartUpload(t *testing.T, fileName, contentType, caption string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if caption != "" {
		require.NoError(t, writer.WriteField("caption", caption))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadMedia_Success(t *testing.T) {
	// Fake media host that accepts the multipart upload and returns a
	// canonical URL for the stored file.
	mediaHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url": "https://ik.imagekit.io/demo/abc/cat_x1.jpg", "name": "cat_x1.jpg", "fileId": "f-123"}`))
	}))
	defer mediaHost.Close()

	uploader, err := mediahost.NewClient(mediaHost.URL)
	require.NoError(t, err)

	app, srv, db := setupTestServer(t, uploader)
	user := createTestUser(t, db, "uploader@example.com")

	body, contentType := multipartUpload(t, "cat.jpg", "image/jpeg", "a cat", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerToken(t, srv, user.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "a cat", result.Caption)
	assert.Equal(t, "https://ik.imagekit.io/demo/abc/cat_x1.jpg", result.URL)
	assert.Equal(t, models.FileTypeImage, result.FileType)
	assert.Equal(t, "cat_x1.jpg", result.FileName)
	assert.NotEmpty(t, result.CreatedAt)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Staged files must not outlive the request.
	entries, err := os.ReadDir(srv.config.StagingDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadMedia_VideoClassification(t *testing.T) {
	uploader := &stubUploader{
		uploadFn: func(_ context.Context, _ io.Reader, fileName string) (mediahost.UploadResult, error) {
			return mediahost.UploadResult{
				URL:  "https://ik.imagekit.io/demo/abc/" + fileName,
				Name: fileName,
			}, nil
		},
	}

	app, srv, db := setupTestServer(t, uploader)
	user := createTestUser(t, db, "video@example.com")

	body, contentType := multipartUpload(t, "clip.mp4", "video/mp4", "", []byte("mp4-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerToken(t, srv, user.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, models.FileTypeVideo, result.FileType)
}

func TestUploadMedia_ProviderFailure(t *testing.T) {
	uploader := &stubUploader{
		uploadFn: func(_ context.Context, _ io.Reader, _ string) (mediahost.UploadResult, error) {
			return mediahost.UploadResult{}, errors.New("media host is down")
		},
	}

	app, srv, db := setupTestServer(t, uploader)
	user := createTestUser(t, db, "unlucky@example.com")

	body, contentType := multipartUpload(t, "cat.jpg", "image/jpeg", "a cat", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerToken(t, srv, user.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.NotEmpty(t, errResp.Detail)
	assert.Equal(t, "UPLOAD_FAILED", errResp.Code)

	// A failed upload must leave no post behind.
	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(srv.config.StagingDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadMedia_NoFile(t *testing.T) {
	app, srv, db := setupTestServer(t, &stubUploader{})
	user := createTestUser(t, db, "nofile@example.com")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("caption", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, srv, user.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadMedia_RequiresAuth(t *testing.T) {
	app, _, _ := setupTestServer(t, &stubUploader{})

	body, contentType := multipartUpload(t, "cat.jpg", "image/jpeg", "", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
