package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/gallery/internal/storage"
	"github.com/artfolio/gallery/internal/upload/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T) *UploadHandler {
	t.Helper()

	store, err := storage.NewStore(t.Context(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	uc := usecase.NewUploadUseCase(store, 1<<20, time.Hour)
	return NewUploadHandler(uc, testLogger())
}

// multipartBody builds a multipart form with a single file part.
func multipartBody(t *testing.T, filename, contentType, category string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if category != "" {
		require.NoError(t, writer.WriteField("category", category))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func createUploadContext(t *testing.T, body *bytes.Buffer, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	c.Request = req
	return c, w
}

func createQueryContext(t *testing.T, method, path string, query url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(method, path+"?"+query.Encode(), nil)
	return c, w
}

func TestUploadHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := newTestHandler(t)
		body, contentType := multipartBody(t, "bridal.jpg", "image/jpeg", "lehenga", []byte("fake image bytes"))

		c, w := createUploadContext(t, body, contentType)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.ObjectKey, "designs/lehenga/")
		assert.NotEmpty(t, resp.ImageURL)
	})

	t.Run("Failure_MissingFile", func(t *testing.T) {
		handler := newTestHandler(t)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("category", "lehenga"))
		require.NoError(t, writer.Close())

		c, w := createUploadContext(t, body, writer.FormDataContentType())
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_UnsupportedFormat", func(t *testing.T) {
		handler := newTestHandler(t)
		body, contentType := multipartBody(t, "bridal.gif", "image/gif", "lehenga", []byte("fake image bytes"))

		c, w := createUploadContext(t, body, contentType)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUploadHandler_GetURLHandler(t *testing.T) {
	t.Run("Failure_MissingKey", func(t *testing.T) {
		handler := newTestHandler(t)

		c, w := createQueryContext(t, http.MethodGet, "/v1/admin/uploads/url", url.Values{})
		handler.GetURLHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		handler := newTestHandler(t)

		c, w := createQueryContext(t, http.MethodGet, "/v1/admin/uploads/url",
			url.Values{"key": {"designs/saree/missing.jpg"}})
		handler.GetURLHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUploadHandler_ListAndDelete(t *testing.T) {
	handler := newTestHandler(t)

	// Upload an object first
	body, contentType := multipartBody(t, "silk.png", "image/png", "saree", []byte("fake"))
	c, w := createUploadContext(t, body, contentType)
	handler.CreateHandler(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var uploaded UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))

	// Listing shows it
	c, w = createQueryContext(t, http.MethodGet, "/v1/admin/uploads",
		url.Values{"prefix": {"designs/saree/"}})
	handler.ListHandler(c)
	require.Equal(t, http.StatusOK, w.Code)

	var listing ListObjectsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Objects, 1)
	assert.Equal(t, uploaded.ObjectKey, listing.Objects[0].Key)

	// Delete removes it
	c, w = createQueryContext(t, http.MethodDelete, "/v1/admin/uploads",
		url.Values{"key": {uploaded.ObjectKey}})
	handler.DeleteHandler(c)
	require.Equal(t, http.StatusNoContent, w.Code)

	c, w = createQueryContext(t, http.MethodGet, "/v1/admin/uploads",
		url.Values{"prefix": {"designs/saree/"}})
	handler.ListHandler(c)
	require.Equal(t, http.StatusOK, w.Code)

	var after ListObjectsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Empty(t, after.Objects)
}
