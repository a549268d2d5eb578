package http

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/konstrukt-app/konstrukt-be/internal/service"
	"github.com/konstrukt-app/konstrukt-be/models"
)

func TestUploadMedia_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.auth.EXPECT().
		RequireAdmin(gomock.Any(), gomock.Any()).
		Return(models.Identity{UserID: "u1"}, nil)
	mocks.media.EXPECT().
		UploadMedia(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, upload models.MediaUpload) (string, error) {
			assert.Equal(t, "cover.png", upload.Filename)
			assert.Equal(t, "photo", upload.Type)
			return "https://cdn.example.com/media/abc.png", nil
		})

	payload := `{"initData":"x","file":"aGVsbG8=","filename":"cover.png","type":"photo"}`
	resp, err := http.Post(srv.URL+"/api/admin/media", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"url":"https://cdn.example.com/media/abc.png"}`, string(body))
}

func TestUploadMedia_NotAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.auth.EXPECT().
		RequireAdmin(gomock.Any(), gomock.Any()).
		Return(models.Identity{}, service.ErrForbidden)

	payload := `{"initData":"x","file":"aGVsbG8=","filename":"cover.png","type":"photo"}`
	resp, err := http.Post(srv.URL+"/api/admin/media", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUploadMedia_StorageNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.auth.EXPECT().
		RequireAdmin(gomock.Any(), gomock.Any()).
		Return(models.Identity{UserID: "u1"}, nil)
	mocks.media.EXPECT().
		UploadMedia(gomock.Any(), gomock.Any()).
		Return("", service.ErrMediaNotConfigured)

	payload := `{"initData":"x","file":"aGVsbG8=","filename":"cover.png","type":"photo"}`
	resp, err := http.Post(srv.URL+"/api/admin/media", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Хранилище файлов не настроено"}`, string(body))
}

func TestUploadMedia_InvalidFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mocks := newTestServer(t, ctrl)

	mocks.auth.EXPECT().
		RequireAdmin(gomock.Any(), gomock.Any()).
		Return(models.Identity{UserID: "u1"}, nil)
	mocks.media.EXPECT().
		UploadMedia(gomock.Any(), gomock.Any()).
		Return("", service.ErrInvalidDataProvided)

	payload := `{"initData":"x","file":"","filename":"cover.png","type":"photo"}`
	resp, err := http.Post(srv.URL+"/api/admin/media", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
