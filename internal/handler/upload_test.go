package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/handler"
)

func TestGetUploadURL(t *testing.T) {
	uploads := &mockUploadSigner{
		uploadURL: func(_ context.Context, filename, contentType string) (string, error) {
			assert.Equal(t, "kitten.jpg", filename)
			assert.Equal(t, "image/jpeg", contentType)
			return "https://traveler-images.s3.amazonaws.com/kitten.jpg?X-Amz-Expires=60", nil
		},
	}
	h := newHTTPHandler(handler.Deps{Uploads: uploads})

	rec := do(t, h, http.MethodGet, "/awsUrl?filename=kitten.jpg&filetype=image%2Fjpeg", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://traveler-images.s3.amazonaws.com/kitten.jpg?X-Amz-Expires=60",
		decode[map[string]string](t, rec)["signedUrl"])
}

func TestGetUploadURL_MissingParameter(t *testing.T) {
	h := newHTTPHandler(handler.Deps{})

	rec := do(t, h, http.MethodGet, "/awsUrl?filename=kitten.jpg", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUploadURL_SignerFailure(t *testing.T) {
	uploads := &mockUploadSigner{
		uploadURL: func(context.Context, string, string) (string, error) {
			return "", fmt.Errorf("objectstore: %w: no credentials", domain.ErrUpstream)
		},
	}
	h := newHTTPHandler(handler.Deps{Uploads: uploads})

	rec := do(t, h, http.MethodGet, "/awsUrl?filename=kitten.jpg&filetype=image%2Fjpeg", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
