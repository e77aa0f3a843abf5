package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/recipe-images/u1/abc.png", r.URL.Path)
		assert.Equal(t, "Bearer svc", r.Header.Get("Authorization"))
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("bytes"), body)

		w.Write([]byte(`{"Key": "recipe-images/u1/abc.png"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "svc", "recipe-images")
	require.NoError(t, c.Upload(context.Background(), "u1/abc.png", "image/png", []byte("bytes")))
}

func TestUpload_ErrorCarriesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_mime_type"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "svc", "recipe-images")
	err := c.Upload(context.Background(), "u1/abc.png", "image/png", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_mime_type")
	assert.Contains(t, err.Error(), "status 400")
}

func TestUpload_DefaultContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL, "svc", "recipe-images")
	require.NoError(t, c.Upload(context.Background(), "u1/abc", "", []byte("x")))
}

func TestPublicURL(t *testing.T) {
	c := NewClient("https://proj.supabase.co", "svc", "recipe-images")
	assert.Equal(t,
		"https://proj.supabase.co/storage/v1/object/public/recipe-images/u1/abc.png",
		c.PublicURL("u1/abc.png"))
}
