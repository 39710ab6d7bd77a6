package sync

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONBlobClient_CreateParsesLocationHeader(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Location", "https://example.com/api/jsonBlob/abc-123")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewJSONBlobClient(srv.URL)
	id, err := c.Create(context.Background(), []byte(`{"projects":[]}`))

	assert.NoError(t, err)
	assert.Equal(t, "abc-123", id)
	assert.JSONEq(t, `{"projects":[]}`, string(gotBody))
}

func TestJSONBlobClient_CreateWithoutLocationFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := NewJSONBlobClient(srv.URL).Create(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestJSONBlobClient_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abc-123", r.URL.Path)
		w.Write([]byte(`{"companyProfile":{}}`))
	}))
	defer srv.Close()

	doc, err := NewJSONBlobClient(srv.URL).Read(context.Background(), "abc-123")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"companyProfile":{}}`, string(doc))
}

func TestJSONBlobClient_ReadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewJSONBlobClient(srv.URL).Read(context.Background(), "hilang")
	assert.Error(t, err)
}

func TestJSONBlobClient_Replace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/abc-123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewJSONBlobClient(srv.URL).Replace(context.Background(), "abc-123", []byte(`{}`))
	assert.NoError(t, err)
}
