package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v1", r.Header.Get("X-Api-Version"))
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"number": 7}`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)
	c.Header.Set("X-Api-Version", "v1")

	var out struct {
		Number int `json:"number"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "ok", nil, &out))
	assert.Equal(t, 7, out.Number)

	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/empty", map[string]any{"a": 1}, &out))

	err = c.DoJSON(context.Background(), http.MethodGet, "/missing", nil, nil)
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "nope", he.Body)
}

func TestDoJSON_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := New(0).DoJSON(ctx, http.MethodGet, srv.URL, nil, nil)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	err := New(time.Second).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	assert.ErrorContains(t, err, "requires BaseURL")

	_, err = NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)
}
