package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-insurance-leads/internal/ports/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, h http.HandlerFunc, cfg Config) *Store {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	if cfg.Token == "" {
		cfg.Token = "tkn"
	}
	if cfg.Repo == "" {
		cfg.Repo = "acme/leads"
	}
	s, err := NewStore(cfg)
	require.NoError(t, err)
	return s
}

func TestNewStore_RequiresTokenAndRepo(t *testing.T) {
	for _, cfg := range []Config{
		{Repo: "acme/leads"},
		{Token: "tkn"},
		{Token: "tkn", Repo: "acme"},
		{Token: "tkn", Repo: "/leads"},
	} {
		_, err := NewStore(cfg)
		assert.ErrorIs(t, err, ErrNotConfigured, "%+v", cfg)
	}
}

func TestStore_Create(t *testing.T) {
	var got createIssueRequest
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/leads/issues", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultAPIVersion, r.Header.Get("X-GitHub-Api-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 42, "title": "x"}`))
	}, Config{})

	n, err := s.Create(context.Background(), tickets.Draft{
		Title:  "[온라인] Kim(Choco) / demo",
		Body:   "```json\n{}\n```",
		Labels: []string{"type:online", "site:demo"},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, "[온라인] Kim(Choco) / demo", got.Title)
	assert.Equal(t, []string{"type:online", "site:demo"}, got.Labels)
}

func TestStore_Create_Non2xxBecomesStatusError(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("Validation Failed\n"))
	}, Config{})

	_, err := s.Create(context.Background(), tickets.Draft{Title: "t"})

	var se *tickets.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 422, se.StatusCode)
	assert.Equal(t, "Validation Failed", se.Detail)
	assert.ErrorIs(t, err, tickets.ErrUpstream)
}

func TestStore_Create_Timeout(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, Config{CreateTimeout: 50 * time.Millisecond})

	_, err := s.Create(context.Background(), tickets.Draft{Title: "t"})
	assert.ErrorIs(t, err, tickets.ErrTimeout)
}

func TestStore_List(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/acme/leads/issues", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "all", q.Get("state"))
		assert.Equal(t, "100", q.Get("per_page"))
		assert.Equal(t, "created", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))

		_, _ = w.Write([]byte(`[
			{"number": 2, "title": "b", "body": "hello", "labels": [{"name": "type:online"}, {"name": "site:demo"}], "created_at": "2024-01-02T00:00:00Z"},
			{"number": 1, "title": "a", "body": null, "labels": [], "created_at": "2024-01-01T00:00:00Z"}
		]`))
	}, Config{})

	items, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 2, items[0].Number)
	assert.Equal(t, "hello", items[0].Body)
	assert.Equal(t, []string{"type:online", "site:demo"}, items[0].Labels)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), items[0].CreatedAt.UTC())

	assert.Equal(t, 1, items[1].Number)
	assert.Empty(t, items[1].Body)
	assert.Empty(t, items[1].Labels)
}

func TestStore_List_Unauthorized(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}, Config{})

	_, err := s.List(context.Background())

	var se *tickets.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, se.Detail, "Bad credentials")
}

func TestStore_List_Unreachable(t *testing.T) {
	s, err := NewStore(Config{BaseURL: "http://127.0.0.1:1", Token: "tkn", Repo: "acme/leads"})
	require.NoError(t, err)

	_, err = s.List(context.Background())
	assert.ErrorIs(t, err, tickets.ErrUpstream)
	assert.NotErrorIs(t, err, tickets.ErrTimeout)
}
