package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-insurance-leads/internal/adapters/auth/statictoken"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		c, ok := GetClaims(r.Context())
		assert.True(t, ok)
		assert.True(t, c.Admin)
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireAdmin(statictoken.NewVerifier("s3cret"))(next)

	cases := []struct {
		name   string
		target string
		auth   string
		want   int
	}{
		{"bearer", "/export", "Bearer s3cret", http.StatusNoContent},
		{"bearer lowercase scheme", "/export", "bearer s3cret", http.StatusNoContent},
		{"query", "/export?token=s3cret", "", http.StatusNoContent},
		{"header wins over query", "/export?token=s3cret", "Bearer wrong", http.StatusUnauthorized},
		{"wrong", "/export?token=nope", "", http.StatusUnauthorized},
		{"missing", "/export", "", http.StatusUnauthorized},
		{"no scheme", "/export", "s3cret", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, tc.want == http.StatusNoContent, reached)
			if tc.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"ok":false,"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin_NilVerifier(t *testing.T) {
	h := RequireAdmin(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export?token=x", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
