package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pet-insurance-leads/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// RequireAdmin corta con 401 si el token no verifica.
// El token puede venir como Authorization: Bearer <token> o como ?token=.
// No se hace ninguna llamada externa antes de rechazar.
func RequireAdmin(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				token = strings.TrimSpace(r.URL.Query().Get("token"))
			}

			if verifier == nil || token == "" {
				unauthorized(w)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil || !claims.Admin {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "Unauthorized"})
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
