package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/auth"
)

// TokenCookie is the session cookie issued at login.
const TokenCookie = "token"

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// Auth resolves the caller's identity from the session cookie, falling back
// to a bearer header. A missing or invalid token leaves the request
// unauthenticated; route guards decide whether that is acceptable.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyPrincipal, auth.Principal{
				PrincipalID:    claims.PrincipalID,
				OrganizationID: claims.OrganizationID,
				Role:           claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(ctxKeyPrincipal).(auth.Principal)
	return principal, ok
}

// WithPrincipal injects an identity directly. Test helper.
func WithPrincipal(ctx context.Context, principal auth.Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, principal)
}
