package middleware

import (
	"net/http"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/auth"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/api"
)

// RequireAuth admits any authenticated principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin admits organization admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(auth.RoleAdmin, next)
}

// RequireEmployee admits employee principals only.
func RequireEmployee(next http.Handler) http.Handler {
	return requireRole(auth.RoleEmployee, next)
}

func requireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := GetPrincipal(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if principal.Role != role {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
