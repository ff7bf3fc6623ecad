package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/auth"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/requestctx"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/api"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/middleware"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/shared"
)

type Handler struct {
	Store             *core.Store
	Secret            string
	TokenTTL          time.Duration
	Secure            bool
	AllowRegistration bool
}

func NewHandler(store *core.Store, secret string, tokenTTL time.Duration, secure, allowRegistration bool) *Handler {
	return &Handler{
		Store:             store,
		Secret:            secret,
		TokenTTL:          tokenTTL,
		Secure:            secure,
		AllowRegistration: allowRegistration,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Industry string `json:"industry"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an organization and starts an admin session.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.AllowRegistration {
		api.Fail(w, http.StatusForbidden, "registration_disabled", "registration is disabled", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	v := shared.NewValidator()
	v.Required("name", payload.Name, "organization name is required")
	v.Required("email", payload.Email, "email is required")
	if len(payload.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	taken, err := h.Store.OrganizationEmailTaken(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to register organization", requestctx.GetRequestID(r.Context()))
		return
	}
	if taken {
		api.Fail(w, http.StatusConflict, "email_taken", "an organization with this email already exists", requestctx.GetRequestID(r.Context()))
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hash_error", "failed to register organization", requestctx.GetRequestID(r.Context()))
		return
	}

	org, err := h.Store.CreateOrganization(r.Context(), strings.TrimSpace(payload.Name), payload.Email, hash, strings.TrimSpace(payload.Industry))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to register organization", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := h.issueSession(w, org.ID, org.ID, auth.RoleAdmin)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]any{
		"token":        token,
		"organization": org,
		"role":         auth.RoleAdmin,
	}, requestctx.GetRequestID(r.Context()))
}

// HandleLogin authenticates an organization admin.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	org, hash, err := h.Store.OrganizationByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "login failed", requestctx.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := h.issueSession(w, org.ID, org.ID, auth.RoleAdmin)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":        token,
		"organization": org,
		"role":         auth.RoleAdmin,
	}, requestctx.GetRequestID(r.Context()))
}

// HandleEmployeeLogin authenticates an employee. Inactive employees and
// employees without a credential are rejected with the same error as a bad
// password.
func (h *Handler) HandleEmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	emp, hash, orgName, err := h.Store.EmployeeForLogin(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "login failed", requestctx.GetRequestID(r.Context()))
		return
	}
	if hash == "" || auth.CheckPassword(hash, payload.Password) != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := h.issueSession(w, emp.ID, emp.OrgID, auth.RoleEmployee)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":            token,
		"employee":         emp,
		"organizationName": orgName,
		"role":             auth.RoleEmployee,
	}, requestctx.GetRequestID(r.Context()))
}

// HandleLogout clears the session cookie. Tokens are stateless, so the
// cookie is the only server-side session artifact.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}

// HandleMe returns the caller's identity, resolved fresh from storage.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}

	switch principal.Role {
	case auth.RoleAdmin:
		org, err := h.Store.GetOrganization(r.Context(), principal.OrganizationID)
		if err != nil {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "session no longer valid", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Success(w, map[string]any{"role": auth.RoleAdmin, "organization": org}, requestctx.GetRequestID(r.Context()))
	case auth.RoleEmployee:
		emp, err := h.Store.GetEmployee(r.Context(), principal.OrganizationID, principal.PrincipalID)
		if err != nil {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "session no longer valid", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Success(w, map[string]any{"role": auth.RoleEmployee, "employee": emp}, requestctx.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "unknown role", requestctx.GetRequestID(r.Context()))
	}
}

func (h *Handler) issueSession(w http.ResponseWriter, principalID, orgID, role string) (string, error) {
	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		PrincipalID:    principalID,
		OrganizationID: orgID,
		Role:           role,
	}, h.TokenTTL)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}
