package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/auth"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/requestctx"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/api"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/middleware"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/shared"
)

type Handler struct {
	Store *core.Store
}

func NewHandler(store *core.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{employeeID}", h.HandleGet)
		r.Put("/{employeeID}", h.HandleUpdate)
		r.Delete("/{employeeID}", h.HandleDelete)
	})
}

type employeeRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Role          string   `json:"role"`
	Department    string   `json:"department"`
	Skills        []string `json:"skills"`
	WalletAddress string   `json:"walletAddress"`
	IsActive      *bool    `json:"isActive"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	employees, err := h.Store.ListEmployees(r.Context(), principal.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to list employees", requestctx.GetRequestID(r.Context()))
		return
	}
	if employees == nil {
		employees = []core.Employee{}
	}
	api.Success(w, employees, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	emp, err := h.Store.GetEmployee(r.Context(), principal.OrganizationID, chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load employee", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("email", payload.Email, "email is required")
	v.Required("role", payload.Role, "role is required")
	if payload.Password != "" && len(payload.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	passwordHash := ""
	if payload.Password != "" {
		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "hash_error", "failed to create employee", requestctx.GetRequestID(r.Context()))
			return
		}
		passwordHash = hash
	}

	created, err := h.Store.CreateEmployee(r.Context(), principal.OrganizationID, core.Employee{
		Name:          strings.TrimSpace(payload.Name),
		Email:         payload.Email,
		Role:          strings.TrimSpace(payload.Role),
		Department:    strings.TrimSpace(payload.Department),
		Skills:        payload.Skills,
		WalletAddress: strings.TrimSpace(payload.WalletAddress),
	}, passwordHash)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to create employee", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	current, err := h.Store.GetEmployee(r.Context(), principal.OrganizationID, employeeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load employee", requestctx.GetRequestID(r.Context()))
		return
	}

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	// Partial update: absent fields keep their stored value.
	next := current
	if payload.Name != "" {
		next.Name = strings.TrimSpace(payload.Name)
	}
	if payload.Email != "" {
		next.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	}
	if payload.Role != "" {
		next.Role = strings.TrimSpace(payload.Role)
	}
	if payload.Department != "" {
		next.Department = strings.TrimSpace(payload.Department)
	}
	if payload.Skills != nil {
		next.Skills = payload.Skills
	}
	if payload.WalletAddress != "" {
		next.WalletAddress = strings.TrimSpace(payload.WalletAddress)
	}
	if payload.IsActive != nil {
		next.IsActive = *payload.IsActive
	}

	passwordHash := ""
	if payload.Password != "" {
		if len(payload.Password) < 8 {
			api.Fail(w, http.StatusBadRequest, "validation_error", "password must be at least 8 characters", requestctx.GetRequestID(r.Context()))
			return
		}
		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "hash_error", "failed to update employee", requestctx.GetRequestID(r.Context()))
			return
		}
		passwordHash = hash
	}

	updated, err := h.Store.UpdateEmployee(r.Context(), principal.OrganizationID, employeeID, next, passwordHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to update employee", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	err := h.Store.DeleteEmployee(r.Context(), principal.OrganizationID, chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to delete employee", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}
