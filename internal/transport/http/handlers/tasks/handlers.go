package taskshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

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
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.HandleList)
		r.Get("/{taskID}", h.HandleGet)
		r.Patch("/{taskID}/status", h.HandleUpdateStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.HandleCreate)
			r.Put("/{taskID}", h.HandleUpdate)
			r.Delete("/{taskID}", h.HandleDelete)
		})
	})
}

type taskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EmployeeID     string   `json:"employeeId"`
	RequiredSkills []string `json:"requiredSkills"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"dueDate"`
}

type statusRequest struct {
	Status          string `json:"status"`
	CompletionProof string `json:"completionProof"`
}

// HandleList returns tasks visible to the caller. Employees only ever see
// their own; admins may filter by status and assignee.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	filter := core.TaskFilter{
		ScopeEmployeeID: principal.TaskScope(),
		Status:          strings.TrimSpace(r.URL.Query().Get("status")),
		EmployeeID:      strings.TrimSpace(r.URL.Query().Get("employeeId")),
	}
	if filter.Status != "" && !core.ValidTaskStatus(filter.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown task status", requestctx.GetRequestID(r.Context()))
		return
	}

	tasks, err := h.Store.ListTasks(r.Context(), principal.OrganizationID, filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to list tasks", requestctx.GetRequestID(r.Context()))
		return
	}
	if tasks == nil {
		tasks = []core.Task{}
	}
	api.Success(w, tasks, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	task, err := h.Store.GetTask(r.Context(), principal.OrganizationID, principal.TaskScope(), chi.URLParam(r, "taskID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load task", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, task, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	var payload taskRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	task, ok := h.taskFromRequest(w, r, payload)
	if !ok {
		return
	}

	created, err := h.Store.CreateTask(r.Context(), principal.OrganizationID, task)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to create task", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	var payload taskRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	task, ok := h.taskFromRequest(w, r, payload)
	if !ok {
		return
	}

	updated, err := h.Store.UpdateTask(r.Context(), principal.OrganizationID, chi.URLParam(r, "taskID"), task)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to update task", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

// HandleUpdateStatus moves a task between statuses. Admins may move any task
// in the organization; employees only their own, which the scoped update
// enforces without a separate lookup.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if !core.ValidTaskStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown task status", requestctx.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Store.UpdateTaskStatus(
		r.Context(),
		principal.OrganizationID,
		principal.TaskScope(),
		chi.URLParam(r, "taskID"),
		payload.Status,
		strings.TrimSpace(payload.CompletionProof),
		time.Now(),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to update task status", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	err := h.Store.DeleteTask(r.Context(), principal.OrganizationID, chi.URLParam(r, "taskID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to delete task", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) taskFromRequest(w http.ResponseWriter, r *http.Request, payload taskRequest) (core.Task, bool) {
	principal, _ := middleware.GetPrincipal(r.Context())
	requestID := requestctx.GetRequestID(r.Context())

	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	priority := strings.TrimSpace(payload.Priority)
	if priority == "" {
		priority = core.PriorityMedium
	}
	if !core.ValidPriority(priority) {
		v.Add("priority", "priority must be Low, Medium, or High")
	}

	var dueDate *time.Time
	if strings.TrimSpace(payload.DueDate) != "" {
		parsed, ok := v.Date("dueDate", payload.DueDate)
		if ok {
			dueDate = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return core.Task{}, false
	}

	employeeID := strings.TrimSpace(payload.EmployeeID)
	if employeeID != "" {
		exists, err := h.Store.EmployeeExists(r.Context(), principal.OrganizationID, employeeID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "db_error", "failed to verify assignee", requestID)
			return core.Task{}, false
		}
		if !exists {
			api.Fail(w, http.StatusBadRequest, "unknown_employee", "assignee does not belong to this organization", requestID)
			return core.Task{}, false
		}
	}

	return core.Task{
		Title:          strings.TrimSpace(payload.Title),
		Description:    strings.TrimSpace(payload.Description),
		EmployeeID:     employeeID,
		RequiredSkills: payload.RequiredSkills,
		Priority:       priority,
		DueDate:        dueDate,
	}, true
}
