package insightshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/auth"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/insights"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/requestctx"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/api"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/middleware"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/shared"
)

type Handler struct {
	Store      *core.Store
	Summarizer insights.Summarizer
}

func NewHandler(store *core.Store, summarizer insights.Summarizer) *Handler {
	return &Handler{Store: store, Summarizer: summarizer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/ai", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/productivity", h.HandleProductivity)
		r.Get("/skill-gap", h.HandleSkillGap)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/productivity/report", h.HandleProductivityReport)
			r.Get("/productivity/{employeeID}", h.HandleEmployeeProductivity)
			r.Post("/assign", h.HandleAssign)
		})
	})
}

// HandleProductivity scores the full roster for admins; employees get their
// own score only.
func (h *Handler) HandleProductivity(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	if principal.Role == auth.RoleEmployee {
		tasks, err := h.Store.ListTasks(r.Context(), principal.OrganizationID, core.TaskFilter{ScopeEmployeeID: principal.PrincipalID})
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load tasks", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Success(w, insights.ScoreProductivity(tasks), requestctx.GetRequestID(r.Context()))
		return
	}

	rows, err := h.scoredRoster(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to score roster", requestctx.GetRequestID(r.Context()))
		return
	}

	response := map[string]any{"employees": rows}
	if h.Summarizer != nil && len(rows) > 0 {
		if summary, ok := h.Summarizer.Summarize(r.Context(), insights.ProductivityPrompt(rows)); ok {
			response["summary"] = summary
		}
	}
	api.Success(w, response, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleEmployeeProductivity(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.Store.GetEmployee(r.Context(), principal.OrganizationID, employeeID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load employee", requestctx.GetRequestID(r.Context()))
		return
	}

	tasks, err := h.Store.ListTasks(r.Context(), principal.OrganizationID, core.TaskFilter{ScopeEmployeeID: employeeID})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load tasks", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"employee":     emp,
		"productivity": insights.ScoreProductivity(tasks),
		"skillGap":     insights.DetectSkillGap(emp),
	}, requestctx.GetRequestID(r.Context()))
}

// HandleSkillGap reports role-expectation coverage. Employees get their own
// gap; admins the whole roster plus an optional summary.
func (h *Handler) HandleSkillGap(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	if principal.Role == auth.RoleEmployee {
		emp, err := h.Store.GetEmployee(r.Context(), principal.OrganizationID, principal.PrincipalID)
		if err != nil {
			// A token can outlive its employee record.
			if errors.Is(err, core.ErrNotFound) {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "session no longer valid", requestctx.GetRequestID(r.Context()))
				return
			}
			api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load employee", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Success(w, insights.DetectSkillGap(emp), requestctx.GetRequestID(r.Context()))
		return
	}

	employees, err := h.Store.ListEmployees(r.Context(), principal.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to list employees", requestctx.GetRequestID(r.Context()))
		return
	}
	rows := insights.GapRoster(employees)

	response := map[string]any{"employees": rows}
	if h.Summarizer != nil && len(rows) > 0 {
		if summary, ok := h.Summarizer.Summarize(r.Context(), insights.SkillGapPrompt(rows)); ok {
			response["summary"] = summary
		}
	}
	api.Success(w, response, requestctx.GetRequestID(r.Context()))
}

// HandleAssign ranks active employees for a task that may not exist yet.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	var task insights.TaskSpec
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("title", task.Title, "title is required")
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	employees, err := h.Store.ListActiveEmployees(r.Context(), principal.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to list employees", requestctx.GetRequestID(r.Context()))
		return
	}
	tasks, err := h.Store.AllTasks(r.Context(), principal.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load tasks", requestctx.GetRequestID(r.Context()))
		return
	}

	recommendations := insights.RecommendForTask(task, employees, tasks)

	response := map[string]any{"recommendations": recommendations}
	if h.Summarizer != nil && len(recommendations) > 0 {
		if summary, ok := h.Summarizer.Summarize(r.Context(), insights.AssignmentPrompt(task, recommendations)); ok {
			response["summary"] = summary
		}
	}
	api.Success(w, response, requestctx.GetRequestID(r.Context()))
}

// HandleProductivityReport renders the scored roster as a PDF download.
func (h *Handler) HandleProductivityReport(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())

	org, err := h.Store.GetOrganization(r.Context(), principal.OrganizationID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to load organization", requestctx.GetRequestID(r.Context()))
		return
	}
	rows, err := h.scoredRoster(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to score roster", requestctx.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	pdf, err := insights.ProductivityReportPDF(org.Name, rows, now)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_error", "failed to render report", requestctx.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=productivity-%s.pdf", now.Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) scoredRoster(r *http.Request) ([]insights.EmployeeScore, error) {
	principal, _ := middleware.GetPrincipal(r.Context())
	employees, err := h.Store.ListEmployees(r.Context(), principal.OrganizationID)
	if err != nil {
		return nil, err
	}
	tasks, err := h.Store.AllTasks(r.Context(), principal.OrganizationID)
	if err != nil {
		return nil, err
	}
	return insights.ScoreRoster(employees, tasks, time.Now()), nil
}
