package reportshandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/reports"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/metrics"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/requestctx"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/api"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Metrics *metrics.Collector
}

func NewHandler(service *reports.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/dashboard", h.HandleDashboard)
		r.Get("/metrics", h.HandleMetrics)
	})
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipal(r.Context())
	dashboard, err := h.Service.Dashboard(r.Context(), principal.OrganizationID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "failed to build dashboard", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if h.Metrics == nil {
		api.Fail(w, http.StatusNotFound, "metrics_disabled", "metrics collection is disabled", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Metrics.Snapshot(), requestctx.GetRequestID(r.Context()))
}
