package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/core"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/insights"
	"github.com/vyshnavi005-max/AI-HRMS/internal/domain/reports"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/config"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/db"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/gemini"
	"github.com/vyshnavi005-max/AI-HRMS/internal/platform/metrics"
	authhandler "github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/handlers/auth"
	employeeshandler "github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/handlers/employees"
	insightshandler "github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/handlers/insights"
	reportshandler "github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/handlers/reports"
	taskshandler "github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/handlers/tasks"
	"github.com/vyshnavi005-max/AI-HRMS/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New wires the application against an existing pool. Tests use the Router
// directly; Run owns the listener.
func New(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) *App {
	coreStore := core.NewStore(pool)
	reportsService := reports.NewService(reports.NewStore(pool))

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	var summarizer insights.Summarizer
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		if err != nil {
			slog.Warn("gemini client unavailable, summaries disabled", "err", err)
		} else {
			summarizer = client
		}
	}

	if summarizer != nil && collector != nil {
		summarizer = meteredSummarizer{inner: summarizer, metrics: collector}
	}

	isProd := cfg.Environment == "production"

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(isProd))
	router.Use(middleware.CORS(cfg.FrontendOrigin))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	// Logger after Auth so entries carry the role; Metrics above RateLimit
	// so rejected requests are still counted.
	router.Use(middleware.Logger)
	if collector != nil {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(coreStore, cfg.JWTSecret, cfg.TokenTTL, isProd, cfg.AllowRegistration)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/employee-login", authHandler.HandleEmployeeLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.With(middleware.RequireAuth).Get("/auth/me", authHandler.HandleMe)

		employeeshandler.NewHandler(coreStore).RegisterRoutes(r)
		taskshandler.NewHandler(coreStore).RegisterRoutes(r)
		insightshandler.NewHandler(coreStore, summarizer).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, collector).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}
}

// meteredSummarizer counts summary outcomes without the insight handlers
// knowing about the collector.
type meteredSummarizer struct {
	inner   insights.Summarizer
	metrics *metrics.Collector
}

func (m meteredSummarizer) Summarize(ctx context.Context, prompt string) (string, bool) {
	text, ok := m.inner.Summarize(ctx, prompt)
	m.metrics.RecordSummary(ok)
	return text, ok
}

func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect failed: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	app := New(ctx, cfg, pool)

	log.Printf("workforce server listening on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, app.Router)
}
