package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/domain/notifications"
	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/domain/reports"
	"onboardhub/internal/platform/config"
	"onboardhub/internal/platform/jobs"
	"onboardhub/internal/platform/metrics"
	"onboardhub/internal/transport/http/api"
	audithandler "onboardhub/internal/transport/http/handlers/audit"
	checklisthandler "onboardhub/internal/transport/http/handlers/checklists"
	employeeshandler "onboardhub/internal/transport/http/handlers/employees"
	jobshandler "onboardhub/internal/transport/http/handlers/jobs"
	meetingshandler "onboardhub/internal/transport/http/handlers/meetings"
	notificationshandler "onboardhub/internal/transport/http/handlers/notifications"
	reportshandler "onboardhub/internal/transport/http/handlers/reports"
	surveyshandler "onboardhub/internal/transport/http/handlers/surveys"
	"onboardhub/internal/transport/http/middleware"
)

type App struct {
	Config        config.Config
	Onboarding    *onboarding.Service
	Reports       *reports.Service
	Notifications *notifications.Service
	Audit         *audit.Service
	Jobs          *jobs.Service
	Metrics       *metrics.Collector
	Router        http.Handler

	cancel context.CancelFunc
}

// New wires the services and router and starts background jobs. Close stops them.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	tmpl := onboarding.DefaultTemplate()
	if cfg.TemplateFile != "" {
		loaded, err := onboarding.LoadTemplate(cfg.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("load template: %w", err)
		}
		tmpl = loaded
	}

	onboardingSvc := onboarding.NewService(onboarding.NewStore(), tmpl,
		onboarding.WithDocumentReupload(cfg.AllowDocumentReupload))
	notifySvc := notifications.New(notifications.NewStore())
	collector := metrics.New()

	app := &App{
		Config:        cfg,
		Onboarding:    onboardingSvc,
		Reports:       reports.NewService(onboardingSvc),
		Notifications: notifySvc,
		Audit:         audit.New(),
		Jobs:          jobs.New(cfg, onboardingSvc, notifySvc, collector),
		Metrics:       collector,
	}
	app.Router = app.routes()

	jobsCtx, cancel := context.WithCancel(ctx)
	app.cancel = cancel
	app.Jobs.Start(jobsCtx)
	return app, nil
}

func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Actor(cfg.DefaultActor))
	router.Use(middleware.Logger(a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if a.Onboarding == nil || a.Onboarding.Template == nil {
			http.Error(w, "template not loaded", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			snapshot := a.Metrics.Snapshot()
			snapshot["employees"] = a.Onboarding.Store.Len()
			api.Success(w, snapshot, middleware.GetRequestID(r.Context()))
		})
	}

	idempotency := middleware.NewIdempotencyStore(24 * time.Hour)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotency))

		employeeshandler.NewHandler(a.Onboarding, a.Audit).RegisterRoutes(r)
		checklisthandler.NewHandler(a.Onboarding, a.Notifications, a.Audit).RegisterRoutes(r)
		meetingshandler.NewHandler(a.Onboarding, a.Audit).RegisterRoutes(r)
		surveyshandler.NewHandler(a.Onboarding, a.Reports, a.Audit).RegisterRoutes(r)
		reportshandler.NewHandler(a.Reports).RegisterRoutes(r)
		notificationshandler.NewHandler(a.Notifications).RegisterRoutes(r)
		audithandler.NewHandler(a.Audit).RegisterRoutes(r)
		jobshandler.NewHandler(a.Jobs, a.Audit).RegisterRoutes(r)
	})

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("onboardhub listening", "addr", a.Config.Addr, "env", a.Config.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", a.Config.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Close()
	return srv.Shutdown(shutdownCtx)
}
