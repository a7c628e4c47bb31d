package jobshandler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/platform/jobs"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

type Handler struct {
	Jobs  *jobs.Service
	Audit *audit.Service
}

func NewHandler(jobsSvc *jobs.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Jobs: jobsSvc, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/reminders/run", h.handleRunReminders)
	r.Get("/jobs/runs", h.handleListRuns)
}

// handleRunReminders runs a compliance reminder sweep synchronously so the
// caller sees how many new notifications it produced.
func (h *Handler) handleRunReminders(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	details, err := h.Jobs.RunNow(r.Context(), jobs.JobReminderSweep, h.Jobs.SweepReminders)
	if err != nil {
		slog.Warn("manual reminder sweep failed", "requestId", reqID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "reminder_sweep_failed", "failed to run reminder sweep", reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "reminders.run", "job", jobs.JobReminderSweep, nil, details)
	api.Success(w, details, reqID)
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 20, 100)
	jobType := strings.TrimSpace(r.URL.Query().Get("type"))
	api.Success(w, h.Jobs.Runs(jobType, page.Limit), middleware.GetRequestID(r.Context()))
}
