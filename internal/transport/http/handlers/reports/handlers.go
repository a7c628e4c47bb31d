package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/reports"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/dashboard", h.handleDashboard)
	r.Get("/reports/roster.xlsx", h.handleRoster)
	r.Get("/employees/{name}/export/summary.pdf", h.handleSummaryPDF)
	r.Get("/employees/{name}/export/meetings.ics", h.handleMeetingsICS)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Dashboard(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	buf, err := h.Service.RosterXLSX()
	if err != nil {
		shared.FailDomain(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Attachment(w, contentTypeXLSX, "onboarding-roster.xlsx", buf.Bytes())
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	name := shared.PathParam(r, "name")
	buf, err := h.Service.SummaryPDF(name)
	if err != nil {
		shared.FailDomain(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Attachment(w, contentTypePDF, shared.SafeFilename(name)+"-onboarding.pdf", buf.Bytes())
}

func (h *Handler) handleMeetingsICS(w http.ResponseWriter, r *http.Request) {
	name := shared.PathParam(r, "name")
	out, err := h.Service.MeetingsICS(name)
	if err != nil {
		shared.FailDomain(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Attachment(w, contentTypeICS, shared.SafeFilename(name)+"-meetings.ics", []byte(out))
}
