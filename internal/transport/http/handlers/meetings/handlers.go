package meetingshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

type Handler struct {
	Service *onboarding.Service
	Audit   *audit.Service
}

func NewHandler(service *onboarding.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{name}/meetings", h.handleList)
	r.Post("/employees/{name}/meetings", h.handleSchedule)
	r.Post("/employees/{name}/meetings/{meetingID}/complete", h.handleComplete)
	r.Delete("/employees/{name}/meetings/{meetingID}", h.handleCancel)
}

type meetingList struct {
	Stats    onboarding.MeetingStats  `json:"stats"`
	Meetings []onboarding.MeetingView `json:"meetings"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	views, stats := onboarding.SortedMeetings(emp.Meetings, h.Service.Now())
	api.Success(w, meetingList{Stats: stats, Meetings: views}, reqID)
}

type schedulePayload struct {
	Type        string `json:"type"`
	ScheduledAt string `json:"scheduledAt"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Attendees   string `json:"attendees"`
	Notes       string `json:"notes"`
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload schedulePayload
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Required("type", payload.Type, "is required")
	v.Required("scheduledAt", payload.ScheduledAt, "is required")
	scheduledAt, err := shared.ParseDateTime(payload.ScheduledAt)
	if err != nil {
		v.Add("scheduledAt", "must be RFC3339 or YYYY-MM-DDTHH:MM")
	}
	if v.Reject(w, reqID) {
		return
	}

	name := shared.PathParam(r, "name")
	meeting, err := h.Service.ScheduleMeeting(name, onboarding.MeetingInput{
		Type:        payload.Type,
		ScheduledAt: scheduledAt,
		Duration:    payload.Duration,
		Location:    payload.Location,
		Attendees:   payload.Attendees,
		Notes:       payload.Notes,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "meeting.schedule", "meeting", meeting.ID, nil, meeting)
	api.Created(w, meeting, reqID)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	meeting, err := h.Service.CompleteMeeting(shared.PathParam(r, "name"), chi.URLParam(r, "meetingID"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "meeting.complete", "meeting", meeting.ID, nil, meeting)
	api.Success(w, meeting, reqID)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	meeting, err := h.Service.CancelMeeting(shared.PathParam(r, "name"), chi.URLParam(r, "meetingID"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "meeting.cancel", "meeting", meeting.ID, meeting, nil)
	api.Success(w, map[string]string{"status": "cancelled"}, reqID)
}
