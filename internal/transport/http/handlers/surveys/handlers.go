package surveyshandler

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/domain/reports"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

type Handler struct {
	Service *onboarding.Service
	Reports *reports.Service
	Audit   *audit.Service
}

func NewHandler(service *onboarding.Service, reportsSvc *reports.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Reports: reportsSvc, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{name}/surveys", h.handleList)
	r.Post("/employees/{name}/surveys", h.handleSubmit)
	r.Get("/employees/{name}/surveys/analytics", h.handleAnalytics)
}

// handleList returns surveys newest first.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	surveys := slices.Clone(emp.Surveys)
	slices.Reverse(surveys)
	api.Success(w, surveys, reqID)
}

type submitPayload struct {
	Ratings  onboarding.SurveyRatings  `json:"ratings"`
	Feedback onboarding.SurveyFeedback `json:"feedback"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload submitPayload
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	ratings := payload.Ratings
	for field, value := range map[string]int{
		"ratings.satisfaction": ratings.Satisfaction,
		"ratings.clarity":      ratings.Clarity,
		"ratings.support":      ratings.Support,
		"ratings.resources":    ratings.Resources,
		"ratings.workload":     ratings.Workload,
		"ratings.cultureFit":   ratings.CultureFit,
	} {
		v.IntRange(field, value, onboarding.MinRating, onboarding.MaxRating)
	}
	if v.Reject(w, reqID) {
		return
	}

	name := shared.PathParam(r, "name")
	survey, err := h.Service.SubmitSurvey(name, payload.Ratings, payload.Feedback)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "survey.submit", "survey", survey.ID, nil, map[string]any{
		"employee":     name,
		"averageScore": survey.AverageScore,
		"sentiment":    survey.Sentiment,
	})
	api.Created(w, survey, reqID)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	out, err := h.Reports.SurveyAnalytics(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}
