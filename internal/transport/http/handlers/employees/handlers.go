package employeeshandler

import (
	"net/http"
	"strings"

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
	r.Get("/catalog", h.handleCatalog)
	r.Get("/employees", h.handleList)
	r.Post("/employees", h.handleRegister)
	r.Get("/employees/{name}", h.handleGet)
	r.Delete("/employees/{name}", h.handleDelete)
	r.Get("/employees/{name}/progress", h.handleProgress)
	r.Get("/employees/{name}/reminders", h.handleReminders)
}

type registerPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Manager    string `json:"manager"`
	StartDate  string `json:"startDate"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload registerPayload
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	v.Required("email", payload.Email, "is required")
	v.Email("email", payload.Email)
	v.Required("department", payload.Department, "is required")
	v.Enum("department", payload.Department, h.Service.Template.Departments, "must be a known department")
	v.Required("role", payload.Role, "is required")
	start := h.Service.Now()
	if strings.TrimSpace(payload.StartDate) != "" {
		start, _ = v.Date("startDate", payload.StartDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	emp, err := h.Service.Register(onboarding.RegisterInput{
		Name:       payload.Name,
		Email:      payload.Email,
		Department: canonicalDepartment(h.Service.Template.Departments, payload.Department),
		Role:       payload.Role,
		Manager:    payload.Manager,
		StartDate:  start,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "employee.register", "employee", emp.Name, nil, emp.Summary())
	api.Created(w, emp, reqID)
}

func canonicalDepartment(known []string, value string) string {
	value = strings.TrimSpace(value)
	for _, d := range known {
		if strings.EqualFold(d, value) {
			return d
		}
	}
	return value
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 100, 500)
	department := strings.TrimSpace(r.URL.Query().Get("department"))
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	matched := make([]onboarding.EmployeeSummary, 0)
	for _, s := range h.Service.Summaries() {
		if department != "" && !strings.EqualFold(s.Department, department) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		matched = append(matched, s)
	}

	start, end := page.Bounds(len(matched))
	shared.SetTotalCount(w, len(matched))
	api.Success(w, matched[start:end], middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name := shared.PathParam(r, "name")
	before, err := h.Service.Get(name)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	if err := h.Service.Remove(name); err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "employee.remove", "employee", name, before.Summary(), nil)
	api.Success(w, map[string]string{"status": "removed"}, reqID)
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	report, err := h.Service.Progress(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, report, reqID)
}

func (h *Handler) handleReminders(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	reminders, err := h.Service.ComplianceReminders(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	type reminderView struct {
		onboarding.Reminder
		Message string `json:"message"`
	}
	out := make([]reminderView, 0, len(reminders))
	for _, rem := range reminders {
		out = append(out, reminderView{Reminder: rem, Message: rem.Message()})
	}
	api.Success(w, out, reqID)
}

type catalogResponse struct {
	Departments  []string                        `json:"departments"`
	MeetingTypes []string                        `json:"meetingTypes"`
	Durations    []string                        `json:"meetingDurations"`
	Documents    []onboarding.DocumentTemplate   `json:"documents"`
	Tasks        []onboarding.TaskTemplate       `json:"tasks"`
	Equipment    []string                        `json:"equipment"`
	Compliance   []onboarding.ComplianceTemplate `json:"compliance"`
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Service.Template
	api.Success(w, catalogResponse{
		Departments:  tmpl.Departments,
		MeetingTypes: tmpl.MeetingTypes,
		Durations:    onboarding.MeetingDurations,
		Documents:    tmpl.Documents,
		Tasks:        tmpl.Tasks,
		Equipment:    tmpl.Equipment,
		Compliance:   tmpl.Compliance,
	}, middleware.GetRequestID(r.Context()))
}
