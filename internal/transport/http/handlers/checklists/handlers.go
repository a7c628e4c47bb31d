package checklisthandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/domain/notifications"
	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

type Handler struct {
	Service *onboarding.Service
	Notify  *notifications.Service
	Audit   *audit.Service
}

func NewHandler(service *onboarding.Service, notify *notifications.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Notify: notify, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{name}/documents", h.handleListDocuments)
	r.Post("/employees/{name}/documents/{doc}/upload", h.handleUploadDocument)
	r.Post("/employees/{name}/documents/{doc}/verify", h.handleVerifyDocument)
	r.Post("/employees/{name}/documents/{doc}/reject", h.handleRejectDocument)

	r.Get("/employees/{name}/tasks", h.handleListTasks)
	r.Post("/employees/{name}/tasks/{task}/start", h.handleStartTask)
	r.Post("/employees/{name}/tasks/{task}/complete", h.handleCompleteTask)

	r.Get("/employees/{name}/equipment", h.handleListEquipment)
	r.Post("/employees/{name}/equipment/{item}/assign", h.handleAssignEquipment)

	r.Get("/employees/{name}/compliance", h.handleListCompliance)
	r.Post("/employees/{name}/compliance/{module}/start", h.handleStartCompliance)
	r.Post("/employees/{name}/compliance/{module}/complete", h.handleCompleteCompliance)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	status := onboarding.DocumentStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && !status.Valid() {
		v := shared.NewValidator()
		v.Add("status", "must be one of Pending, Uploaded, Verified, Rejected")
		v.Reject(w, reqID)
		return
	}
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, onboarding.FilterDocuments(emp.Documents, status), reqID)
}

func (h *Handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, doc := shared.PathParam(r, "name"), shared.PathParam(r, "doc")
	item, err := h.Service.RecordDocumentUpload(name, doc)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "document.upload", "document", name+"/"+doc, nil, item)
	api.Success(w, item, reqID)
}

func (h *Handler) handleVerifyDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, doc := shared.PathParam(r, "name"), shared.PathParam(r, "doc")
	item, err := h.Service.VerifyDocument(name, doc, middleware.GetActor(r.Context()))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "document.verify", "document", name+"/"+doc, nil, item)
	api.Success(w, item, reqID)
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleRejectDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload rejectPayload
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	name, doc := shared.PathParam(r, "name"), shared.PathParam(r, "doc")
	item, err := h.Service.RejectDocument(name, doc)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	body := doc + " was rejected. Please upload a new copy."
	if reason := strings.TrimSpace(payload.Reason); reason != "" {
		body = doc + " was rejected: " + reason
	}
	if h.Notify != nil {
		if err := h.Notify.Create(r.Context(), name, notifications.TypeDocumentRejected, "Document rejected", body); err != nil {
			slog.Warn("document rejection notification failed", "employee", name, "err", err)
		}
	}
	shared.RecordAudit(r, h.Audit, "document.reject", "document", name+"/"+doc, nil, map[string]any{"document": item, "reason": payload.Reason})
	api.Success(w, item, reqID)
}

type taskList struct {
	Categories []string              `json:"categories"`
	Tasks      []onboarding.TaskView `json:"tasks"`
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	api.Success(w, taskList{
		Categories: onboarding.TaskCategories(emp.Tasks),
		Tasks:      onboarding.TaskViews(emp.Tasks, category, h.Service.Now()),
	}, reqID)
}

func (h *Handler) handleStartTask(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, task := shared.PathParam(r, "name"), shared.PathParam(r, "task")
	item, err := h.Service.StartTask(name, task)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "task.start", "task", name+"/"+task, nil, item)
	api.Success(w, item, reqID)
}

func (h *Handler) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, task := shared.PathParam(r, "name"), shared.PathParam(r, "task")
	transition, err := h.Service.CompleteTask(name, task)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	if h.Notify != nil {
		for _, unlocked := range transition.Unlocked {
			body := fmt.Sprintf("%s is ready to start now that %s is complete.", unlocked, task)
			if err := h.Notify.Create(r.Context(), name, notifications.TypeTaskUnlocked, "Task unlocked", body); err != nil {
				slog.Warn("task unlock notification failed", "employee", name, "task", unlocked, "err", err)
			}
		}
	}
	shared.RecordAudit(r, h.Audit, "task.complete", "task", name+"/"+task, nil, transition)
	api.Success(w, transition, reqID)
}

func (h *Handler) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, emp.Equipment, reqID)
}

type assignPayload struct {
	SerialNumber string `json:"serialNumber"`
	AssignedBy   string `json:"assignedBy"`
}

func (h *Handler) handleAssignEquipment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload assignPayload
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	assigner := strings.TrimSpace(payload.AssignedBy)
	if assigner == "" {
		assigner = middleware.GetActor(r.Context())
	}
	name, item := shared.PathParam(r, "name"), shared.PathParam(r, "item")
	assigned, err := h.Service.AssignEquipment(name, item, assigner, payload.SerialNumber)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "equipment.assign", "equipment", name+"/"+item, nil, assigned)
	api.Success(w, assigned, reqID)
}

type complianceView struct {
	onboarding.ComplianceItem
	DaysUntilDue int  `json:"daysUntilDue"`
	Overdue      bool `json:"overdue"`
}

func (h *Handler) handleListCompliance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Get(shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	now := h.Service.Now()
	out := make([]complianceView, 0, len(emp.Compliance))
	for _, c := range emp.Compliance {
		days := onboarding.DaysUntil(c.DueDate, now)
		out = append(out, complianceView{
			ComplianceItem: c,
			DaysUntilDue:   days,
			Overdue:        c.Status != onboarding.ComplianceCompleted && days < 0,
		})
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleStartCompliance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, module := shared.PathParam(r, "name"), shared.PathParam(r, "module")
	item, err := h.Service.StartCompliance(name, module)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "compliance.start", "compliance", name+"/"+module, nil, item)
	api.Success(w, item, reqID)
}

func (h *Handler) handleCompleteCompliance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	name, module := shared.PathParam(r, "name"), shared.PathParam(r, "module")
	item, err := h.Service.CompleteCompliance(name, module)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	shared.RecordAudit(r, h.Audit, "compliance.complete", "compliance", name+"/"+module, nil, item)
	api.Success(w, item, reqID)
}
