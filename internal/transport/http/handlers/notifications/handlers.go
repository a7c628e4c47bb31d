package notificationshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"onboardhub/internal/domain/notifications"
	"onboardhub/internal/transport/http/api"
	"onboardhub/internal/transport/http/middleware"
	"onboardhub/internal/transport/http/shared"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 100, 500)
	filter := notifications.Filter{
		Employee:   strings.TrimSpace(r.URL.Query().Get("employee")),
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}

	total, err := h.Service.Count(r.Context(), filter)
	if err != nil {
		slog.Warn("notification count failed", "err", err)
	}
	unread, err := h.Service.UnreadCount(r.Context(), filter.Employee)
	if err != nil {
		slog.Warn("notification unread count failed", "err", err)
	}

	items, err := h.Service.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_list_failed", "failed to list notifications", reqID)
		return
	}

	shared.SetTotalCount(w, total)
	w.Header().Set("X-Unread-Count", strconv.Itoa(unread))
	api.Success(w, items, reqID)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	n, err := h.Service.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
	if errors.Is(err, notifications.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "notification not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_update_failed", "failed to update notification", reqID)
		return
	}
	api.Success(w, n, reqID)
}
