package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/oblik-ua/oblik-sdk/modules/notification/domain/entities/notification"
	"github.com/oblik-ua/oblik-sdk/modules/notification/presentation/mappers"
	"github.com/oblik-ua/oblik-sdk/modules/notification/presentation/viewmodels"
	"github.com/oblik-ua/oblik-sdk/modules/notification/services"
)

type NotificationAPIController struct {
	notifications *services.NotificationService
	basePath      string
	pageSize      int
}

func NewNotificationAPIController(notifications *services.NotificationService, pageSize int) *NotificationAPIController {
	return &NotificationAPIController{
		notifications: notifications,
		basePath:      "/notifications/api",
		pageSize:      pageSize,
	}
}

func (c *NotificationAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/unread-count", c.UnreadCount).Methods(http.MethodGet)
	router.HandleFunc("/{id}/read", c.MarkRead).Methods(http.MethodPost)
	router.HandleFunc("/read-all", c.MarkAllRead).Methods(http.MethodPost)
}

func (c *NotificationAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &notification.FindParams{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      c.pageSize,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			params.Limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}
	items, total, err := c.notifications.GetPaginated(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "NOTIFICATION_INTERNAL", "internal error")
		return
	}
	vms := make([]viewmodels.Notification, len(items))
	for i, n := range items {
		vms[i] = mappers.NotificationToViewModel(n)
	}
	writeResponse(w, http.StatusOK, map[string]any{"items": vms, "total": total})
}

func (c *NotificationAPIController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := c.notifications.CountUnread(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "NOTIFICATION_INTERNAL", "internal error")
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"count": count})
}

func (c *NotificationAPIController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "NOTIFICATION_BAD_ID", "invalid notification id")
		return
	}
	if err := c.notifications.MarkRead(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "notification not found")
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"ok": true})
}

func (c *NotificationAPIController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := c.notifications.MarkAllRead(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "NOTIFICATION_INTERNAL", "internal error")
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"ok": true})
}

func writeResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeResponse(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
