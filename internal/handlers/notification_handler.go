package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/notifications"
)

type NotificationHandler struct {
	store *notifications.Store
}

func NewNotificationHandler(store *notifications.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	rows, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Error al listar notificaciones.")
		return
	}

	httpresp.OK(c, rows)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.store.MarkAllRead(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_mark_notifications", "Error al actualizar notificaciones.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
