package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification inbox endpoints.
type NotificationHandler struct {
	svc *service.NotificationService
}

// NewNotificationHandler returns a new NotificationHandler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary      List the actor's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListNotificationsResponse
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor := auth.IdentityFromContext(c)
	list, err := h.svc.GetUserNotifications(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.NotificationResponse, len(list))
	for i, n := range list {
		out[i] = dto.NotificationResponse{ID: n.ID, Message: n.Message, Seen: n.Seen, CreatedAt: n.CreatedAt}
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Items: out})
}

// MarkRead godoc
// @Summary      Mark a notification as seen
// @Tags         notifications
// @Security     CookieAuth
// @Param        id   path  int  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/mark-read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkAsRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
