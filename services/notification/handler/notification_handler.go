package handler

import (
	"net/http"

	"auction-spot/internal/auth"
	model "auction-spot/internal/models"
	notification "auction-spot/internal/notificationService"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

type NotificationServiceInterface interface {
	List(principal auth.Principal) ([]model.Notification, error)
	Create(principal auth.Principal, in notification.CreateInput) (model.Notification, error)
	MarkRead(principal auth.Principal, notificationID string) (model.Notification, error)
}

type NotificationHandler struct {
	service NotificationServiceInterface
}

func NewNotificationHandler(service NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotificationsHandler handles GET /api/notifications
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	principal := auth.PrincipalFrom(c)
	notifications, err := h.service.List(principal)
	if err != nil {
		helpers.RespondError(c, "ListNotificationsHandler", "error listing notifications", err, map[string]any{"user_id": principal.UserID})
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	utils.JSONResponse(c, http.StatusOK, notifications, "notifications retrieved successfully")
}

// CreateNotificationHandler handles POST /api/notifications
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	var req helpers.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateNotificationHandler", err)
		return
	}

	n, err := h.service.Create(auth.PrincipalFrom(c), req.ToInput())
	if err != nil {
		helpers.RespondError(c, "CreateNotificationHandler", "failed to create notification", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, n, "notification created successfully")
	helpers.LogSuccess("CreateNotificationHandler", "notification created successfully", map[string]any{
		"notification_id": n.NotificationID,
		"user_id":         n.UserID,
	})
}

// MarkReadHandler handles PATCH /api/notifications/:notification_id/read
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	notificationID := c.Param("notification_id")
	n, err := h.service.MarkRead(auth.PrincipalFrom(c), notificationID)
	if err != nil {
		helpers.RespondError(c, "MarkReadHandler", "failed to mark notification read", err, map[string]any{"notification_id": notificationID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, n, "notification marked read")
}
