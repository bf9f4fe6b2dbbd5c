package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/middleware"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

// NotificationController handles the student notification feed.
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List handles GET /api/notifications
func (ctrl *NotificationController) List(c *gin.Context) {
	student, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	notifications, unread, err := ctrl.notificationService.List(c.Request.Context(), student.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.NewNotificationResponse(&notifications[i]))
	}

	c.JSON(http.StatusOK, dto.NotificationListResponse{
		Success:       true,
		Notifications: out,
		UnreadCount:   unread,
	})
}

// MarkRead handles PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	student, ok := middleware.GetStudent(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.notificationService.MarkRead(c.Request.Context(), student.ID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked as read"))
}
