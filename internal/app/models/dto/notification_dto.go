package dto

import (
	"time"

	"github.com/placementcell/portal/internal/app/models"
)

// NotificationResponse is the wire representation of a notification.
type NotificationResponse struct {
	ID        int64  `json:"notification_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NewNotificationResponse maps a notification model to its wire form.
func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

// NotificationListResponse wraps the caller's notifications.
type NotificationListResponse struct {
	Success       bool                   `json:"success"`
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}
