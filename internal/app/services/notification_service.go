package services

import (
	"context"

	"github.com/placementcell/portal/internal/app/models"
)

const notificationPageSize = 50

// NotificationService handles a student's notification feed.
type NotificationService struct {
	notificationRepo NotificationStore
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo NotificationStore) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the student's recent notifications plus the unread count.
func (s *NotificationService) List(ctx context.Context, studentID int64) ([]models.Notification, int64, error) {
	notifications, err := s.notificationRepo.ListByStudent(ctx, studentID, notificationPageSize)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notificationRepo.CountUnread(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

// MarkRead marks one of the student's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, studentID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, studentID, notificationID)
}
