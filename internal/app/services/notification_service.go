package services

import (
	"context"

	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/repositories"
	"github.com/adikale/placementhub/internal/pkg/logger"
)

// notificationFeedLimit caps the feed at the newest entries; older rows
// stay in the table but are not served.
const notificationFeedLimit = 10

// NotificationService handles creating and reading in-app notifications
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// Notify writes a single notification for one user
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string) error {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
	}
	return s.notificationRepo.Create(ctx, notification)
}

// NotifyMany fans a message out to several recipients, one row each. Each
// write is independent: a failed insert is logged and skipped so one bad
// recipient never blocks the rest. Returns how many were delivered.
func (s *NotificationService) NotifyMany(ctx context.Context, userIDs []int64, message string) int {
	delivered := 0
	for _, userID := range userIDs {
		if err := s.Notify(ctx, userID, message); err != nil {
			logger.Error().Err(err).Int64("userID", userID).Msg("Failed to deliver notification")
			continue
		}
		delivered++
	}
	return delivered
}

// GetFeed returns a user's newest notifications
func (s *NotificationService) GetFeed(ctx context.Context, userID int64) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.GetRecent(ctx, userID, notificationFeedLimit)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

// MarkRead flags one notification of the user as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead flags the user's whole feed as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the user's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}
