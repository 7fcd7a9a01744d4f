package service

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// NotificationService exposes the per-user notification feed. Records are
// only ever created through the fan-out path, never through this service.
type NotificationService struct {
	notifications ports.NotificationRepository
}

func NewNotificationService(notifications ports.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, domain.NotificationFeedLimit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.notifications.MarkRead(ctx, id)
}
