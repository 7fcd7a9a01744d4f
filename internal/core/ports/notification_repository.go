package ports

import (
	"context"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

// NotificationRepository defines persistence for notification records.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// ListByUser returns the user's notifications, newest first, capped at
	// limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	// MarkRead flips the read flag to true and returns the updated record.
	// Marking an already-read notification is a no-op, not an error.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
