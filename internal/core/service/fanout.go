package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/api/metrics"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// DedupChecker abstracts the fan-out idempotency store (Redis). A trigger
// that has already fanned out must not notify again when re-processed.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, kind, triggerID string) (bool, error)
	Mark(ctx context.Context, kind, triggerID string) error
}

// NotificationFanout writes a notification to the relevant user when a domain
// event fires. Fan-out runs synchronously inside the triggering request but
// is strictly best-effort: every failure is logged and swallowed so the
// triggering write never rolls back.
type NotificationFanout struct {
	notifications ports.NotificationRepository
	dedup         DedupChecker
	log           zerolog.Logger
}

func NewNotificationFanout(notifications ports.NotificationRepository, dedup DedupChecker, log zerolog.Logger) *NotificationFanout {
	return &NotificationFanout{notifications: notifications, dedup: dedup, log: log}
}

// InterestCreated notifies the startup owner that an investor expressed
// interest. The interest id is the dedup trigger.
func (f *NotificationFanout) InterestCreated(ctx context.Context, interest *domain.Interest, startup *domain.Startup, investor *domain.User) {
	f.deliver(ctx, domain.NotificationInterest, interest.ID, &domain.Notification{
		UserID:  startup.UserID,
		Title:   "New Interest in Your Startup",
		Message: fmt.Sprintf("%s has shown interest in your startup %q", investor.FullName, startup.Name),
		Type:    domain.NotificationInterest,
		Link:    "/startup/" + startup.ID,
	})
}

// FeedbackSaved notifies the startup owner that an AI analysis completed.
// The feedback id is the dedup trigger.
func (f *NotificationFanout) FeedbackSaved(ctx context.Context, feedback *domain.PitchFeedback, startup *domain.Startup) {
	f.deliver(ctx, domain.NotificationAiFeedback, feedback.ID, &domain.Notification{
		UserID:  startup.UserID,
		Title:   "New AI Analysis Complete",
		Message: fmt.Sprintf("Your %q pitch has been analyzed and feedback is ready.", startup.Name),
		Type:    domain.NotificationAiFeedback,
		Link:    "/startup/" + startup.ID + "/ai-feedback",
	})
}

func (f *NotificationFanout) deliver(ctx context.Context, kind, triggerID string, n *domain.Notification) {
	isDup, err := f.dedup.IsDuplicate(ctx, kind, triggerID)
	if err != nil {
		f.log.Warn().Err(err).Str("kind", kind).Str("trigger", triggerID).Msg("fanout dedup check failed, delivering anyway")
	} else if isDup {
		metrics.NotificationsFanoutTotal.WithLabelValues(kind, "deduped").Inc()
		f.log.Debug().Str("kind", kind).Str("trigger", triggerID).Msg("fanout skipped, trigger already processed")
		return
	}

	// Mark before writing so a crash-retry cannot double-notify.
	if markErr := f.dedup.Mark(ctx, kind, triggerID); markErr != nil {
		f.log.Warn().Err(markErr).Str("kind", kind).Str("trigger", triggerID).Msg("failed to set fanout dedup key")
	}

	n.Read = false
	n.CreatedAt = time.Now().UTC()
	if _, err := f.notifications.Create(ctx, n); err != nil {
		metrics.NotificationsFanoutTotal.WithLabelValues(kind, "failed").Inc()
		f.log.Error().Err(err).Str("kind", kind).Str("user_id", n.UserID).Msg("notification fanout failed")
		return
	}

	metrics.NotificationsFanoutTotal.WithLabelValues(kind, "delivered").Inc()
	f.log.Info().Str("kind", kind).Str("user_id", n.UserID).Msg("notification delivered")
}
