package domain

import "time"

// Notification types, used as free-form tags on the wire.
const (
	NotificationInterest       = "interest"
	NotificationAiFeedback     = "ai-feedback"
	NotificationEvent          = "event"
	NotificationRecommendation = "recommendation"
)

// NotificationFeedLimit caps how many notifications a user retrieves,
// newest first.
const NotificationFeedLimit = 20

// Notification is written exclusively as a side effect of other domain
// writes and mutated only to flip Read.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Type      string    `json:"type" bson:"type"`
	Read      bool      `json:"read" bson:"read"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
