package domain

import "time"

// Event is a scheduled live pitch session. "Upcoming" is derived from
// EventDate at query time, never stored.
type Event struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	EventDate   time.Time `json:"event_date" bson:"event_date"`
	Duration    int       `json:"duration" bson:"duration"` // minutes
	MeetingLink string    `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Upcoming reports whether the event is still ahead of now.
func (e Event) Upcoming(now time.Time) bool {
	return e.EventDate.After(now)
}
