package domain

import "time"

// InterestStatus is the lifecycle state of an investor's interest record.
type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestAccepted InterestStatus = "accepted"
	InterestRejected InterestStatus = "rejected"
)

// validStatusTransitions defines the allowed state changes. Accepted and
// rejected are terminal.
var validStatusTransitions = map[InterestStatus][]InterestStatus{
	InterestPending: {InterestAccepted, InterestRejected},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid. A no-op transition to the same status is always allowed.
func (s InterestStatus) CanTransitionTo(next InterestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidInterestStatus reports whether status is a recognized value.
func ValidInterestStatus(status InterestStatus) bool {
	switch status {
	case InterestPending, InterestAccepted, InterestRejected:
		return true
	}
	return false
}

// Interest is an investor's bookmark-with-feedback against one startup.
// At most one interest exists per (investor, startup) pair; updates mutate
// the existing record rather than appending a log.
type Interest struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	InvestorID string         `json:"investor_id" bson:"investor_id"`
	StartupID  string         `json:"startup_id" bson:"startup_id"`
	Notes      string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Feedback   string         `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Status     InterestStatus `json:"status" bson:"status"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}
