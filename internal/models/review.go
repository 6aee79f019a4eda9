package models

import "time"

// ReviewStatusPending is the status every newly submitted review carries;
// moderation happens on the backend.
const ReviewStatusPending = "pending"

// ReviewDraft is the form-local state of one review modal session. It is
// discarded on submit or cancel and never persisted.
type ReviewDraft struct {
	ProductID string `json:"product_id"`
	Rate      int    `json:"rate"`
	Content   string `json:"content,omitempty"`
}

// Review is a published product review as returned by the backend.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rate      int       `json:"rate"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewListQuery mirrors the backend review listing parameters.
type ReviewListQuery struct {
	ProductID string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
