package domain

import "time"

// ImageQueueStatus is the processing state of one uploaded image file.
type ImageQueueStatus string

// Image queue states.
const (
	QueueStatusPending ImageQueueStatus = "pending"
	QueueStatusDone    ImageQueueStatus = "done"
	QueueStatusError   ImageQueueStatus = "error"
)

// QueuedImage is one uploaded image file awaiting card extraction.
// Files sharing a basename (front/back shots of the same card) are
// grouped by the queue processor, not at enqueue time.
type QueuedImage struct {
	ID          string           `json:"id"           db:"id"`
	Path        string           `json:"path"         db:"path"`
	Status      ImageQueueStatus `json:"status"       db:"status"`
	ErrorText   string           `json:"error_text,omitempty" db:"error_text"`
	EnqueuedAt  time.Time        `json:"enqueued_at"  db:"enqueued_at"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty" db:"processed_at"`
}
