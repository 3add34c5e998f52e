package export

import "time"

// Job statuses. Lifecycle: queued -> processing -> completed | failed.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job is a background export request. StorageKey is set once the rendered
// document has been written to the object store.
type Job struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	RequestedBy    string    `json:"requestedBy"`
	PriorityFilter string    `json:"priorityFilter,omitempty"`
	Status         string    `json:"status"`
	StorageKey     string    `json:"storageKey,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
