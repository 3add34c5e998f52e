package recommendations

// Priority ranks a recommendation for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one prioritized, human-readable action item.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Action   string   `json:"action"`
}
