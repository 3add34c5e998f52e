package projects

import "time"

// Project is the owning container for objects, attributes, and actions. Only
// the fields the preview and export surfaces need are carried here.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
