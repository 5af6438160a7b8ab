package models

import "time"

// ComplaintStatus enum
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// Complaint is a citizen-filed report tied to a location. UserName is a
// snapshot taken at submission time.
type Complaint struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	UserName    string          `json:"userName"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	MediaURLs   []string        `json:"mediaUrls,omitempty"`
	Status      ComplaintStatus `json:"status"`
	Response    *string         `json:"response,omitempty"`
	RespondedAt *time.Time      `json:"respondedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
