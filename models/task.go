package models

import "time"

// TaskPriority enum
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskStatus enum
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is an admin-issued work order assigned to a worker, optionally linked
// to the complaint it addresses. WorkerName is a snapshot taken at creation.
type Task struct {
	ID               int          `json:"id"`
	WorkerID         int          `json:"workerId"`
	WorkerName       string       `json:"workerName"`
	ComplaintID      *int         `json:"complaintId,omitempty"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Location         string       `json:"location"`
	Priority         TaskPriority `json:"priority"`
	Status           TaskStatus   `json:"status"`
	AssignedAt       time.Time    `json:"assignedAt"`
	CompletedAt      *time.Time   `json:"completedAt,omitempty"`
	CompletionPhotos []string     `json:"completionPhotos"`
	CompletionNote   *string      `json:"completionNote,omitempty"`
}

// ValidPriority reports whether p is one of the known task priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
