package model

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a user task. Date and Time are optional: undated tasks are valid
// and surface in the "no date" bucket when listing.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      string     `json:"date,omitempty"` // YYYY-MM-DD
	Time      string     `json:"time,omitempty"` // HH:MM, 24-hour
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
