package model

import "time"

// Recurrence is the repetition policy of an alarm.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Alarm is a scheduled reminder. Unlike Task, Date and Time are mandatory:
// an alarm without a trigger instant is meaningless.
type Alarm struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Time        string     `json:"time"` // HH:MM, 24-hour
	Recurrence  Recurrence `json:"recurrence"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
