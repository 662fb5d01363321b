package repository

import "jarvis-assistant/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
// The repository assigns ID and timestamps.
type CreateTaskOptions struct {
	Title  string
	Date   string // optional
	Time   string // optional
	Status model.TaskStatus
}

// ListTasksOptions holds filter parameters for listing Tasks.
// Zero-valued fields are not applied.
type ListTasksOptions struct {
	Date   string // exact-date filter
	NoDate bool   // only tasks without a date
	Status model.TaskStatus
}

// UpdateTaskOptions holds partial updates for an existing Task.
// Zero-valued fields are left unchanged.
type UpdateTaskOptions struct {
	Title  string
	Date   string
	Time   string
	Status model.TaskStatus
}

// CreateAlarmOptions holds parameters for inserting a new Alarm.
type CreateAlarmOptions struct {
	Description string
	Date        string
	Time        string
	Recurrence  model.Recurrence
	Active      bool
}

// ListAlarmsOptions holds filter parameters for listing Alarms.
type ListAlarmsOptions struct {
	ActiveOnly bool
}

// UpdateAlarmOptions holds partial updates for an existing Alarm.
// Zero-valued fields are left unchanged; Active is a pointer so the flag can
// be switched off.
type UpdateAlarmOptions struct {
	Description string
	Date        string
	Time        string
	Recurrence  model.Recurrence
	Active      *bool
}
