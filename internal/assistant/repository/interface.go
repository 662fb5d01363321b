package repository

import (
	"context"

	"jarvis-assistant/internal/model"
)

// TaskRepository defines all data access methods for the Task collection.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// AlarmRepository defines all data access methods for the Alarm collection.
type AlarmRepository interface {
	CreateAlarm(ctx context.Context, opt CreateAlarmOptions) (model.Alarm, error)
	GetAlarm(ctx context.Context, id string) (model.Alarm, error)
	ListAlarms(ctx context.Context, opt ListAlarmsOptions) ([]model.Alarm, error)
	UpdateAlarm(ctx context.Context, id string, opt UpdateAlarmOptions) (model.Alarm, error)
	DeleteAlarm(ctx context.Context, id string) error
}
