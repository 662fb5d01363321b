package kvstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/model"
)

func (r *impl) loadTasks() ([]model.Task, error) {
	var tasks []model.Task
	if _, err := r.store.Get(tasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *impl) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks()
	if err != nil {
		return model.Task{}, err
	}

	status := opt.Status
	if status == "" {
		status = model.TaskStatusPending
	}

	now := time.Now()
	task := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		Date:      opt.Date,
		Time:      opt.Time,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks = append(tasks, task)
	if err := r.store.Set(tasksKey, tasks); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *impl) GetTask(ctx context.Context, id string) (model.Task, error) {
	tasks, err := r.loadTasks()
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, assistant.ErrTaskNotFound
}

func (r *impl) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := r.loadTasks()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if opt.Date != "" && t.Date != opt.Date {
			continue
		}
		if opt.NoDate && t.Date != "" {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

func (r *impl) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks()
	if err != nil {
		return model.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if opt.Title != "" {
			tasks[i].Title = opt.Title
		}
		if opt.Date != "" {
			tasks[i].Date = opt.Date
		}
		if opt.Time != "" {
			tasks[i].Time = opt.Time
		}
		if opt.Status != "" {
			tasks[i].Status = opt.Status
		}
		tasks[i].UpdatedAt = time.Now()

		if err := r.store.Set(tasksKey, tasks); err != nil {
			return model.Task{}, err
		}
		return tasks[i], nil
	}
	return model.Task{}, assistant.ErrTaskNotFound
}

func (r *impl) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks()
	if err != nil {
		return err
	}

	remaining := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(tasks) {
		return assistant.ErrTaskNotFound
	}
	return r.store.Set(tasksKey, remaining)
}
