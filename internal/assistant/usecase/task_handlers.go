package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/model"
)

func (uc *implUseCase) handleCreateTask(ctx context.Context, e assistant.Entities, requiresConfirmation bool) (assistant.Response, error) {
	if e.Title == "" {
		return assistant.Response{Message: MsgAskTaskTitle, RequiresConfirmation: true}, nil
	}
	if e.Date == "" {
		return assistant.Response{
			Message:              fmt.Sprintf(MsgAskTaskDateFmt, e.Title),
			RequiresConfirmation: true,
		}, nil
	}

	if requiresConfirmation {
		timeStr := MsgNoSpecificTime
		if e.Time != "" {
			timeStr = uc.formatter.FormatTime(e.Time)
		}
		return assistant.Response{
			Message:              fmt.Sprintf(MsgConfirmTaskFmt, e.Title, uc.formatter.FormatDate(e.Date), timeStr),
			RequiresConfirmation: true,
		}, nil
	}

	return uc.createTask(ctx, e)
}

// createTask persists a task. It re-validates the entities so a confirmation
// replay of an underspecified command reports insufficient information
// instead of writing garbage.
func (uc *implUseCase) createTask(ctx context.Context, e assistant.Entities) (assistant.Response, error) {
	if e.Title == "" || e.Date == "" {
		return assistant.Response{Message: MsgTaskInsufficient}, nil
	}

	task, err := uc.taskRepo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:  e.Title,
		Date:   e.Date,
		Time:   e.Time,
		Status: model.TaskStatusPending,
	})
	if err != nil {
		return assistant.Response{}, err
	}

	uc.scheduleCalendarEvent(ctx, task.Title, task.Date, task.Time)

	timeSuffix := ""
	if task.Time != "" {
		timeSuffix = " às " + uc.formatter.FormatTime(task.Time)
	}
	return assistant.Response{
		Message: fmt.Sprintf(MsgTaskCreatedFmt, task.Title, uc.formatter.FormatDate(task.Date), timeSuffix),
		Action:  assistant.ActionCreate,
		Data:    task,
	}, nil
}

func (uc *implUseCase) handleListTasks(ctx context.Context) (assistant.Response, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		return assistant.Response{}, err
	}
	if len(tasks) == 0 {
		return assistant.Response{Message: MsgNoTasks}, nil
	}

	today := uc.formatter.TodayISO()
	weekEnd := uc.dates.OffsetISO(time.Now(), 7)

	var todayTasks, weekTasks, noDateTasks []model.Task
	for _, t := range tasks {
		if t.Status != model.TaskStatusPending {
			continue
		}
		switch {
		case t.Date == today:
			todayTasks = append(todayTasks, t)
		case t.Date != "" && t.Date > today && t.Date <= weekEnd:
			weekTasks = append(weekTasks, t)
		case t.Date == "":
			noDateTasks = append(noDateTasks, t)
		}
	}

	var sb strings.Builder
	sb.WriteString(MsgTasksHeader)

	if len(todayTasks) > 0 {
		sb.WriteString(MsgTodayHeader)
		for _, t := range todayTasks {
			sb.WriteString("  • " + t.Title)
			if t.Time != "" {
				sb.WriteString(" às " + uc.formatter.FormatTime(t.Time))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(weekTasks) > 0 {
		sb.WriteString(MsgWeekHeader)
		for _, t := range weekTasks {
			sb.WriteString(fmt.Sprintf("  • %s (%s)", t.Title, uc.formatter.FormatDate(t.Date)))
			if t.Time != "" {
				sb.WriteString(" às " + uc.formatter.FormatTime(t.Time))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(noDateTasks) > 0 {
		sb.WriteString(MsgNoDateHeader)
		for _, t := range noDateTasks {
			sb.WriteString("  • " + t.Title + "\n")
		}
	}

	return assistant.Response{
		Message: sb.String(),
		Action:  assistant.ActionList,
		Data:    tasks,
	}, nil
}

func (uc *implUseCase) handleDeleteTask(ctx context.Context, e assistant.Entities) (assistant.Response, error) {
	if e.TaskID == "" {
		return assistant.Response{Message: MsgAskWhichTaskDelete, RequiresConfirmation: true}, nil
	}

	if err := uc.taskRepo.DeleteTask(ctx, e.TaskID); err != nil {
		if errors.Is(err, assistant.ErrTaskNotFound) {
			return assistant.Response{Message: MsgTaskNotFound}, nil
		}
		return assistant.Response{}, err
	}
	return assistant.Response{Message: MsgTaskDeleted}, nil
}

func (uc *implUseCase) handleCompleteTask(ctx context.Context, e assistant.Entities) (assistant.Response, error) {
	if e.TaskID == "" {
		return assistant.Response{Message: MsgAskWhichTaskComplete}, nil
	}

	task, err := uc.taskRepo.UpdateTask(ctx, e.TaskID, repository.UpdateTaskOptions{
		Status: model.TaskStatusCompleted,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrTaskNotFound) {
			return assistant.Response{Message: MsgTaskNotFound}, nil
		}
		return assistant.Response{}, err
	}
	return assistant.Response{Message: fmt.Sprintf(MsgTaskCompletedFmt, task.Title)}, nil
}
