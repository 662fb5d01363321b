package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/model"
)

func (uc *implUseCase) handleCreateAlarm(ctx context.Context, e assistant.Entities, requiresConfirmation bool) (assistant.Response, error) {
	if e.Description == "" {
		return assistant.Response{Message: MsgAskAlarmDescription, RequiresConfirmation: true}, nil
	}
	if e.Date == "" || e.Time == "" {
		return assistant.Response{Message: MsgAskAlarmWhen, RequiresConfirmation: true}, nil
	}

	if requiresConfirmation {
		return assistant.Response{
			Message: fmt.Sprintf(MsgConfirmAlarmFmt, e.Description,
				uc.formatter.FormatDate(e.Date), uc.formatter.FormatTime(e.Time)),
			RequiresConfirmation: true,
		}, nil
	}

	return uc.createAlarm(ctx, e)
}

// createAlarm persists an alarm. Date and time are mandatory: an alarm
// without a trigger instant is meaningless.
func (uc *implUseCase) createAlarm(ctx context.Context, e assistant.Entities) (assistant.Response, error) {
	if e.Description == "" || e.Date == "" || e.Time == "" {
		return assistant.Response{Message: MsgAlarmInsufficient}, nil
	}

	recurrence := e.Recurrence
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	alarm, err := uc.alarmRepo.CreateAlarm(ctx, repository.CreateAlarmOptions{
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Recurrence:  recurrence,
		Active:      true,
	})
	if err != nil {
		return assistant.Response{}, err
	}

	uc.scheduleCalendarEvent(ctx, alarm.Description, alarm.Date, alarm.Time)

	return assistant.Response{
		Message: fmt.Sprintf(MsgAlarmCreatedFmt, alarm.Description,
			uc.formatter.FormatDate(alarm.Date), uc.formatter.FormatTime(alarm.Time)),
		Action: assistant.ActionCreate,
		Data:   alarm,
	}, nil
}

func (uc *implUseCase) handleListAlarms(ctx context.Context) (assistant.Response, error) {
	alarms, err := uc.alarmRepo.ListAlarms(ctx, repository.ListAlarmsOptions{})
	if err != nil {
		return assistant.Response{}, err
	}
	if len(alarms) == 0 {
		return assistant.Response{Message: MsgNoAlarms}, nil
	}

	var active []model.Alarm
	for _, a := range alarms {
		if a.Active {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		return assistant.Response{Message: MsgNoActiveAlarms}, nil
	}

	var sb strings.Builder
	sb.WriteString(MsgAlarmsHeader)
	for _, a := range active {
		suffix := ""
		switch a.Recurrence {
		case model.RecurrenceDaily:
			suffix = SuffixDaily
		case model.RecurrenceWeekly:
			suffix = SuffixWeekly
		}
		sb.WriteString(fmt.Sprintf("  • %s - %s às %s%s\n",
			a.Description, uc.formatter.FormatDate(a.Date), uc.formatter.FormatTime(a.Time), suffix))
	}

	return assistant.Response{
		Message: sb.String(),
		Action:  assistant.ActionList,
		Data:    alarms,
	}, nil
}

func (uc *implUseCase) handleDeleteAlarm(ctx context.Context, e assistant.Entities) (assistant.Response, error) {
	if e.AlarmID == "" {
		return assistant.Response{Message: MsgAskWhichAlarmDelete, RequiresConfirmation: true}, nil
	}

	if err := uc.alarmRepo.DeleteAlarm(ctx, e.AlarmID); err != nil {
		if errors.Is(err, assistant.ErrAlarmNotFound) {
			return assistant.Response{Message: MsgAlarmNotFound}, nil
		}
		return assistant.Response{}, err
	}
	return assistant.Response{Message: MsgAlarmDeleted}, nil
}
