package kvstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/model"
)

func (r *impl) loadAlarms() ([]model.Alarm, error) {
	var alarms []model.Alarm
	if _, err := r.store.Get(alarmsKey, &alarms); err != nil {
		return nil, err
	}
	return alarms, nil
}

func (r *impl) CreateAlarm(ctx context.Context, opt repository.CreateAlarmOptions) (model.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.loadAlarms()
	if err != nil {
		return model.Alarm{}, err
	}

	recurrence := opt.Recurrence
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	now := time.Now()
	alarm := model.Alarm{
		ID:          uuid.NewString(),
		Description: opt.Description,
		Date:        opt.Date,
		Time:        opt.Time,
		Recurrence:  recurrence,
		Active:      opt.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	alarms = append(alarms, alarm)
	if err := r.store.Set(alarmsKey, alarms); err != nil {
		return model.Alarm{}, err
	}
	return alarm, nil
}

func (r *impl) GetAlarm(ctx context.Context, id string) (model.Alarm, error) {
	alarms, err := r.loadAlarms()
	if err != nil {
		return model.Alarm{}, err
	}
	for _, a := range alarms {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Alarm{}, assistant.ErrAlarmNotFound
}

func (r *impl) ListAlarms(ctx context.Context, opt repository.ListAlarmsOptions) ([]model.Alarm, error) {
	alarms, err := r.loadAlarms()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Alarm, 0, len(alarms))
	for _, a := range alarms {
		if opt.ActiveOnly && !a.Active {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func (r *impl) UpdateAlarm(ctx context.Context, id string, opt repository.UpdateAlarmOptions) (model.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.loadAlarms()
	if err != nil {
		return model.Alarm{}, err
	}

	for i := range alarms {
		if alarms[i].ID != id {
			continue
		}
		if opt.Description != "" {
			alarms[i].Description = opt.Description
		}
		if opt.Date != "" {
			alarms[i].Date = opt.Date
		}
		if opt.Time != "" {
			alarms[i].Time = opt.Time
		}
		if opt.Recurrence != "" {
			alarms[i].Recurrence = opt.Recurrence
		}
		if opt.Active != nil {
			alarms[i].Active = *opt.Active
		}
		alarms[i].UpdatedAt = time.Now()

		if err := r.store.Set(alarmsKey, alarms); err != nil {
			return model.Alarm{}, err
		}
		return alarms[i], nil
	}
	return model.Alarm{}, assistant.ErrAlarmNotFound
}

func (r *impl) DeleteAlarm(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.loadAlarms()
	if err != nil {
		return err
	}

	remaining := make([]model.Alarm, 0, len(alarms))
	for _, a := range alarms {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(alarms) {
		return assistant.ErrAlarmNotFound
	}
	return r.store.Set(alarmsKey, remaining)
}
