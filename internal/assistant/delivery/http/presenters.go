package http

import (
	"time"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Text    string `json:"text"    binding:"required,min=1,max=1000"`
	TaskID  string `json:"task_id"`
	AlarmID string `json:"alarm_id"`
}

func (r messageReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{
		Text:    r.Text,
		TaskID:  r.TaskID,
		AlarmID: r.AlarmID,
	}
}

func (r messageReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// ---

type confirmReq struct {
	UserID    string `json:"user_id"   binding:"required"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
}

func (r confirmReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// ---

type listTasksReq struct {
	Date   string `form:"date"`
	NoDate bool   `form:"no_date"`
	Status string `form:"status" binding:"omitempty,oneof=pending completed"`
}

type listAlarmsReq struct {
	Active bool `form:"active"`
}

type setAlarmActiveReq struct {
	ID     string `json:"-"`
	Active *bool  `json:"active" binding:"required"`
}

// --- Response DTOs ---

type messageResp struct {
	Message              string           `json:"message"`
	Action               assistant.Action `json:"action,omitempty"`
	Data                 any              `json:"data,omitempty"`
	RequiresConfirmation bool             `json:"requires_confirmation"`
}

func newMessageResp(out assistant.Response) messageResp {
	return messageResp{
		Message:              out.Message,
		Action:               out.Action,
		Data:                 out.Data,
		RequiresConfirmation: out.RequiresConfirmation,
	}
}

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date,
		Time:      t.Time,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListTasksResp(tasks []model.Task) listTasksResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: items, Total: len(items)}
}

type alarmResp struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Recurrence  string    `json:"recurrence"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newAlarmResp(a model.Alarm) alarmResp {
	return alarmResp{
		ID:          a.ID,
		Description: a.Description,
		Date:        a.Date,
		Time:        a.Time,
		Recurrence:  string(a.Recurrence),
		Active:      a.Active,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type listAlarmsResp struct {
	Alarms []alarmResp `json:"alarms"`
	Total  int         `json:"total"`
}

func newListAlarmsResp(alarms []model.Alarm) listAlarmsResp {
	items := make([]alarmResp, len(alarms))
	for i, a := range alarms {
		items[i] = newAlarmResp(a)
	}
	return listAlarmsResp{Alarms: items, Total: len(items)}
}
