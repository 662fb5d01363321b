package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	lastScope model.Scope
	lastInput assistant.ProcessInput
	confirmed *bool
	resp      assistant.Response
}

func (m *mockUseCase) ProcessUserInput(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.Response, error) {
	m.lastScope = sc
	m.lastInput = input
	return m.resp, nil
}

func (m *mockUseCase) ConfirmLastCommand(ctx context.Context, sc model.Scope, confirmed bool) (assistant.Response, error) {
	m.lastScope = sc
	m.confirmed = &confirmed
	return m.resp, nil
}

type mockTaskRepo struct {
	tasks []model.Task
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, assistant.ErrTaskNotFound
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return m.tasks, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			if opt.Status != "" {
				m.tasks[i].Status = opt.Status
			}
			return m.tasks[i], nil
		}
	}
	return model.Task{}, assistant.ErrTaskNotFound
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return assistant.ErrTaskNotFound
}

type mockAlarmRepo struct {
	alarms []model.Alarm
}

func (m *mockAlarmRepo) CreateAlarm(ctx context.Context, opt repository.CreateAlarmOptions) (model.Alarm, error) {
	return model.Alarm{}, nil
}

func (m *mockAlarmRepo) GetAlarm(ctx context.Context, id string) (model.Alarm, error) {
	return model.Alarm{}, assistant.ErrAlarmNotFound
}

func (m *mockAlarmRepo) ListAlarms(ctx context.Context, opt repository.ListAlarmsOptions) ([]model.Alarm, error) {
	if opt.ActiveOnly {
		var active []model.Alarm
		for _, a := range m.alarms {
			if a.Active {
				active = append(active, a)
			}
		}
		return active, nil
	}
	return m.alarms, nil
}

func (m *mockAlarmRepo) UpdateAlarm(ctx context.Context, id string, opt repository.UpdateAlarmOptions) (model.Alarm, error) {
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			if opt.Active != nil {
				m.alarms[i].Active = *opt.Active
			}
			return m.alarms[i], nil
		}
	}
	return model.Alarm{}, assistant.ErrAlarmNotFound
}

func (m *mockAlarmRepo) DeleteAlarm(ctx context.Context, id string) error {
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			m.alarms = append(m.alarms[:i], m.alarms[i+1:]...)
			return nil
		}
	}
	return assistant.ErrAlarmNotFound
}

type fixture struct {
	router *gin.Engine
	uc     *mockUseCase
	tasks  *mockTaskRepo
	alarms *mockAlarmRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := &mockUseCase{resp: assistant.Response{Message: "ok"}}
	tasks := &mockTaskRepo{}
	alarms := &mockAlarmRepo{}

	h := assistantHTTP.New(&mockLogger{}, uc, tasks, alarms)
	mw := middleware.New(&mockLogger{}, 600)

	router := gin.New()
	assistantHTTP.RegisterRoutes(router.Group("/api/v1"), h, mw)
	return &fixture{router: router, uc: uc, tasks: tasks, alarms: alarms}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestMessageEndpoint(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/v1/assistant/messages", map[string]any{
		"user_id": "web_1",
		"text":    "criar tarefa estudar amanhã",
		"task_id": "task-9",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if f.uc.lastScope.UserID != "web_1" {
		t.Errorf("UserID = %q, want web_1", f.uc.lastScope.UserID)
	}
	if f.uc.lastInput.Text != "criar tarefa estudar amanhã" {
		t.Errorf("Text = %q", f.uc.lastInput.Text)
	}
	if f.uc.lastInput.TaskID != "task-9" {
		t.Errorf("TaskID = %q, want task-9", f.uc.lastInput.TaskID)
	}
	if !strings.Contains(w.Body.String(), `"message":"ok"`) {
		t.Errorf("body = %s, want the usecase reply", w.Body.String())
	}
}

func TestMessageEndpointValidation(t *testing.T) {
	f := newFixture(t)

	// Missing user_id.
	w := doJSON(t, f.router, http.MethodPost, "/api/v1/assistant/messages", map[string]any{
		"text": "criar tarefa",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	// Missing text.
	w = doJSON(t, f.router, http.MethodPost, "/api/v1/assistant/messages", map[string]any{
		"user_id": "web_1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestConfirmEndpoint(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/v1/assistant/confirm", map[string]any{
		"user_id":   "web_1",
		"confirmed": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if f.uc.confirmed == nil || *f.uc.confirmed {
		t.Error("expected ConfirmLastCommand(false)")
	}

	// confirmed is required, not defaulted.
	w = doJSON(t, f.router, http.MethodPost, "/api/v1/assistant/confirm", map[string]any{
		"user_id": "web_1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListTasksEndpoint(t *testing.T) {
	f := newFixture(t)
	f.tasks.tasks = []model.Task{
		{ID: "1", Title: "estudar", Status: model.TaskStatusPending},
	}

	w := doJSON(t, f.router, http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"total":1`) {
		t.Errorf("body = %s, want total 1", w.Body.String())
	}
}

func TestCompleteTaskEndpoint(t *testing.T) {
	f := newFixture(t)
	f.tasks.tasks = []model.Task{
		{ID: "task-1", Title: "estudar", Status: model.TaskStatusPending},
	}

	w := doJSON(t, f.router, http.MethodPost, "/api/v1/tasks/task-1/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if f.tasks.tasks[0].Status != model.TaskStatusCompleted {
		t.Errorf("Status = %s, want completed", f.tasks.tasks[0].Status)
	}
}

func TestDeleteTaskEndpointNotFound(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodDelete, "/api/v1/tasks/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSetAlarmActiveEndpoint(t *testing.T) {
	f := newFixture(t)
	f.alarms.alarms = []model.Alarm{
		{ID: "alarm-1", Description: "acordar", Active: true},
	}

	w := doJSON(t, f.router, http.MethodPut, "/api/v1/alarms/alarm-1/active", map[string]any{
		"active": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if f.alarms.alarms[0].Active {
		t.Error("expected alarm to be deactivated")
	}
}

func TestListAlarmsEndpointActiveFilter(t *testing.T) {
	f := newFixture(t)
	f.alarms.alarms = []model.Alarm{
		{ID: "1", Description: "ativo", Active: true},
		{ID: "2", Description: "desligado", Active: false},
	}

	w := doJSON(t, f.router, http.MethodGet, "/api/v1/alarms?active=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "ativo") || strings.Contains(body, "desligado") {
		t.Errorf("body = %s, want only the active alarm", body)
	}
}
