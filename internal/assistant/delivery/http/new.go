package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/repository"
	pkgLog "jarvis-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
	Confirm(c *gin.Context)
	ListTasks(c *gin.Context)
	CompleteTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	ListAlarms(c *gin.Context)
	SetAlarmActive(c *gin.Context)
	DeleteAlarm(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	uc        assistant.UseCase
	taskRepo  repository.TaskRepository
	alarmRepo repository.AlarmRepository
}

// New creates a new HTTP handler for the assistant domain. The repositories
// back the direct CRUD endpoints that the management UI uses alongside the
// conversational ones.
func New(l pkgLog.Logger, uc assistant.UseCase, taskRepo repository.TaskRepository, alarmRepo repository.AlarmRepository) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		taskRepo:  taskRepo,
		alarmRepo: alarmRepo,
	}
}
