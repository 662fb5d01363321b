package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Assistant domain
	assistantUC     assistant.UseCase
	taskRepo        repository.TaskRepository
	alarmRepo       repository.AlarmRepository
	rateLimitPerMin int

	// Telegram webhook
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Assistant domain
	AssistantUC     assistant.UseCase
	TaskRepo        repository.TaskRepository
	AlarmRepo       repository.AlarmRepository
	RateLimitPerMin int

	// Telegram webhook (optional; nil when no bot token is configured)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		assistantUC:     cfg.AssistantUC,
		taskRepo:        cfg.TaskRepo,
		alarmRepo:       cfg.AlarmRepo,
		rateLimitPerMin: cfg.RateLimitPerMin,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	if srv.taskRepo == nil || srv.alarmRepo == nil {
		return errors.New("task and alarm repositories are required")
	}
	return nil
}
