package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/assistant/nlu"
	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/gcalendar"
	pkgLog "jarvis-assistant/pkg/log"
)

// CalendarClient is the optional calendar collaborator. A nil client
// disables event scheduling entirely.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config holds the optional knobs for the assistant usecase.
type Config struct {
	Timezone   string
	CalendarID string
	SessionTTL time.Duration
}

const (
	sessionCacheSize  = 1024
	defaultSessionTTL = 30 * time.Minute
)

type implUseCase struct {
	l         pkgLog.Logger
	parser    *nlu.Parser
	formatter *nlu.Formatter
	dates     *datemath.Resolver
	taskRepo  repository.TaskRepository
	alarmRepo repository.AlarmRepository
	calendar  CalendarClient

	timezone   string
	calendarID string
	sessions   *expirable.LRU[string, *session]
	sessionsMu sync.Mutex
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant usecase. calendar may be nil.
func New(
	l pkgLog.Logger,
	dates *datemath.Resolver,
	taskRepo repository.TaskRepository,
	alarmRepo repository.AlarmRepository,
	calendar CalendarClient,
	cfg Config,
) *implUseCase {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &implUseCase{
		l:          l,
		parser:     nlu.NewParser(dates),
		formatter:  nlu.NewFormatter(dates),
		dates:      dates,
		taskRepo:   taskRepo,
		alarmRepo:  alarmRepo,
		calendar:   calendar,
		timezone:   cfg.Timezone,
		calendarID: cfg.CalendarID,
		sessions:   expirable.NewLRU[string, *session](sessionCacheSize, nil, ttl),
	}
}
