package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"jarvis-assistant/config"
	_ "jarvis-assistant/docs" // Swagger docs
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	repoKV "jarvis-assistant/internal/assistant/repository/kvstore"
	"jarvis-assistant/internal/assistant/usecase"
	"jarvis-assistant/internal/httpserver"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/gcalendar"
	"jarvis-assistant/pkg/kvstore"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telegram"
)

// @title       Jarvis Personal Assistant API
// @description Portuguese natural-language personal assistant for tasks and alarms, with Telegram and Google Calendar integrations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jarvis Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage path: %s", cfg.Storage.Path)

	// 3. Storage
	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			logger.Error(ctx, "Failed to create storage directory: ", mkErr)
			return
		}
	}
	store, err := kvstore.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	repo := repoKV.New(store, logger)

	// 4. Date resolution
	timezone := cfg.Assistant.Timezone
	dates, err := datemath.NewResolver(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dates, _ = datemath.NewResolver("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gc
		}
	}

	// 6. Assistant UseCase
	assistantUC := usecase.New(logger, dates, repo, repo, calendarClient, usecase.Config{
		Timezone:   timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		SessionTTL: time.Duration(cfg.Assistant.SessionTTLMinutes) * time.Minute,
	})

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		TaskRepo:        repo,
		AlarmRepo:       repo,
		RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
