package telegram

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	pkgLog "jarvis-assistant/pkg/log"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
