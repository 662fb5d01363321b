package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
	pkgLog "jarvis-assistant/pkg/log"
	pkgResponse "jarvis-assistant/pkg/response"
	pkgTelegram "jarvis-assistant/pkg/telegram"
)

const (
	msgWelcome = "👋 Olá! Eu sou o Jarvis, seu assistente pessoal.\n\nVocê pode me pedir em linguagem natural para:\n• 📝 Criar e listar tarefas\n• ⏰ Criar e listar alarmes\n\n_Exemplo: \"criar tarefa: estudar Excel amanhã\"_"
	msgHelp    = "*Como usar:*\n\nEscreva o que você quer, por exemplo:\n`criar alarme para pagar o cartão amanhã às 10 da manhã`\n`listar tarefas`\n\nQuando eu pedir confirmação, responda *sim* ou *não*."
	msgApology = "Desculpe, ocorreu um erro ao processar seu pedido. Tente novamente."
)

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow storage round-trips never trip the Telegram
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, msgApology)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: built-in commands first,
// then yes/no confirmation replies (which bypass the parser), then a regular
// conversational turn.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")
	}

	sc := scopeFor(msg)

	var (
		resp assistant.Response
		err  error
	)
	if confirmed, ok := ParseConfirmation(msg.Text); ok {
		resp, err = h.uc.ConfirmLastCommand(ctx, sc, confirmed)
	} else {
		resp, err = h.uc.ProcessUserInput(ctx, sc, assistant.ProcessInput{Text: msg.Text})
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: turn failed for %s: %v", sc.UserID, err)
		return h.bot.SendMessage(msg.Chat.ID, msgApology)
	}

	return h.bot.SendMessage(msg.Chat.ID, resp.Message)
}

func scopeFor(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}
