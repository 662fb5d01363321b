package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	"jarvis-assistant/internal/model"
	pkgTelegram "jarvis-assistant/pkg/telegram"
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
	processCalls chan assistant.ProcessInput
	confirmCalls chan bool
	scopes       chan model.Scope
	resp         assistant.Response
}

func newMockUseCase(message string) *mockUseCase {
	return &mockUseCase{
		processCalls: make(chan assistant.ProcessInput, 8),
		confirmCalls: make(chan bool, 8),
		scopes:       make(chan model.Scope, 8),
		resp:         assistant.Response{Message: message},
	}
}

func (m *mockUseCase) ProcessUserInput(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.Response, error) {
	m.scopes <- sc
	m.processCalls <- input
	return m.resp, nil
}

func (m *mockUseCase) ConfirmLastCommand(ctx context.Context, sc model.Scope, confirmed bool) (assistant.Response, error) {
	m.scopes <- sc
	m.confirmCalls <- confirmed
	return m.resp, nil
}

// botServer fakes the Telegram Bot API and funnels sendMessage payloads
// into a channel.
func botServer(t *testing.T) (*pkgTelegram.Bot, chan pkgTelegram.SendMessageRequest) {
	t.Helper()
	sent := make(chan pkgTelegram.SendMessageRequest, 8)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sendMessage" {
			var req pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			sent <- req
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(ts.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, sent
}

func postUpdate(t *testing.T, router *gin.Engine, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func newRouter(h tgDelivery.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhook/telegram", h.HandleWebhook)
	return router
}

func textUpdate(text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 10,
			From:      &pkgTelegram.User{ID: 42, Username: "ana"},
			Chat:      &pkgTelegram.Chat{ID: 42, Type: "private"},
			Text:      text,
		},
	}
}

func waitSent(t *testing.T, sent chan pkgTelegram.SendMessageRequest) pkgTelegram.SendMessageRequest {
	t.Helper()
	select {
	case msg := <-sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sendMessage")
		return pkgTelegram.SendMessageRequest{}
	}
}

func TestHandleWebhookRegularTurn(t *testing.T) {
	bot, sent := botServer(t)
	uc := newMockUseCase("✅ Tarefa \"estudar\" criada com sucesso para amanhã.")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	w := postUpdate(t, router, textUpdate("criar tarefa estudar amanhã"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	msg := waitSent(t, sent)
	if msg.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", msg.ChatID)
	}
	if msg.Text != uc.resp.Message {
		t.Errorf("Text = %q, want the usecase reply", msg.Text)
	}

	input := <-uc.processCalls
	if input.Text != "criar tarefa estudar amanhã" {
		t.Errorf("input.Text = %q", input.Text)
	}
	sc := <-uc.scopes
	if sc.UserID != "telegram_42" {
		t.Errorf("UserID = %q, want telegram_42", sc.UserID)
	}
	if sc.Username != "ana" {
		t.Errorf("Username = %q, want ana", sc.Username)
	}
}

func TestHandleWebhookConfirmationBypassesParser(t *testing.T) {
	bot, sent := botServer(t)
	uc := newMockUseCase("✅ Tarefa criada.")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	w := postUpdate(t, router, textUpdate("sim"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	waitSent(t, sent)

	select {
	case confirmed := <-uc.confirmCalls:
		if !confirmed {
			t.Error("expected confirmed=true for \"sim\"")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ConfirmLastCommand was not called")
	}

	select {
	case input := <-uc.processCalls:
		t.Errorf("ProcessUserInput must not run for a confirmation reply, got %+v", input)
	default:
	}
}

func TestHandleWebhookCancellation(t *testing.T) {
	bot, sent := botServer(t)
	uc := newMockUseCase("Operação cancelada.")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	postUpdate(t, router, textUpdate("não"))
	waitSent(t, sent)

	select {
	case confirmed := <-uc.confirmCalls:
		if confirmed {
			t.Error("expected confirmed=false for \"não\"")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ConfirmLastCommand was not called")
	}
}

func TestHandleWebhookStartCommand(t *testing.T) {
	bot, sent := botServer(t)
	uc := newMockUseCase("unused")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	postUpdate(t, router, textUpdate("/start"))

	msg := waitSent(t, sent)
	if msg.ParseMode != "Markdown" {
		t.Errorf("ParseMode = %q, want Markdown", msg.ParseMode)
	}

	select {
	case input := <-uc.processCalls:
		t.Errorf("built-in commands must not reach the usecase, got %+v", input)
	default:
	}
}

func TestHandleWebhookIgnoresNonMessageUpdates(t *testing.T) {
	bot, sent := botServer(t)
	uc := newMockUseCase("unused")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	w := postUpdate(t, router, pkgTelegram.Update{UpdateID: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	select {
	case msg := <-sent:
		t.Errorf("no message should be sent, got %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandleWebhookRejectsMalformedBody(t *testing.T) {
	bot, _ := botServer(t)
	uc := newMockUseCase("unused")
	h := tgDelivery.New(&mockLogger{}, uc, bot)
	router := newRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
