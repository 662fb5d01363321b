package assistant

import (
	"context"

	"jarvis-assistant/internal/model"
)

// UseCase defines the conversational business logic of the assistant.
type UseCase interface {
	// ProcessUserInput parses one utterance and dispatches it, retaining the
	// parsed command as the session's pending command.
	ProcessUserInput(ctx context.Context, sc model.Scope, input ProcessInput) (Response, error)

	// ConfirmLastCommand resolves the session's pending command. Only create
	// flows use the confirm/cancel gate; other intents get a generic ack.
	ConfirmLastCommand(ctx context.Context, sc model.Scope, confirmed bool) (Response, error)
}
