package usecase

import (
	"context"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
)

// ConfirmLastCommand resolves the session's pending command. The slot is
// consumed either way: after a confirm or a cancel the next utterance starts
// fresh.
func (uc *implUseCase) ConfirmLastCommand(ctx context.Context, sc model.Scope, confirmed bool) (assistant.Response, error) {
	cmd := uc.sessionFor(sc).take()
	if cmd == nil {
		return assistant.Response{Message: MsgNothingPending}, nil
	}

	if !confirmed {
		return assistant.Response{Message: MsgCancelled}, nil
	}

	switch cmd.Intent {
	case assistant.IntentCreateTask:
		return uc.createTask(ctx, cmd.Entities)
	case assistant.IntentCreateAlarm:
		return uc.createAlarm(ctx, cmd.Entities)
	}

	// Only create flows use the confirm gate.
	return assistant.Response{Message: MsgConfirmed}, nil
}
