package usecase

import (
	"context"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
)

// ProcessUserInput parses one utterance, retains it as the session's pending
// command, and dispatches by intent. Underspecified commands come back as
// clarifying questions, never as errors; only storage faults use the error
// return.
func (uc *implUseCase) ProcessUserInput(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.Response, error) {
	cmd := uc.parser.Parse(input.Text)
	if input.TaskID != "" {
		cmd.Entities.TaskID = input.TaskID
	}
	if input.AlarmID != "" {
		cmd.Entities.AlarmID = input.AlarmID
	}
	uc.sessionFor(sc).store(cmd)

	uc.l.Infof(ctx, "assistant: user=%s intent=%s confidence=%.1f confirm=%t",
		sc.UserID, cmd.Intent, cmd.Confidence, cmd.RequiresConfirmation)

	switch cmd.Intent {
	case assistant.IntentCreateTask:
		return uc.handleCreateTask(ctx, cmd.Entities, cmd.RequiresConfirmation)
	case assistant.IntentCreateAlarm:
		return uc.handleCreateAlarm(ctx, cmd.Entities, cmd.RequiresConfirmation)
	case assistant.IntentListTasks:
		return uc.handleListTasks(ctx)
	case assistant.IntentListAlarms:
		return uc.handleListAlarms(ctx)
	case assistant.IntentDeleteTask:
		return uc.handleDeleteTask(ctx, cmd.Entities)
	case assistant.IntentDeleteAlarm:
		return uc.handleDeleteAlarm(ctx, cmd.Entities)
	case assistant.IntentCompleteTask:
		return uc.handleCompleteTask(ctx, cmd.Entities)
	case assistant.IntentEditTask:
		// Edits always clarify; free text cannot say which field to change.
		return assistant.Response{Message: MsgAskWhatEditTask}, nil
	case assistant.IntentEditAlarm:
		return assistant.Response{Message: MsgAskWhatEditAlarm}, nil
	default:
		return assistant.Response{Message: MsgUnknown}, nil
	}
}
