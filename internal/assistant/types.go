package assistant

import "jarvis-assistant/internal/model"

// Intent is the classified user goal.
type Intent string

const (
	IntentCreateTask   Intent = "create_task"
	IntentCreateAlarm  Intent = "create_alarm"
	IntentListTasks    Intent = "list_tasks"
	IntentListAlarms   Intent = "list_alarms"
	IntentDeleteTask   Intent = "delete_task"
	IntentDeleteAlarm  Intent = "delete_alarm"
	IntentCompleteTask Intent = "complete_task"
	IntentEditTask     Intent = "edit_task"
	IntentEditAlarm    Intent = "edit_alarm"
	IntentUnknown      Intent = "unknown"
)

// Entities are the structured values extracted from an utterance.
// TaskID and AlarmID are never produced by the parser; they arrive only from
// callers that already resolved a reference to an existing record.
type Entities struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD, empty when no date phrase matched
	Time        string // HH:MM, empty when no time phrase matched
	Recurrence  model.Recurrence
	TaskID      string
	AlarmID     string
}

// ParsedCommand is the structured result of parsing one utterance.
type ParsedCommand struct {
	Intent               Intent
	Entities             Entities
	Confidence           float64 // 0 when no keyword matched, else 0.8
	RequiresConfirmation bool
}

// Action tags the payload carried by a Response.
type Action string

const (
	ActionCreate  Action = "create"
	ActionDelete  Action = "delete"
	ActionUpdate  Action = "update"
	ActionList    Action = "list"
	ActionConfirm Action = "confirm"
)

// Response is what the assistant says back to the user after a turn.
type Response struct {
	Message              string `json:"message"`
	Action               Action `json:"action,omitempty"`
	Data                 any    `json:"data,omitempty"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
}

// ProcessInput is the input for one conversational turn. TaskID and AlarmID
// are optional references supplied by callers that already disambiguated
// which record the utterance refers to; the parser never resolves free text
// to identifiers on its own.
type ProcessInput struct {
	Text    string
	TaskID  string
	AlarmID string
}
