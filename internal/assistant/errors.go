package assistant

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrAlarmNotFound = errors.New("alarm not found")
)
