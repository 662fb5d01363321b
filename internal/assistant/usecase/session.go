package usecase

import (
	"sync"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
)

// session is the per-user conversation state: a single slot holding the most
// recent parsed command. It is overwritten on every non-confirmation
// utterance and consumed when a confirmation reply arrives. There is no
// queue and no history.
type session struct {
	mu   sync.Mutex
	last *assistant.ParsedCommand
}

func (uc *implUseCase) sessionFor(sc model.Scope) *session {
	uc.sessionsMu.Lock()
	defer uc.sessionsMu.Unlock()

	if s, ok := uc.sessions.Get(sc.UserID); ok {
		return s
	}
	s := &session{}
	uc.sessions.Add(sc.UserID, s)
	return s
}

func (s *session) store(cmd assistant.ParsedCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &cmd
}

// take returns the pending command and clears the slot.
func (s *session) take() *assistant.ParsedCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd := s.last
	s.last = nil
	return cmd
}
