package kvstore

import (
	"sync"

	pkgKV "jarvis-assistant/pkg/kvstore"
	pkgLog "jarvis-assistant/pkg/log"
)

// Collection keys inside the key-value store.
const (
	tasksKey  = "jarvis_tasks"
	alarmsKey = "jarvis_alarms"
)

type impl struct {
	store *pkgKV.Store
	l     pkgLog.Logger

	// Collections are whole-list read-modify-write; the mutex keeps
	// concurrent mutations from losing records.
	mu sync.Mutex
}

// New creates the key-value-store-backed repository for tasks and alarms.
func New(store *pkgKV.Store, l pkgLog.Logger) *impl {
	return &impl{store: store, l: l}
}
