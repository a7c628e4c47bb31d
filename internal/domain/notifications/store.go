package notifications

import (
	"sync"
	"time"
)

// Store is an in-memory notification feed.
type Store struct {
	mu    sync.RWMutex
	items []Notification
	keys  map[string]struct{}
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{keys: make(map[string]struct{}), now: time.Now}
}
