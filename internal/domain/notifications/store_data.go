package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateNotification appends n unless another notification with the same
// dedup key exists. It reports whether n was stored.
func (s *Store) CreateNotification(ctx context.Context, n Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.DedupKey != "" {
		if _, ok := s.keys[n.DedupKey]; ok {
			return false, nil
		}
		s.keys[n.DedupKey] = struct{}{}
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	s.items = append(s.items, n)
	return true, nil
}

func (s *Store) ListNotifications(ctx context.Context, filter Filter, limit, offset int) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Notification{}
	skipped := 0
	for i := len(s.items) - 1; i >= 0; i-- {
		n := s.items[i]
		if !filter.match(n) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Store) CountNotifications(ctx context.Context, filter Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, n := range s.items {
		if filter.match(n) {
			total++
		}
	}
	return total, nil
}

func (s *Store) MarkRead(ctx context.Context, notificationID string) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != notificationID {
			continue
		}
		if s.items[i].ReadAt == nil {
			readAt := s.now()
			s.items[i].ReadAt = &readAt
		}
		return s.items[i], nil
	}
	return Notification{}, fmt.Errorf("notification %q: %w", notificationID, ErrNotFound)
}
