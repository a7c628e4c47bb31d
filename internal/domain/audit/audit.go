package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID         string          `json:"id"`
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId,omitempty"`
	IP         string          `json:"ip,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
}

type Filter struct {
	Action     string
	EntityType string
	Actor      string
}

func (f Filter) match(evt Event) bool {
	if f.Action != "" && evt.Action != f.Action {
		return false
	}
	if f.EntityType != "" && evt.EntityType != f.EntityType {
		return false
	}
	if f.Actor != "" && evt.Actor != f.Actor {
		return false
	}
	return true
}

// Service is an append-only in-memory audit log.
type Service struct {
	mu     sync.RWMutex
	events []Event
	now    func() time.Time
}

func New() *Service {
	return &Service{now: time.Now}
}

func (s *Service) Record(ctx context.Context, actor, action, entityType, entityID, requestID, ip string, before, after any) error {
	var beforeJSON, afterJSON []byte
	if before != nil {
		payload, err := json.Marshal(before)
		if err != nil {
			return err
		}
		beforeJSON = payload
	}
	if after != nil {
		payload, err := json.Marshal(after)
		if err != nil {
			return err
		}
		afterJSON = payload
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestID,
		IP:         ip,
		CreatedAt:  s.now(),
		Before:     beforeJSON,
		After:      afterJSON,
	})
	return nil
}

func (s *Service) Count(ctx context.Context, filter Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, evt := range s.events {
		if filter.match(evt) {
			total++
		}
	}
	return total, nil
}

// List returns matching events newest first. Before/after payloads are only
// included when includeDetails is set.
func (s *Service) List(ctx context.Context, filter Filter, includeDetails bool, limit, offset int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Event{}
	skipped := 0
	for i := len(s.events) - 1; i >= 0; i-- {
		evt := s.events[i]
		if !filter.match(evt) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		if !includeDetails {
			evt.Before, evt.After = nil, nil
		}
		out = append(out, evt)
	}
	return out, nil
}
