package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"onboardhub/internal/domain/onboarding"
)

var ErrNotFound = errors.New("not found")

type Notification struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Employee  string     `json:"employee"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Urgency   string     `json:"urgency,omitempty"`
	DedupKey  string     `json:"-"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Filter struct {
	Employee   string
	UnreadOnly bool
}

func (f Filter) match(n Notification) bool {
	if f.Employee != "" && n.Employee != f.Employee {
		return false
	}
	if f.UnreadOnly && n.ReadAt != nil {
		return false
	}
	return true
}

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func New(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Create(ctx context.Context, employee, ntype, title, body string) error {
	_, err := s.store.CreateNotification(ctx, Notification{
		Type:     ntype,
		Employee: employee,
		Title:    title,
		Body:     body,
	})
	return err
}

// Dispatch records each reminder at most once per employee, module, urgency
// and day, and reports how many were new to the feed.
func (s *Service) Dispatch(ctx context.Context, reminders []onboarding.Reminder) (int, error) {
	added := 0
	for _, r := range reminders {
		ok, err := s.notify(ctx, r)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

func (s *Service) notify(ctx context.Context, r onboarding.Reminder) (bool, error) {
	return s.store.CreateNotification(ctx, Notification{
		Type:     TypeComplianceReminder,
		Employee: r.Employee,
		Title:    fmt.Sprintf("%s training reminder", r.Urgency),
		Body:     r.Message(),
		Urgency:  string(r.Urgency),
		DedupKey: reminderKey(r, s.now()),
	})
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Notification, error) {
	return s.store.ListNotifications(ctx, filter, limit, offset)
}

func (s *Service) Count(ctx context.Context, filter Filter) (int, error) {
	return s.store.CountNotifications(ctx, filter)
}

func (s *Service) UnreadCount(ctx context.Context, employee string) (int, error) {
	return s.store.CountNotifications(ctx, Filter{Employee: employee, UnreadOnly: true})
}

func (s *Service) MarkRead(ctx context.Context, notificationID string) (Notification, error) {
	return s.store.MarkRead(ctx, notificationID)
}

func reminderKey(r onboarding.Reminder, now time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s", r.Employee, r.Module, r.Urgency, now.Format("2006-01-02"))
}
