package onboarding

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// DaysUntil returns whole days from now to due, floored, so a deadline
// twelve hours ago is -1.
func DaysUntil(due, now time.Time) int {
	return int(math.Floor(due.Sub(now).Hours() / 24))
}

func classifyUrgency(days int) (Urgency, bool) {
	switch {
	case days < 0:
		return UrgencyUrgent, true
	case days <= ReminderWarningDays:
		return UrgencyWarning, true
	case days <= ReminderWindowDays:
		return UrgencyInformational, true
	}
	return "", false
}

// ComplianceReminders derives reminders for unfinished modules due within the
// reminder window, soonest first.
func ComplianceReminders(e Employee, now time.Time) []Reminder {
	out := []Reminder{}
	for _, item := range e.Compliance {
		if item.Status == ComplianceCompleted {
			continue
		}
		days := DaysUntil(item.DueDate, now)
		urgency, ok := classifyUrgency(days)
		if !ok {
			continue
		}
		out = append(out, Reminder{
			Employee:     e.Name,
			Module:       item.Name,
			Urgency:      urgency,
			DaysUntilDue: days,
			DueDate:      item.DueDate,
			Priority:     item.Priority,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysUntilDue != out[j].DaysUntilDue {
			return out[i].DaysUntilDue < out[j].DaysUntilDue
		}
		return out[i].Module < out[j].Module
	})
	return out
}

func (r Reminder) Message() string {
	switch {
	case r.DaysUntilDue < 0:
		return fmt.Sprintf("%s is overdue by %d day(s)", r.Module, -r.DaysUntilDue)
	case r.DaysUntilDue == 0:
		return fmt.Sprintf("%s is due today", r.Module)
	}
	return fmt.Sprintf("%s is due in %d day(s)", r.Module, r.DaysUntilDue)
}
