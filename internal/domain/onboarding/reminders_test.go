package onboarding

import (
	"testing"
	"time"
)

func TestComplianceRemindersClassification(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	day := 24 * time.Hour
	emp := Employee{
		Name: "Alice",
		Compliance: []ComplianceItem{
			{Name: "Due Later", Status: ComplianceNotStarted, DueDate: now.Add(10 * day)},
			{Name: "Due Soon", Status: ComplianceNotStarted, DueDate: now.Add(2 * day)},
			{Name: "Overdue", Status: ComplianceInProgress, DueDate: now.Add(-1 * day)},
			{Name: "Next Week", Status: ComplianceNotStarted, DueDate: now.Add(6 * day)},
			{Name: "Finished", Status: ComplianceCompleted, DueDate: now.Add(-5 * day)},
		},
	}

	got := ComplianceReminders(emp, now)
	want := []struct {
		module  string
		urgency Urgency
		days    int
	}{
		{"Overdue", UrgencyUrgent, -1},
		{"Due Soon", UrgencyWarning, 2},
		{"Next Week", UrgencyInformational, 6},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d reminders, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Module != w.module || got[i].Urgency != w.urgency || got[i].DaysUntilDue != w.days {
			t.Fatalf("reminder %d: expected %+v, got %+v", i, w, got[i])
		}
		if got[i].Employee != "Alice" {
			t.Fatalf("expected employee on reminder, got %q", got[i].Employee)
		}
	}
}

func TestComplianceRemindersBoundaries(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		due     time.Time
		urgency Urgency
		days    int
		present bool
	}{
		{now.Add(-12 * time.Hour), UrgencyUrgent, -1, true},
		{now.Add(12 * time.Hour), UrgencyWarning, 0, true},
		{now.Add(3 * 24 * time.Hour), UrgencyWarning, 3, true},
		{now.Add(4 * 24 * time.Hour), UrgencyInformational, 4, true},
		{now.Add(7*24*time.Hour + time.Hour), UrgencyInformational, 7, true},
		{now.Add(8 * 24 * time.Hour), "", 0, false},
	}
	for i, tc := range cases {
		emp := Employee{Compliance: []ComplianceItem{{Name: "Module", Status: ComplianceNotStarted, DueDate: tc.due}}}
		got := ComplianceReminders(emp, now)
		if !tc.present {
			if len(got) != 0 {
				t.Fatalf("case %d: expected no reminder, got %+v", i, got)
			}
			continue
		}
		if len(got) != 1 || got[0].Urgency != tc.urgency || got[0].DaysUntilDue != tc.days {
			t.Fatalf("case %d: expected %s/%d, got %+v", i, tc.urgency, tc.days, got)
		}
	}
}

func TestComplianceRemindersTieBreakByName(t *testing.T) {
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 5)
	emp := Employee{Compliance: []ComplianceItem{
		{Name: "Beta", Status: ComplianceNotStarted, DueDate: due},
		{Name: "Alpha", Status: ComplianceNotStarted, DueDate: due},
	}}
	got := ComplianceReminders(emp, now)
	if len(got) != 2 || got[0].Module != "Alpha" || got[1].Module != "Beta" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestReminderMessage(t *testing.T) {
	cases := map[int]string{
		-2: "Code of Conduct is overdue by 2 day(s)",
		0:  "Code of Conduct is due today",
		5:  "Code of Conduct is due in 5 day(s)",
	}
	for days, want := range cases {
		r := Reminder{Module: "Code of Conduct", DaysUntilDue: days}
		if got := r.Message(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestTaskViewsFlags(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	tasks := []TaskItem{
		{Name: "Late", Status: TaskInProgress, DueDate: now.Add(-48 * time.Hour), Category: "Work"},
		{Name: "Soon", Status: TaskNotStarted, DueDate: now.Add(48 * time.Hour), Category: "IT Setup"},
		{Name: "Done", Status: TaskCompleted, DueDate: now.Add(-48 * time.Hour), Category: "Work"},
		{Name: "Far", Status: TaskLocked, DueDate: now.Add(20 * 24 * time.Hour), Category: "Review"},
	}

	views := TaskViews(tasks, "", now)
	if !views[0].Overdue || views[0].DueSoon {
		t.Fatalf("expected Late overdue: %+v", views[0])
	}
	if views[1].Overdue || !views[1].DueSoon {
		t.Fatalf("expected Soon due soon: %+v", views[1])
	}
	if views[2].Overdue || views[2].DueSoon {
		t.Fatalf("expected Done unflagged: %+v", views[2])
	}
	if views[3].Overdue || views[3].DueSoon {
		t.Fatalf("expected Far unflagged: %+v", views[3])
	}

	work := TaskViews(tasks, "Work", now)
	if len(work) != 2 {
		t.Fatalf("expected 2 Work tasks, got %d", len(work))
	}
	cats := TaskCategories(tasks)
	if len(cats) != 3 || cats[0] != "Work" || cats[1] != "IT Setup" || cats[2] != "Review" {
		t.Fatalf("unexpected categories: %v", cats)
	}
}

func TestMeetingLength(t *testing.T) {
	cases := map[string]time.Duration{
		"15 min":    15 * time.Minute,
		"1 hour":    time.Hour,
		"1.5 hours": 90 * time.Minute,
		"2 hours":   2 * time.Hour,
		"":          30 * time.Minute,
		"a while":   30 * time.Minute,
	}
	for label, want := range cases {
		if got := MeetingLength(label); got != want {
			t.Fatalf("%q: expected %v, got %v", label, want, got)
		}
	}
}
