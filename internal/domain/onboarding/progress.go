package onboarding

import (
	"math"
	"time"
)

// CompletionPercentage is round(100 * done / total) across the four checklists.
func CompletionPercentage(e Employee) int {
	done, total := completionCounts(e)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

func completionCounts(e Employee) (done, total int) {
	for _, c := range []CategoryCount{
		documentCount(e.Documents),
		taskCount(e.Tasks),
		equipmentCount(e.Equipment),
		complianceCount(e.Compliance),
	} {
		done += c.Done
		total += c.Total
	}
	return done, total
}

func documentCount(docs []DocumentItem) CategoryCount {
	c := CategoryCount{Total: len(docs)}
	for _, d := range docs {
		if d.Status == DocumentVerified {
			c.Done++
		}
	}
	return c
}

func taskCount(tasks []TaskItem) CategoryCount {
	c := CategoryCount{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == TaskCompleted {
			c.Done++
		}
	}
	return c
}

func equipmentCount(items []EquipmentItem) CategoryCount {
	c := CategoryCount{Total: len(items)}
	for _, it := range items {
		if it.Status == EquipmentAssigned {
			c.Done++
		}
	}
	return c
}

func complianceCount(items []ComplianceItem) CategoryCount {
	c := CategoryCount{Total: len(items)}
	for _, it := range items {
		if it.Status == ComplianceCompleted {
			c.Done++
		}
	}
	return c
}

// PendingDocuments counts documents still waiting on the employee or on review.
func PendingDocuments(e Employee) int {
	n := 0
	for _, d := range e.Documents {
		if d.Status == DocumentPending || d.Status == DocumentUploaded {
			n++
		}
	}
	return n
}

func PendingEquipment(e Employee) int {
	n := 0
	for _, it := range e.Equipment {
		if it.Status == EquipmentPending {
			n++
		}
	}
	return n
}

// OverdueCompliance counts unfinished modules whose due date is before now.
func OverdueCompliance(e Employee, now time.Time) int {
	n := 0
	for _, it := range e.Compliance {
		if it.Status != ComplianceCompleted && it.DueDate.Before(now) {
			n++
		}
	}
	return n
}

func BuildProgress(e Employee, now time.Time) ProgressReport {
	p := ProgressReport{
		Employee:          e.Name,
		CompletionPercent: CompletionPercentage(e),
		Documents:         documentCount(e.Documents),
		Tasks:             taskCount(e.Tasks),
		Equipment:         equipmentCount(e.Equipment),
		Compliance:        complianceCount(e.Compliance),
		PendingDocuments:  PendingDocuments(e),
		PendingEquipment:  PendingEquipment(e),
		OverdueCompliance: OverdueCompliance(e, now),
		DaysSinceStart:    -DaysUntil(e.StartDate, now),
		SurveysSubmitted:  len(e.Surveys),
	}
	for _, t := range e.Tasks {
		switch t.Status {
		case TaskInProgress:
			p.TasksInProgress++
		case TaskLocked:
			p.TasksLocked++
		}
	}
	for _, m := range e.Meetings {
		switch m.Status {
		case MeetingScheduled:
			p.ScheduledMeetings++
		case MeetingCompleted:
			p.CompletedMeetings++
		}
	}
	return p
}
