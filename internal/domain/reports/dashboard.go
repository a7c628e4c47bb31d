package reports

import (
	"time"

	"onboardhub/internal/domain/onboarding"
)

type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Dashboard struct {
	ActiveEmployees   int     `json:"activeEmployees"`
	PendingDocuments  int     `json:"pendingDocuments"`
	PendingEquipment  int     `json:"pendingEquipment"`
	OverdueTraining   int     `json:"overdueTraining"`
	AverageCompletion int     `json:"averageCompletion"`
	Completion        []Point `json:"completion"`
	TaskStatus        []Point `json:"taskStatus"`
}

// BuildDashboard aggregates every employee. AverageCompletion is the mean of
// per-employee percentages truncated to an integer.
func BuildDashboard(emps []onboarding.Employee, now time.Time) Dashboard {
	d := Dashboard{
		ActiveEmployees: len(emps),
		Completion:      make([]Point, 0, len(emps)),
	}
	statusCounts := map[onboarding.TaskStatus]int{}
	sum := 0
	for _, e := range emps {
		pct := onboarding.CompletionPercentage(e)
		sum += pct
		d.Completion = append(d.Completion, Point{Label: e.Name, Value: pct})
		d.PendingDocuments += onboarding.PendingDocuments(e)
		d.PendingEquipment += onboarding.PendingEquipment(e)
		d.OverdueTraining += onboarding.OverdueCompliance(e, now)
		for _, t := range e.Tasks {
			statusCounts[t.Status]++
		}
	}
	if len(emps) > 0 {
		d.AverageCompletion = sum / len(emps)
	}
	for _, status := range onboarding.TaskStatuses {
		d.TaskStatus = append(d.TaskStatus, Point{Label: string(status), Value: statusCounts[status]})
	}
	return d
}
