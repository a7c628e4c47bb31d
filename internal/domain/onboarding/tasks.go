package onboarding

import (
	"fmt"
	"time"
)

func findTask(tasks []TaskItem, name string) (int, error) {
	for i := range tasks {
		if tasks[i].Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("task %q: %w", name, ErrNotFound)
}

func startTask(e *Employee, name string) (TaskItem, error) {
	i, err := findTask(e.Tasks, name)
	if err != nil {
		return TaskItem{}, err
	}
	if e.Tasks[i].Status != TaskNotStarted {
		return TaskItem{}, fmt.Errorf("task %q is %s: %w", name, e.Tasks[i].Status, ErrInvalidState)
	}
	e.Tasks[i].Status = TaskInProgress
	return e.Tasks[i], nil
}

// completeTask finishes the task and unlocks every Locked task that names it
// as its dependency.
func completeTask(e *Employee, name string) (TaskTransition, error) {
	i, err := findTask(e.Tasks, name)
	if err != nil {
		return TaskTransition{}, err
	}
	if e.Tasks[i].Status != TaskInProgress {
		return TaskTransition{}, fmt.Errorf("task %q is %s: %w", name, e.Tasks[i].Status, ErrInvalidState)
	}
	e.Tasks[i].Status = TaskCompleted
	e.Tasks[i].Progress = 100

	unlocked := []string{}
	for j := range e.Tasks {
		if e.Tasks[j].Dependency == name && e.Tasks[j].Status == TaskLocked {
			e.Tasks[j].Status = TaskNotStarted
			unlocked = append(unlocked, e.Tasks[j].Name)
		}
	}
	return TaskTransition{Task: e.Tasks[i], Unlocked: unlocked}, nil
}

// TaskView decorates a task with due-date flags relative to now.
type TaskView struct {
	TaskItem
	DaysLeft int  `json:"daysLeft"`
	Overdue  bool `json:"overdue"`
	DueSoon  bool `json:"dueSoon"`
}

func TaskViews(tasks []TaskItem, category string, now time.Time) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		if category != "" && t.Category != category {
			continue
		}
		days := DaysUntil(t.DueDate, now)
		open := t.Status != TaskCompleted
		out = append(out, TaskView{
			TaskItem: t,
			DaysLeft: days,
			Overdue:  open && days < 0,
			DueSoon:  open && days >= 0 && days <= DueSoonDays,
		})
	}
	return out
}

// TaskCategories returns the distinct categories in first-seen order.
func TaskCategories(tasks []TaskItem) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range tasks {
		if t.Category == "" || seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	return out
}
