package onboarding

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_template.yaml
var defaultTemplateYAML []byte

// Template is the checklist set instantiated for every new employee.
type Template struct {
	Departments  []string             `yaml:"departments" json:"departments"`
	MeetingTypes []string             `yaml:"meetingTypes" json:"meetingTypes"`
	Documents    []DocumentTemplate   `yaml:"documents" json:"documents"`
	Tasks        []TaskTemplate       `yaml:"tasks" json:"tasks"`
	Equipment    []string             `yaml:"equipment" json:"equipment"`
	Compliance   []ComplianceTemplate `yaml:"compliance" json:"compliance"`
}

type DocumentTemplate struct {
	Name     string   `yaml:"name" json:"name"`
	Priority Priority `yaml:"priority" json:"priority"`
}

type TaskTemplate struct {
	Name       string `yaml:"name" json:"name"`
	Dependency string `yaml:"dependency" json:"dependency,omitempty"`
	OffsetDays int    `yaml:"offsetDays" json:"offsetDays"`
	Category   string `yaml:"category" json:"category"`
}

type ComplianceTemplate struct {
	Name       string   `yaml:"name" json:"name"`
	OffsetDays int      `yaml:"offsetDays" json:"offsetDays"`
	Duration   string   `yaml:"duration" json:"duration"`
	Priority   Priority `yaml:"priority" json:"priority"`
}

// DefaultTemplate returns the built-in template. It panics if the embedded
// file does not validate.
func DefaultTemplate() *Template {
	t, err := ParseTemplate(defaultTemplateYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTemplate reads a template file, or the embedded default when path is empty.
func LoadTemplate(path string) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return ParseTemplate(defaultTemplateYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(data)
}

func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects templates that would produce unreachable or ambiguous items.
func (t *Template) Validate() error {
	if len(t.Tasks) == 0 {
		return fmt.Errorf("%w: at least one task is required", ErrInvalidTemplate)
	}
	if err := uniqueNames("department", t.Departments); err != nil {
		return err
	}
	if err := uniqueNames("equipment", t.Equipment); err != nil {
		return err
	}

	docs := make([]string, 0, len(t.Documents))
	for _, d := range t.Documents {
		if !d.Priority.Valid() {
			return fmt.Errorf("%w: document %q has invalid priority %q", ErrInvalidTemplate, d.Name, d.Priority)
		}
		docs = append(docs, d.Name)
	}
	if err := uniqueNames("document", docs); err != nil {
		return err
	}

	modules := make([]string, 0, len(t.Compliance))
	for _, c := range t.Compliance {
		if !c.Priority.Valid() {
			return fmt.Errorf("%w: compliance module %q has invalid priority %q", ErrInvalidTemplate, c.Name, c.Priority)
		}
		if c.OffsetDays < 0 {
			return fmt.Errorf("%w: compliance module %q has negative offset", ErrInvalidTemplate, c.Name)
		}
		modules = append(modules, c.Name)
	}
	if err := uniqueNames("compliance module", modules); err != nil {
		return err
	}

	deps := make(map[string]string, len(t.Tasks))
	tasks := make([]string, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		if task.OffsetDays < 0 {
			return fmt.Errorf("%w: task %q has negative offset", ErrInvalidTemplate, task.Name)
		}
		deps[task.Name] = task.Dependency
		tasks = append(tasks, task.Name)
	}
	if err := uniqueNames("task", tasks); err != nil {
		return err
	}

	roots := 0
	for _, task := range t.Tasks {
		if task.Dependency == "" {
			roots++
			continue
		}
		if task.Dependency == task.Name {
			return fmt.Errorf("%w: task %q depends on itself", ErrInvalidTemplate, task.Name)
		}
		if _, ok := deps[task.Dependency]; !ok {
			return fmt.Errorf("%w: task %q depends on unknown task %q", ErrInvalidTemplate, task.Name, task.Dependency)
		}
	}
	if roots == 0 {
		return fmt.Errorf("%w: no task without a dependency", ErrInvalidTemplate)
	}

	// Each task has at most one dependency, so walking the chain finds any cycle.
	for _, task := range t.Tasks {
		seen := map[string]bool{task.Name: true}
		for next := deps[task.Name]; next != ""; next = deps[next] {
			if seen[next] {
				return fmt.Errorf("%w: dependency cycle through task %q", ErrInvalidTemplate, task.Name)
			}
			seen[next] = true
		}
	}
	return nil
}

func uniqueNames(kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty %s name", ErrInvalidTemplate, kind)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalidTemplate, kind, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// HasDepartment reports whether department is listed. An empty list accepts any value.
func (t *Template) HasDepartment(department string) bool {
	if len(t.Departments) == 0 {
		return true
	}
	return slices.Contains(t.Departments, department)
}

// Instantiate builds fresh checklists for an employee starting on startDate.
func (t *Template) Instantiate(startDate time.Time) ([]DocumentItem, []TaskItem, []EquipmentItem, []ComplianceItem) {
	docs := make([]DocumentItem, 0, len(t.Documents))
	for _, d := range t.Documents {
		docs = append(docs, DocumentItem{Name: d.Name, Status: DocumentPending, Priority: d.Priority})
	}

	tasks := make([]TaskItem, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		status := TaskLocked
		if task.Dependency == "" {
			status = TaskNotStarted
		}
		tasks = append(tasks, TaskItem{
			Name:       task.Name,
			Status:     status,
			Dependency: task.Dependency,
			DueDate:    startDate.AddDate(0, 0, task.OffsetDays),
			Category:   task.Category,
		})
	}

	equipment := make([]EquipmentItem, 0, len(t.Equipment))
	for _, name := range t.Equipment {
		equipment = append(equipment, EquipmentItem{Name: name, Status: EquipmentPending})
	}

	compliance := make([]ComplianceItem, 0, len(t.Compliance))
	for _, c := range t.Compliance {
		compliance = append(compliance, ComplianceItem{
			Name:     c.Name,
			Status:   ComplianceNotStarted,
			DueDate:  startDate.AddDate(0, 0, c.OffsetDays),
			Duration: c.Duration,
			Priority: c.Priority,
		})
	}
	return docs, tasks, equipment, compliance
}
