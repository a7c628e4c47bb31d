package onboarding

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Service struct {
	Store    *Store
	Template *Template

	now           func() time.Time
	allowReupload bool
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDocumentReupload lets a Rejected document be uploaded again.
func WithDocumentReupload(allow bool) Option {
	return func(s *Service) {
		s.allowReupload = allow
	}
}

func NewService(store *Store, tmpl *Template, opts ...Option) *Service {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}
	s := &Service{Store: store, Template: tmpl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Register(in RegisterInput) (Employee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)
	in.Role = strings.TrimSpace(in.Role)
	in.Manager = strings.TrimSpace(in.Manager)

	switch {
	case in.Name == "":
		return Employee{}, fmt.Errorf("name is required: %w", ErrInvalidInput)
	case in.Role == "":
		return Employee{}, fmt.Errorf("role is required: %w", ErrInvalidInput)
	case in.StartDate.IsZero():
		return Employee{}, fmt.Errorf("start date is required: %w", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Employee{}, fmt.Errorf("email %q: %w", in.Email, ErrInvalidInput)
	}
	if in.Department == "" || !s.Template.HasDepartment(in.Department) {
		return Employee{}, fmt.Errorf("department %q: %w", in.Department, ErrInvalidInput)
	}

	start := truncateDay(in.StartDate)
	docs, tasks, equipment, compliance := s.Template.Instantiate(start)
	emp := Employee{
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Role:       in.Role,
		Manager:    in.Manager,
		StartDate:  start,
		CreatedAt:  s.now(),
		Version:    1,
		Documents:  docs,
		Tasks:      tasks,
		Equipment:  equipment,
		Compliance: compliance,
		Meetings:   []Meeting{},
		Surveys:    []Survey{},
	}
	if err := s.Store.Insert(emp); err != nil {
		return Employee{}, err
	}
	return emp.clone(), nil
}

func (s *Service) Remove(name string) error {
	return s.Store.Remove(name)
}

func (s *Service) Get(name string) (Employee, error) {
	return s.Store.Get(name)
}

func (s *Service) List() []Employee {
	return s.Store.List()
}

func (s *Service) Summaries() []EmployeeSummary {
	emps := s.Store.List()
	out := make([]EmployeeSummary, 0, len(emps))
	for _, e := range emps {
		out = append(out, e.Summary())
	}
	return out
}

func (s *Service) RecordDocumentUpload(name, doc string) (DocumentItem, error) {
	var out DocumentItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = recordDocumentUpload(e, doc, s.now(), s.allowReupload)
		return err
	})
	return out, err
}

func (s *Service) VerifyDocument(name, doc, verifier string) (DocumentItem, error) {
	var out DocumentItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = verifyDocument(e, doc, strings.TrimSpace(verifier))
		return err
	})
	return out, err
}

func (s *Service) RejectDocument(name, doc string) (DocumentItem, error) {
	var out DocumentItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = rejectDocument(e, doc)
		return err
	})
	return out, err
}

func (s *Service) StartTask(name, task string) (TaskItem, error) {
	var out TaskItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = startTask(e, task)
		return err
	})
	return out, err
}

func (s *Service) CompleteTask(name, task string) (TaskTransition, error) {
	var out TaskTransition
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = completeTask(e, task)
		return err
	})
	return out, err
}

func (s *Service) AssignEquipment(name, item, assigner, serial string) (EquipmentItem, error) {
	var out EquipmentItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = assignEquipment(e, item, strings.TrimSpace(assigner), serial, s.now())
		return err
	})
	return out, err
}

func (s *Service) StartCompliance(name, module string) (ComplianceItem, error) {
	var out ComplianceItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = startCompliance(e, module)
		return err
	})
	return out, err
}

func (s *Service) CompleteCompliance(name, module string) (ComplianceItem, error) {
	var out ComplianceItem
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = completeCompliance(e, module, s.now())
		return err
	})
	return out, err
}

func (s *Service) ScheduleMeeting(name string, in MeetingInput) (Meeting, error) {
	var out Meeting
	_, err := s.Store.Update(name, func(e *Employee) error {
		m, err := newMeeting(in, s.now())
		if err != nil {
			return err
		}
		e.Meetings = append(e.Meetings, m)
		out = m
		return nil
	})
	return out, err
}

func (s *Service) CompleteMeeting(name, id string) (Meeting, error) {
	var out Meeting
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = completeMeeting(e, id)
		return err
	})
	return out, err
}

func (s *Service) CancelMeeting(name, id string) (Meeting, error) {
	var out Meeting
	_, err := s.Store.Update(name, func(e *Employee) error {
		var err error
		out, err = cancelMeeting(e, id)
		return err
	})
	return out, err
}

func (s *Service) SubmitSurvey(name string, ratings SurveyRatings, feedback SurveyFeedback) (Survey, error) {
	var out Survey
	_, err := s.Store.Update(name, func(e *Employee) error {
		sv, err := newSurvey(ratings, feedback, s.now())
		if err != nil {
			return err
		}
		e.Surveys = append(e.Surveys, sv)
		out = sv
		return nil
	})
	return out, err
}

func (s *Service) CompletionPercentage(name string) (int, error) {
	e, err := s.Store.Get(name)
	if err != nil {
		return 0, err
	}
	return CompletionPercentage(e), nil
}

func (s *Service) Progress(name string) (ProgressReport, error) {
	e, err := s.Store.Get(name)
	if err != nil {
		return ProgressReport{}, err
	}
	return BuildProgress(e, s.now()), nil
}

func (s *Service) ComplianceReminders(name string) ([]Reminder, error) {
	e, err := s.Store.Get(name)
	if err != nil {
		return nil, err
	}
	return ComplianceReminders(e, s.now()), nil
}

// AllReminders collects reminders for every employee in insertion order.
func (s *Service) AllReminders() []Reminder {
	now := s.now()
	var out []Reminder
	for _, e := range s.Store.List() {
		out = append(out, ComplianceReminders(e, now)...)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
