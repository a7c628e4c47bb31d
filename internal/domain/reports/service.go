package reports

import (
	"bytes"
	"time"

	"onboardhub/internal/domain/onboarding"
)

// Service builds read models and exports from the onboarding service.
type Service struct {
	Onboarding *onboarding.Service
}

func NewService(svc *onboarding.Service) *Service {
	return &Service{Onboarding: svc}
}

func (s *Service) Dashboard() Dashboard {
	return BuildDashboard(s.Onboarding.List(), s.Onboarding.Now())
}

func (s *Service) SurveyAnalytics(name string) (SurveyAnalytics, error) {
	emp, err := s.Onboarding.Get(name)
	if err != nil {
		return SurveyAnalytics{}, err
	}
	return BuildSurveyAnalytics(emp.Surveys), nil
}

func (s *Service) SummaryPDF(name string) (*bytes.Buffer, error) {
	emp, err := s.Onboarding.Get(name)
	if err != nil {
		return nil, err
	}
	return RenderSummaryPDF(emp, s.Onboarding.Now())
}

func (s *Service) MeetingsICS(name string) (string, error) {
	emp, err := s.Onboarding.Get(name)
	if err != nil {
		return "", err
	}
	return RenderMeetingsICS(emp, s.Onboarding.Now()), nil
}

func (s *Service) RosterXLSX() (*bytes.Buffer, error) {
	return RenderRosterXLSX(s.Onboarding.List(), s.Onboarding.Now())
}

func dateLabel(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
