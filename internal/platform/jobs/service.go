package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/platform/config"
	"onboardhub/internal/platform/metrics"
)

const (
	JobReminderSweep = "compliance_reminder_sweep"

	maxRunHistory = 100
)

// ReminderSource lists the reminders currently due across all employees.
type ReminderSource interface {
	AllReminders() []onboarding.Reminder
}

// Dispatcher delivers reminders and reports how many were new.
type Dispatcher interface {
	Dispatch(ctx context.Context, reminders []onboarding.Reminder) (int, error)
}

type Run struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Details     any        `json:"details,omitempty"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type SweepResult struct {
	Reminders  int `json:"reminders"`
	Dispatched int `json:"dispatched"`
}

type Service struct {
	Cfg        config.Config
	Source     ReminderSource
	Dispatcher Dispatcher
	Metrics    *metrics.Collector

	queue chan job
	mu    sync.Mutex
	runs  []Run
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(cfg config.Config, source ReminderSource, dispatcher Dispatcher, collector *metrics.Collector) *Service {
	return &Service{
		Cfg:        cfg,
		Source:     source,
		Dispatcher: dispatcher,
		Metrics:    collector,
		queue:      make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.ReminderInterval > 0 {
		go s.scheduleReminders(ctx, s.Cfg.ReminderInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// SweepReminders derives every due reminder and hands it to the dispatcher.
func (s *Service) SweepReminders(ctx context.Context) (any, error) {
	reminders := s.Source.AllReminders()
	dispatched, err := s.Dispatcher.Dispatch(ctx, reminders)
	if s.Metrics != nil {
		s.Metrics.RecordSweep(dispatched)
	}
	return SweepResult{Reminders: len(reminders), Dispatched: dispatched}, err
}

// Runs returns recorded job runs, newest first.
func (s *Service) Runs(jobType string, limit int) []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Run{}
	for i := len(s.runs) - 1; i >= 0; i-- {
		if jobType != "" && s.runs[i].Type != jobType {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.runs[i])
	}
	return out
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	run := Run{ID: uuid.NewString(), Type: j.Type, Status: "running", StartedAt: time.Now()}

	details, err := j.Run(ctx)
	completed := time.Now()
	run.Status = "completed"
	run.Details = details
	run.CompletedAt = &completed
	if err != nil {
		run.Status = "failed"
		run.Error = err.Error()
	}

	s.mu.Lock()
	s.runs = append(s.runs, run)
	if len(s.runs) > maxRunHistory {
		s.runs = s.runs[len(s.runs)-maxRunHistory:]
	}
	s.mu.Unlock()

	slog.Info("job run finished", "jobType", j.Type, "runId", run.ID, "status", run.Status,
		"durationMs", completed.Sub(run.StartedAt).Milliseconds())
	return details, err
}

func (s *Service) scheduleReminders(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobReminderSweep, s.SweepReminders)
		}
	}
}
