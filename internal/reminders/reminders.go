// Package reminders schedules fasting milestone notifications and ritual
// due-time checks. Delivery goes through the notifier; a failed delivery is
// logged and never fails the operation that scheduled it.
package reminders

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/logger"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/storage"
)

// Sender delivers a single notification.
type Sender interface {
	Notify(title, text string) error
}

// Gateway is the scheduling surface the engines depend on.
type Gateway interface {
	ScheduleSessionReminders(session models.FastingSession) error
	CancelSessionReminders(sessionID string)
}

// Scheduler is the gocron-backed Gateway. Job handles are tracked per
// session so cancellation can remove exactly the jobs a session created.
type Scheduler struct {
	sched  gocron.Scheduler
	sender Sender

	mu   sync.Mutex
	jobs map[string][]uuid.UUID
}

func NewScheduler(sender Sender) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{
		sched:  s,
		sender: sender,
		jobs:   make(map[string][]uuid.UUID),
	}, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// sessionReminder is one milestone notification within a fast.
type sessionReminder struct {
	at    time.Time
	title string
	body  string
}

// sessionReminders computes the milestone instants for a session: halfway,
// one hour remaining (only for fasts longer than an hour), and completion.
// Instants already in the past relative to now are dropped.
func sessionReminders(session models.FastingSession, now time.Time) []sessionReminder {
	start := time.UnixMilli(session.StartTime)
	target := time.Duration(session.TargetDuration) * time.Millisecond

	candidates := []sessionReminder{
		{at: start.Add(target / 2), title: constants.ReminderHalfwayTitle, body: constants.ReminderHalfwayBody},
		{at: start.Add(target), title: constants.ReminderCompleteTitle, body: constants.ReminderCompleteBody},
	}
	if target > time.Hour {
		candidates = append(candidates, sessionReminder{
			at:    start.Add(target - time.Hour),
			title: constants.ReminderOneHourTitle,
			body:  constants.ReminderOneHourBody,
		})
	}

	var due []sessionReminder
	for _, r := range candidates {
		if r.at.After(now) {
			due = append(due, r)
		}
	}
	return due
}

// ScheduleSessionReminders registers one-shot jobs for every milestone of
// the session that is still in the future. Scheduling again for the same
// session replaces the previous set.
func (s *Scheduler) ScheduleSessionReminders(session models.FastingSession) error {
	s.CancelSessionReminders(session.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range sessionReminders(session, time.Now()) {
		title, body := r.title, r.body
		job, err := s.sched.NewJob(
			gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(r.at)),
			gocron.NewTask(func() {
				if err := s.sender.Notify(title, body); err != nil {
					logger.Warn("Failed to deliver fasting reminder", "title", title, "error", err)
				}
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule reminder: %w", err)
		}
		s.jobs[session.ID] = append(s.jobs[session.ID], job.ID())
	}

	return nil
}

// CancelSessionReminders removes all pending jobs for a session. Cancelling
// a session with no scheduled reminders is a no-op.
func (s *Scheduler) CancelSessionReminders(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.jobs[sessionID] {
		if err := s.sched.RemoveJob(id); err != nil {
			logger.Debug("Failed to remove reminder job", "job", id, "error", err)
		}
	}
	delete(s.jobs, sessionID)
}

// WatchRituals polls every minute and notifies for rituals whose scheduled
// time matches the current minute on a scheduled weekday. Rituals already
// completed today are skipped.
func (s *Scheduler) WatchRituals(store storage.Provider) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			settings, err := store.GetSettings()
			if err != nil {
				logger.Warn("Failed to load settings for ritual check", "error", err)
				return
			}
			if !settings.NotificationsEnabled {
				return
			}

			rituals, err := store.GetAllRituals()
			if err != nil {
				logger.Warn("Failed to load rituals for due check", "error", err)
				return
			}

			now := time.Now()
			for _, r := range rituals {
				if !r.IsActive || !r.IsDueAt(now) {
					continue
				}
				if completedToday(r, now) {
					continue
				}
				body := fmt.Sprintf(constants.ReminderRitualTemplate, r.Title)
				if err := s.sender.Notify(r.Title, body); err != nil {
					logger.Warn("Failed to deliver ritual reminder", "ritual", r.ID, "error", err)
				}
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule ritual watch: %w", err)
	}
	return nil
}

func completedToday(r models.Ritual, now time.Time) bool {
	for _, p := range r.Progress {
		if p.IsCompleted && sameLocalDay(time.UnixMilli(p.Date), now) {
			return true
		}
	}
	return false
}

func sameLocalDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
