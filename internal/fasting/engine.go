// Package fasting owns the fasting session state machine. At most one
// session is active at a time; everything else is history.
package fasting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/errors"
	"github.com/Stevedee925/phoenix/internal/logger"
	"github.com/Stevedee925/phoenix/internal/models"
	"github.com/Stevedee925/phoenix/internal/reminders"
	"github.com/Stevedee925/phoenix/internal/utils"
)

var (
	// ErrSessionActive is returned by Start while another fast is running.
	ErrSessionActive = fmt.Errorf("%w: a fasting session is already active", errors.ErrInvalidState)
	// ErrNoActiveSession is returned by End and Tick when no fast is running.
	ErrNoActiveSession = fmt.Errorf("%w: no active fasting session", errors.ErrInvalidState)
)

// Store is the slice of the persistence surface the engine needs.
type Store interface {
	SaveSession(session models.FastingSession) error
	GetActiveSession() (*models.FastingSession, error)
	GetAllSessions() ([]models.FastingSession, error)
}

type Engine struct {
	store     Store
	reminders reminders.Gateway
}

// NewEngine wires the engine to its collaborators. The reminders gateway may
// be nil, in which case no notifications are scheduled.
func NewEngine(store Store, gw reminders.Gateway) *Engine {
	return &Engine{store: store, reminders: gw}
}

// Start begins a new fast of the given length. It fails with ErrSessionActive
// if a fast is already running; the session is persisted before reminders are
// scheduled, and a reminder scheduling failure is logged rather than returned.
func (e *Engine) Start(hours int, now time.Time) (models.FastingSession, error) {
	if hours <= 0 {
		return models.FastingSession{}, fmt.Errorf("%w: fasting hours must be positive, got %d", errors.ErrValidation, hours)
	}

	active, err := e.store.GetActiveSession()
	if err != nil {
		return models.FastingSession{}, fmt.Errorf("failed to check for active session: %w", err)
	}
	if active != nil {
		return models.FastingSession{}, ErrSessionActive
	}

	session := models.FastingSession{
		ID:             uuid.NewString(),
		StartTime:      now.UnixMilli(),
		TargetDuration: int64(hours) * constants.HourMs,
	}

	if err := e.store.SaveSession(session); err != nil {
		return models.FastingSession{}, fmt.Errorf("failed to save session: %w", err)
	}

	if e.reminders != nil {
		if err := e.reminders.ScheduleSessionReminders(session); err != nil {
			logger.Warn("Failed to schedule fasting reminders", "session", session.ID, "error", err)
		}
	}

	return session, nil
}

// Status is a point-in-time view of the active fast.
type Status struct {
	Session     models.FastingSession
	ElapsedMs   int64
	RemainingMs int64
	Ratio       float64
	Percent     int
}

// Tick recomputes progress for the active session. When the target duration
// has been reached it completes the session before reporting. Returns
// (nil, nil) when no fast is running.
func (e *Engine) Tick(now time.Time) (*Status, error) {
	active, err := e.store.GetActiveSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load active session: %w", err)
	}
	if active == nil {
		return nil, nil
	}

	session := *active
	nowMs := now.UnixMilli()

	if utils.Elapsed(nowMs, session.StartTime) >= session.TargetDuration {
		session, err = e.finish(session, now, true)
		if err != nil {
			return nil, err
		}
	}

	elapsedMs := utils.Elapsed(nowMs, session.StartTime)
	ratio, err := utils.ProgressRatio(elapsedMs, session.TargetDuration)
	if err != nil {
		return nil, err
	}

	return &Status{
		Session:     session,
		ElapsedMs:   elapsedMs,
		RemainingMs: utils.Remaining(nowMs, session.StartTime, session.TargetDuration),
		Ratio:       ratio,
		Percent:     utils.Percentage(ratio),
	}, nil
}

// End stops the active fast. The fast counts as completed only if the target
// duration was reached by the time it ends. Fails with ErrNoActiveSession
// when nothing is running.
func (e *Engine) End(now time.Time) (models.FastingSession, error) {
	active, err := e.store.GetActiveSession()
	if err != nil {
		return models.FastingSession{}, fmt.Errorf("failed to load active session: %w", err)
	}
	if active == nil {
		return models.FastingSession{}, ErrNoActiveSession
	}

	completed := utils.Elapsed(now.UnixMilli(), active.StartTime) >= active.TargetDuration
	return e.finish(*active, now, completed)
}

// finish persists the terminal state and then cancels reminders. If the save
// fails the session stays active so persisted truth and engine state agree.
func (e *Engine) finish(session models.FastingSession, now time.Time, completed bool) (models.FastingSession, error) {
	endMs := now.UnixMilli()
	session.EndTime = &endMs
	session.IsCompleted = completed

	if err := e.store.SaveSession(session); err != nil {
		return models.FastingSession{}, fmt.Errorf("failed to save session: %w", err)
	}

	if e.reminders != nil {
		e.reminders.CancelSessionReminders(session.ID)
	}

	return session, nil
}

// Active returns the running session, or nil when idle.
func (e *Engine) Active() (*models.FastingSession, error) {
	return e.store.GetActiveSession()
}

// History lists all sessions, newest first.
func (e *Engine) History() ([]models.FastingSession, error) {
	return e.store.GetAllSessions()
}
