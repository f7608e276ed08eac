package models

import "time"

// FastingSession is a single fasting attempt. Timestamps are milliseconds
// since epoch to match the persisted wire shape; EndTime is nil while the
// fast is ongoing. TargetDuration is fixed at creation and never mutated.
type FastingSession struct {
	ID             string `json:"id"`
	StartTime      int64  `json:"start_time"`
	EndTime        *int64 `json:"end_time"`
	TargetDuration int64  `json:"target_duration"`
	IsCompleted    bool   `json:"is_completed"`
}

// Active reports whether the session is still running (no end time set).
func (s *FastingSession) Active() bool {
	return s.EndTime == nil
}

// TargetEnd returns the instant the fast is scheduled to complete.
func (s *FastingSession) TargetEnd() time.Time {
	return time.UnixMilli(s.StartTime + s.TargetDuration)
}

// TargetHours returns the planned duration in whole hours.
func (s *FastingSession) TargetHours() int {
	return int(s.TargetDuration / int64(time.Hour/time.Millisecond))
}
