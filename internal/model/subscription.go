package model

import "github.com/google/uuid"

// Subscription is a purchased block of sessions for a student.
// UsedSessions starts at 0 and never exceeds TotalSessions; a nil
// TotalSessions means the subscription has no usable sessions.
type Subscription struct {
	ID            uuid.UUID `json:"_id"`
	StudentID     uuid.UUID `json:"student_id"`
	PackageName   *string   `json:"package_name,omitempty"`
	StartDate     *string   `json:"start_date,omitempty"`
	EndDate       *string   `json:"end_date,omitempty"`
	TotalSessions *int      `json:"total_sessions,omitempty"`
	UsedSessions  int       `json:"used_sessions"`
}

// SessionsLeft reports how many sessions remain usable.
func (s *Subscription) SessionsLeft() int {
	total := 0
	if s.TotalSessions != nil {
		total = *s.TotalSessions
	}
	if left := total - s.UsedSessions; left > 0 {
		return left
	}
	return 0
}
