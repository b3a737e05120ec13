package model

import "github.com/google/uuid"

// Registration is the join record linking one Student to one Class.
// The (class, student) pair is unique across all registrations.
type Registration struct {
	ID        uuid.UUID `json:"_id"`
	ClassID   uuid.UUID `json:"class_id"`
	StudentID uuid.UUID `json:"student_id"`
}
