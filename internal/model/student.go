package model

import "github.com/google/uuid"

// Student represents a student enrolled at the center.
// ClassIDs is the ordered set of classes the student is registered in;
// it is appended to only by a successful class registration.
type Student struct {
	ID           uuid.UUID   `json:"_id"`
	Name         string      `json:"name"`
	DOB          *string     `json:"dob,omitempty"`
	Gender       *string     `json:"gender,omitempty"`
	CurrentGrade *int        `json:"current_grade,omitempty"`
	ParentID     uuid.UUID   `json:"parent_id"`
	ClassIDs     []uuid.UUID `json:"class_ids"`
}
