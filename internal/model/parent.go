package model

import "github.com/google/uuid"

// Parent represents the owning parent account for one or more students.
type Parent struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone,omitempty"`
}
