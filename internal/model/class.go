package model

import "github.com/google/uuid"

// DayOfWeek is the enumerated weekday label a class meets on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Days lists every valid DayOfWeek label.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the enumerated weekday labels.
func (d DayOfWeek) Valid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// Class represents a class offered by the center.
// JSON field names keep the legacy API spelling, including "_id".
// TimeStart/TimeEnd are "HH:mm" wall-clock strings; a class missing its
// day or either time bound has no fixed meeting slot.
type Class struct {
	ID          uuid.UUID  `json:"_id"`
	Name        string     `json:"name"`
	Subject     *string    `json:"subject,omitempty"`
	DayOfWeek   *DayOfWeek `json:"day_of_week,omitempty"`
	TimeStart   *string    `json:"time_start,omitempty"`
	TimeEnd     *string    `json:"time_end,omitempty"`
	TeacherName *string    `json:"teacher_name,omitempty"`
	MaxStudents *int       `json:"max_students,omitempty"`
}
