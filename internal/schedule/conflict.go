// Package schedule decides whether class meeting slots collide.
package schedule

import (
	"strconv"
	"strings"

	"github.com/tutorlane/tutorlane-backend/internal/model"
)

// FindConflict returns the first class in enrolled whose meeting slot
// overlaps the candidate's, or nil when the candidate fits. Order follows
// the enrolled slice, which callers load in registration order.
//
// A class missing its day of week or either time bound never conflicts
// with anything. Intervals are half-open: a class ending at 10:00 does
// not collide with one starting at 10:00.
func FindConflict(candidate model.Class, enrolled []model.Class) *model.Class {
	candStart, candEnd, ok := slot(candidate)
	if !ok {
		return nil
	}

	for i := range enrolled {
		c := enrolled[i]
		if c.DayOfWeek == nil || *c.DayOfWeek != *candidate.DayOfWeek {
			continue
		}
		start, end, ok := slot(c)
		if !ok {
			continue
		}
		if start < candEnd && candStart < end {
			return &enrolled[i]
		}
	}
	return nil
}

// StartsBeforeEnd reports whether both "HH:mm" times parse and start
// strictly precedes end.
func StartsBeforeEnd(start, end string) bool {
	s, okStart := minuteOfDay(start)
	e, okEnd := minuteOfDay(end)
	return okStart && okEnd && s < e
}

// slot resolves a class's meeting interval as minute-of-day bounds.
// ok is false when the class has no complete, parseable slot.
func slot(c model.Class) (start, end int, ok bool) {
	if c.DayOfWeek == nil || c.TimeStart == nil || c.TimeEnd == nil {
		return 0, 0, false
	}
	start, okStart := minuteOfDay(*c.TimeStart)
	end, okEnd := minuteOfDay(*c.TimeEnd)
	if !okStart || !okEnd {
		return 0, 0, false
	}
	return start, end, true
}

// minuteOfDay parses an "HH:mm" wall-clock string. Parsing instead of
// comparing the raw strings keeps the ordering correct even if a caller
// ever stores an unpadded hour.
func minuteOfDay(hhmm string) (int, bool) {
	h, m, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
