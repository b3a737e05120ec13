package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
)

func meeting(name string, day model.DayOfWeek, start, end string) model.Class {
	return model.Class{
		ID:        uuid.New(),
		Name:      name,
		DayOfWeek: &day,
		TimeStart: &start,
		TimeEnd:   &end,
	}
}

func TestFindConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate model.Class
		enrolled  []model.Class
		want      string // name of conflicting class, "" for none
	}{
		{
			name:      "no enrolled classes",
			candidate: meeting("A", model.Monday, "09:00", "10:00"),
			enrolled:  nil,
			want:      "",
		},
		{
			name:      "overlapping same day",
			candidate: meeting("B", model.Monday, "09:30", "10:30"),
			enrolled:  []model.Class{meeting("A", model.Monday, "09:00", "10:00")},
			want:      "A",
		},
		{
			name:      "same interval different day",
			candidate: meeting("B", model.Tuesday, "09:00", "10:00"),
			enrolled:  []model.Class{meeting("A", model.Monday, "09:00", "10:00")},
			want:      "",
		},
		{
			name:      "touching endpoints do not overlap",
			candidate: meeting("B", model.Monday, "10:00", "11:00"),
			enrolled:  []model.Class{meeting("A", model.Monday, "09:00", "10:00")},
			want:      "",
		},
		{
			name:      "touching endpoints reversed",
			candidate: meeting("B", model.Monday, "08:00", "09:00"),
			enrolled:  []model.Class{meeting("A", model.Monday, "09:00", "10:00")},
			want:      "",
		},
		{
			name:      "candidate fully inside enrolled",
			candidate: meeting("B", model.Friday, "09:15", "09:45"),
			enrolled:  []model.Class{meeting("A", model.Friday, "09:00", "10:00")},
			want:      "A",
		},
		{
			name:      "enrolled fully inside candidate",
			candidate: meeting("B", model.Friday, "08:00", "12:00"),
			enrolled:  []model.Class{meeting("A", model.Friday, "09:00", "10:00")},
			want:      "A",
		},
		{
			name:      "identical intervals",
			candidate: meeting("B", model.Sunday, "14:00", "16:00"),
			enrolled:  []model.Class{meeting("A", model.Sunday, "14:00", "16:00")},
			want:      "A",
		},
		{
			name:      "first match wins in enrollment order",
			candidate: meeting("C", model.Monday, "09:00", "12:00"),
			enrolled: []model.Class{
				meeting("A", model.Monday, "09:00", "10:00"),
				meeting("B", model.Monday, "10:00", "11:00"),
			},
			want: "A",
		},
		{
			name:      "candidate missing day never conflicts",
			candidate: model.Class{Name: "B", TimeStart: strPtr("09:00"), TimeEnd: strPtr("10:00")},
			enrolled:  []model.Class{meeting("A", model.Monday, "09:00", "10:00")},
			want:      "",
		},
		{
			name:      "enrolled missing end time never conflicts",
			candidate: meeting("B", model.Monday, "09:00", "10:00"),
			enrolled: []model.Class{{
				Name:      "A",
				DayOfWeek: dayPtr(model.Monday),
				TimeStart: strPtr("09:00"),
			}},
			want: "",
		},
		{
			name:      "malformed time treated as missing",
			candidate: meeting("B", model.Monday, "09:00", "10:00"),
			enrolled:  []model.Class{meeting("A", model.Monday, "late", "10:00")},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(tt.candidate, tt.enrolled)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected no conflict, got %q", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected conflict with %q, got none", tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("conflicting class = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"9:05", 545, true}, // unpadded hour still parses
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := minuteOfDay(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("minuteOfDay(%q) = (%d, %t), want (%d, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func strPtr(s string) *string             { return &s }
func dayPtr(d model.DayOfWeek) *model.DayOfWeek { return &d }
