package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all days in display order. Availability maps are
// always enumerated in this order so match details stay stable.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ToWeekday(s string) (Weekday, error) {
	for _, day := range Weekdays {
		if string(day) == s {
			return day, nil
		}
	}
	return "", errors.Errorf("invalid weekday: %v", s)
}

// ClockTime is a wall-clock time of day in minutes since midnight.
// There is no date or timezone component; slots never cross midnight.
type ClockTime int

func ParseClock(s string) (ClockTime, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, errors.Wrapf(err, "invalid clock time %q", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, errors.Errorf("invalid clock time %q", s)
	}
	return ClockTime(hours*60 + minutes), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

type TimeSlot struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Valid reports whether the slot has positive length. Partially saved
// slots with Start >= End show up in real data and are skipped rather
// than rejected.
func (s TimeSlot) Valid() bool {
	return s.Start < s.End
}

// WeeklyAvailability maps a weekday to the ordered time slots someone
// works or is free on that day.
type WeeklyAvailability map[Weekday][]TimeSlot
