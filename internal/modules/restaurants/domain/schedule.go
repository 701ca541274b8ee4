package domain

import (
	"fmt"
	"strings"
	"time"
)

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// Schedule represents the operating hours for a restaurant within a single day.
// Both ends are normalised to a time of day on the zero date.
type Schedule struct {
	Open  time.Time
	Close time.Time
}

// NewSchedule builds a schedule from the time-of-day portion of open and close.
// Close must come strictly after open; overnight hours are not supported.
func NewSchedule(open, close time.Time) (Schedule, error) {
	schedule := Schedule{Open: TimeOfDay(open), Close: TimeOfDay(close)}
	if !schedule.Close.After(schedule.Open) {
		return Schedule{}, fmt.Errorf("%w: close %s is not after open %s", ErrInvalidSchedule,
			schedule.Close.Format(time.TimeOnly), schedule.Open.Format(time.TimeOnly))
	}
	return schedule, nil
}

// ParseSchedule accepts values in "HH:MM" or "HH:MM:SS" format.
func ParseSchedule(openRaw, closeRaw string) (Schedule, error) {
	open, err := ParseTimeOfDay(openRaw)
	if err != nil {
		return Schedule{}, err
	}
	close, err := ParseTimeOfDay(closeRaw)
	if err != nil {
		return Schedule{}, err
	}
	return NewSchedule(open, close)
}

// Contains reports whether the time of day of t lies within [Open, Close].
func (s Schedule) Contains(t time.Time) bool {
	tod := TimeOfDay(t)
	return !tod.Before(s.Open) && !tod.After(s.Close)
}

// Duration returns the span between open and close.
func (s Schedule) Duration() time.Duration {
	return s.Close.Sub(s.Open)
}

func (s Schedule) String() string {
	return s.Open.Format(time.TimeOnly) + "-" + s.Close.Format(time.TimeOnly)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into a time of day.
func ParseTimeOfDay(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range timeOfDayLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse time of day %q", ErrInvalidSchedule, raw)
}

// TimeOfDay strips the date and location from t, keeping wall-clock hour, minute,
// second and nanosecond.
func TimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
