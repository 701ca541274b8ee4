package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseSchedule(t *testing.T) {
	cases := []struct {
		name     string
		open     string
		close    string
		wantErr  bool
		duration time.Duration
	}{
		{name: "seconds precision", open: "10:30:00", close: "22:00:00", duration: 11*time.Hour + 30*time.Minute},
		{name: "minute precision with spacing", open: " 09:00", close: "17:30 ", duration: 8*time.Hour + 30*time.Minute},
		{name: "close before open", open: "22:00", close: "10:30", wantErr: true},
		{name: "close equals open", open: "10:30", close: "10:30", wantErr: true},
		{name: "garbage input", open: "noon", close: "22:00", wantErr: true},
		{name: "empty close", open: "10:30", close: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := ParseSchedule(tc.open, tc.close)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSchedule) {
					t.Fatalf("expected ErrInvalidSchedule, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if schedule.Duration() != tc.duration {
				t.Fatalf("expected duration %s, got %s", tc.duration, schedule.Duration())
			}
		})
	}
}

func TestScheduleIgnoresDateAndZone(t *testing.T) {
	open := time.Date(2020, time.May, 1, 10, 30, 0, 0, time.UTC)
	close := time.Date(1999, time.December, 31, 22, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	schedule, err := NewSchedule(open, close)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := schedule.String(); got != "10:30:00-22:00:00" {
		t.Fatalf("unexpected schedule %q", got)
	}
	if !schedule.Contains(time.Date(2031, time.July, 4, 12, 30, 0, 0, time.Local)) {
		t.Fatal("expected 12:30 to be within schedule")
	}
}
