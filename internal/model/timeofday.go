package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a minute-precision wall clock time, stored as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return NewTimeOfDay(hour, minute), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Window is a closed time-of-day interval, inclusive on both ends.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// UnmarshalText parses "HH:MM-HH:MM".
func (w *Window) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid window %q, expected HH:MM-HH:MM", string(text))
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return err
	}

	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return err
	}

	if end < start {
		return fmt.Errorf("invalid window %q, end before start", string(text))
	}

	w.Start = start
	w.End = end
	return nil
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

func (w Window) Contains(t TimeOfDay) bool {
	return w.Start <= t && t <= w.End
}

// InBlackout reports whether t falls within any of the windows.
func InBlackout(t TimeOfDay, windows []Window) bool {
	for _, w := range windows {
		if w.Contains(t) {
			return true
		}
	}
	return false
}
