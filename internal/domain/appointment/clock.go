package appointment

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout   = "15:04"
	minutesPerDay = 24 * 60
)

// ParseClock returns the minutes since midnight of an "HH:MM" wall-clock time.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes adds a duration to a wall-clock time, wrapping at midnight.
// Unparseable input or a negative duration returns start unchanged.
func AddMinutes(start string, minutes int) string {
	if minutes < 0 {
		return start
	}
	m, err := ParseClock(start)
	if err != nil {
		return start
	}
	return formatClock(m + minutes)
}

// Interval is a same-day, half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("interval %s-%s must start before it ends", start, end)
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps uses exclusive boundaries, so back-to-back intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

func (i Interval) StartClock() string { return formatClock(i.Start) }

func (i Interval) EndClock() string { return formatClock(i.End) }
