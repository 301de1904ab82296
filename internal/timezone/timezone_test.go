package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDateAndClockOf(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-15", DateOf(at))
	assert.Equal(t, "09:05", ClockOf(at))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock{At: at}.Now())
}
