package appointment

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
)

// ConflictChecker reports whether a slot overlaps a barber's live bookings.
// Any failure to read the schedule counts as a conflict.
type ConflictChecker struct {
	repo domain.Repository
	log  *slog.Logger
}

func NewConflictChecker(repo domain.Repository, log *slog.Logger) *ConflictChecker {
	return &ConflictChecker{repo: repo, log: log}
}

func (c *ConflictChecker) HasConflict(
	ctx context.Context,
	date string,
	start string,
	end string,
	barberID uint,
) bool {

	candidate, err := domain.NewInterval(start, end)
	if err != nil {
		c.log.Warn("conflict check: invalid candidate", "start", start, "end", end, "error", err)
		return true
	}

	existing, err := c.repo.ListActiveForBarber(ctx, barberID, date)
	if err != nil {
		c.log.Error("conflict check: schedule unavailable, assuming conflict",
			"barber_id", barberID,
			"date", date,
			"error", err,
		)
		return true
	}

	for _, ap := range existing {
		booked, err := storedInterval(ap.StartTime, ap.EndTime)
		if err != nil {
			c.log.Error("conflict check: unreadable appointment, assuming conflict",
				"appointment_id", ap.ID,
				"error", err,
			)
			return true
		}
		if candidate.Overlaps(booked) {
			return true
		}
	}

	return false
}

// storedInterval reads a persisted slot. Legacy rows that wrapped past
// midnight occupy the rest of their day.
func storedInterval(start, end string) (domain.Interval, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return domain.Interval{}, err
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return domain.Interval{}, err
	}
	if e < s {
		e = 24 * 60
	}
	return domain.Interval{Start: s, End: e}, nil
}
