package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// GetAvailability lists the free slots of a barber for a service between the
// shop's opening and closing hours. Slots of today that already started are skipped.
type GetAvailability struct {
	repo     domain.Repository
	catalog  Catalog
	settings catalog.SettingsRepository
	clock    timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	catalog Catalog,
	settings catalog.SettingsRepository,
	clock timezone.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		catalog:  catalog,
		settings: settings,
		clock:    clock,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeServiceNotFound)
	}
	if !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}

	if _, err := uc.catalog.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.Lookup(err, httperr.CodeBarberNotFound)
	}

	hours, err := catalog.LoadHours(ctx, uc.settings)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	day, err := hours.Interval()
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListActiveForBarber(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	booked := make([]domain.Interval, 0, len(appointments))
	for _, ap := range appointments {
		iv, err := storedInterval(ap.StartTime, ap.EndTime)
		if err != nil {
			// unreadable booking: offer nothing rather than a slot that may clash
			return []domain.TimeSlot{}, nil
		}
		booked = append(booked, iv)
	}

	notBefore := 0
	now := uc.clock.Now()
	if timezone.DateOf(now) == in.Date {
		notBefore = now.Hour()*60 + now.Minute()
	}

	slots := []domain.TimeSlot{}
	for cur := day.Start; cur+service.DurationMin <= day.End; cur += service.DurationMin {
		slot := domain.Interval{Start: cur, End: cur + service.DurationMin}

		if slot.Start < notBefore {
			continue
		}

		free := true
		for _, b := range booked {
			if slot.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, domain.TimeSlot{
				Start: slot.StartClock(),
				End:   slot.EndClock(),
			})
		}
	}

	return slots, nil
}
