package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}

	now := uc.clock.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	ok, err := uc.repo.MarkCancelled(ctx, ap.ID, now)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	if !ok {
		// paid or cancelled since we read it
		current, err := uc.repo.GetAppointment(ctx, ap.ID)
		if err != nil {
			return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
		}
		if err := domain.CanCancel(domain.Status(current.Status)); err != nil {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyClosed)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
