package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/lock"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// ClientID 0 books the walk-in client.
	ClientID  uint
	ServiceID uint
	BarberID  uint

	Date  string
	Start string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog Catalog
	checker *ConflictChecker
	locker  lock.Locker
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog Catalog,
	checker *ConflictChecker,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: catalog,
		checker: checker,
		locker:  locker,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Date and start time
	// --------------------------------------------------
	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	if _, err := domain.ParseClock(in.Start); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTime)
	}
	start := domain.AddMinutes(in.Start, 0)

	// --------------------------------------------------
	// 2. Service, barber and client
	// --------------------------------------------------
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

	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeBarberNotFound)
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	client, err := uc.resolveClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Slot must end on the same day
	// --------------------------------------------------
	end := domain.AddMinutes(start, service.DurationMin)
	if _, err := domain.NewInterval(start, end); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}

	// --------------------------------------------------
	// 4. Conflict check and insert, serialized per barber
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, lock.BarberKey(barber.ID))
	if err != nil {
		return nil, fmt.Errorf("acquire booking lock: %w", err)
	}
	defer release()

	if uc.checker.HasConflict(ctx, in.Date, start, end, barber.ID) {
		return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		ServiceID: service.ID,
		BarberID:  barber.ID,
		Date:      in.Date,
		StartTime: start,
		EndTime:   end,
		Total:     service.Price,
		Status:    string(domain.InitialStatus()),
		Notes:     strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, httperr.Storage(err)
	}

	ap.Client, ap.Service, ap.Barber = *client, *service, *barber

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"date":      ap.Date,
			"start":     ap.StartTime,
			"end":       ap.EndTime,
		},
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveClient(ctx context.Context, id uint) (*models.Client, error) {
	if id == 0 {
		c, err := uc.catalog.GetWalkInClient(ctx)
		if err != nil {
			return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
		}
		return c, nil
	}

	c, err := uc.catalog.GetClient(ctx, id)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
	}
	return c, nil
}
