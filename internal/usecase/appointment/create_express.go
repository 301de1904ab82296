package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

const expressNote = "Express"

type CreateExpressInput struct {
	ClientID  uint
	ServiceID uint
	BarberID  uint
	Notes     string
}

// CreateExpressAppointment books a walk-up service starting now.
type CreateExpressAppointment struct {
	create *CreateAppointment
	clock  timezone.Clock
}

func NewCreateExpressAppointment(
	create *CreateAppointment,
	clock timezone.Clock,
) *CreateExpressAppointment {
	return &CreateExpressAppointment{
		create: create,
		clock:  clock,
	}
}

func (uc *CreateExpressAppointment) Execute(
	ctx context.Context,
	in CreateExpressInput,
) (*models.Appointment, error) {

	now := uc.clock.Now()

	notes := expressNote
	if extra := strings.TrimSpace(in.Notes); extra != "" {
		notes += " - " + extra
	}

	return uc.create.Execute(ctx, CreateAppointmentInput{
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		BarberID:  in.BarberID,
		Date:      timezone.DateOf(now),
		Start:     timezone.ClockOf(now),
		Notes:     notes,
	})
}
