package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// Repository is the appointment data-access contract. Implementations return
// record.ErrNotFound for missing rows.
type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentDetail preloads client, service and barber.
	GetAppointmentDetail(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// MarkCancelled moves a Pending appointment to Cancelled. It reports false,
	// without error, when the appointment was no longer Pending.
	MarkCancelled(
		ctx context.Context,
		id uint,
		at time.Time,
	) (bool, error)

	SetClient(
		ctx context.Context,
		id uint,
		clientID uint,
	) error

	// ListActiveForBarber returns the non-cancelled appointments of a barber on a date.
	ListActiveForBarber(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// ListBetween returns appointments dated within [from, to] with client,
	// service and barber loaded. barberID 0 means every barber.
	ListBetween(
		ctx context.Context,
		from string,
		to string,
		barberID uint,
	) ([]models.Appointment, error)

	// ListClientHistory excludes cancelled appointments, newest first.
	ListClientHistory(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
