package payment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type Repository interface {
	// RegisterPayment inserts p and moves its appointment from Pending to Paid
	// in one transaction. A closed appointment yields already_closed and no rows.
	RegisterPayment(
		ctx context.Context,
		p *models.Payment,
		paidAt time.Time,
	) error

	GetPaymentForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Payment, error)
}
