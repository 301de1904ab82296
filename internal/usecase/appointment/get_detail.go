package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

// GetAppointmentDetail builds the ticket of one appointment, payment included once paid.
type GetAppointmentDetail struct {
	repo     domain.Repository
	payments payment.Repository
}

func NewGetAppointmentDetail(
	repo domain.Repository,
	payments payment.Repository,
) *GetAppointmentDetail {
	return &GetAppointmentDetail{
		repo:     repo,
		payments: payments,
	}
}

func (uc *GetAppointmentDetail) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentDetail(ctx, appointmentID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}

	out := &dto.AppointmentDetailDTO{
		AppointmentListDTO: dto.NewAppointmentListDTO(*ap),
		ClientPhone:        ap.Client.Phone,
		ServiceDuration:    ap.Service.DurationMin,
		CancelledAt:        ap.CancelledAt,
		PaidAt:             ap.PaidAt,
	}

	if domain.Status(ap.Status) == domain.StatusPaid {
		p, err := uc.payments.GetPaymentForAppointment(ctx, ap.ID)
		if err != nil {
			return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
		}
		pd := dto.NewPaymentDTO(*p)
		out.Payment = &pd
	}

	return out, nil
}
