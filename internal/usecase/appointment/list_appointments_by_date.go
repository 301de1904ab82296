package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lists the day's agenda ordered by start time. barberID 0 lists every barber.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
	barberID uint,
) ([]dto.AppointmentListDTO, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	appointments, err := uc.repo.ListBetween(ctx, date, date, barberID)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentListDTO(ap))
	}
	return out
}
