package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type BusinessHours struct {
	repo  domain.SettingsRepository
	audit *audit.Dispatcher
}

func NewBusinessHours(repo domain.SettingsRepository, audit *audit.Dispatcher) *BusinessHours {
	return &BusinessHours{repo: repo, audit: audit}
}

func (uc *BusinessHours) Get(ctx context.Context) (domain.BusinessHours, error) {
	h, err := domain.LoadHours(ctx, uc.repo)
	if err != nil {
		return domain.BusinessHours{}, httperr.Storage(err)
	}
	return h, nil
}

func (uc *BusinessHours) Update(ctx context.Context, in domain.BusinessHours) (domain.BusinessHours, error) {
	h := domain.BusinessHours{
		Opening: appointment.AddMinutes(in.Opening, 0),
		Closing: appointment.AddMinutes(in.Closing, 0),
	}
	if err := h.Validate(); err != nil {
		return domain.BusinessHours{}, err
	}

	if err := uc.repo.SaveSettings(ctx, map[string]string{
		models.SettingOpening: h.Opening,
		models.SettingClosing: h.Closing,
	}); err != nil {
		return domain.BusinessHours{}, httperr.Storage(err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionHoursUpdated,
		Entity:   "settings",
		Metadata: h,
	})
	return h, nil
}
