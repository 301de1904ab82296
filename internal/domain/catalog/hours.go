package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

const (
	DefaultOpening = "08:00"
	DefaultClosing = "18:00"
)

// BusinessHours is the shop's daily opening window.
type BusinessHours struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

func (h BusinessHours) Validate() error {
	if _, err := appointment.NewInterval(h.Opening, h.Closing); err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}
	return nil
}

func (h BusinessHours) Interval() (appointment.Interval, error) {
	return appointment.NewInterval(h.Opening, h.Closing)
}

// LoadHours reads the opening window, falling back to the defaults for unset keys.
func LoadHours(ctx context.Context, repo SettingsRepository) (BusinessHours, error) {
	h := BusinessHours{Opening: DefaultOpening, Closing: DefaultClosing}

	for key, dst := range map[string]*string{
		models.SettingOpening: &h.Opening,
		models.SettingClosing: &h.Closing,
	} {
		v, err := repo.GetSetting(ctx, key)
		switch {
		case errors.Is(err, record.ErrNotFound):
		case err != nil:
			return BusinessHours{}, err
		default:
			*dst = v
		}
	}
	return h, nil
}
