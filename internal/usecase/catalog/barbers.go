package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/domain/record"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type Barbers struct {
	repo  domain.BarberRepository
	audit *audit.Dispatcher
}

func NewBarbers(repo domain.BarberRepository, audit *audit.Dispatcher) *Barbers {
	return &Barbers{repo: repo, audit: audit}
}

func (uc *Barbers) List(ctx context.Context) ([]models.Barber, error) {
	barbers, err := uc.repo.ListActiveBarbers(ctx)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	return barbers, nil
}

// Create adds a barber. Re-creating a deactivated barber reactivates it.
func (uc *Barbers) Create(ctx context.Context, name string) (*models.Barber, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	existing, err := uc.repo.FindBarberByName(ctx, name)
	switch {
	case err == nil && existing.Active:
		return nil, httperr.ErrBusiness(httperr.CodeBarberNameTaken)
	case err == nil:
		existing.Active = true
		if err := uc.repo.UpdateBarber(ctx, existing); err != nil {
			return nil, httperr.Storage(err)
		}
		uc.dispatch(audit.ActionBarberCreated, existing.ID)
		return existing, nil
	case !errors.Is(err, record.ErrNotFound):
		return nil, httperr.Storage(err)
	}

	b := &models.Barber{Name: name, Active: true}
	if err := uc.repo.CreateBarber(ctx, b); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.dispatch(audit.ActionBarberCreated, b.ID)
	return b, nil
}

func (uc *Barbers) Deactivate(ctx context.Context, id uint) error {
	b, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		return httperr.Lookup(err, httperr.CodeBarberNotFound)
	}
	if !b.Active {
		return nil
	}

	b.Active = false
	if err := uc.repo.UpdateBarber(ctx, b); err != nil {
		return httperr.Storage(err)
	}

	uc.dispatch(audit.ActionBarberDeactivated, b.ID)
	return nil
}

func (uc *Barbers) dispatch(action string, id uint) {
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "barber",
		EntityID: &id,
	})
}
