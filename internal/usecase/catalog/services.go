package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type ServiceInput struct {
	Name        string
	Description string
	DurationMin int
	Price       decimal.Decimal
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}
	if in.DurationMin <= 0 || in.DurationMin >= 24*60 {
		return httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}
	if in.Price.IsNegative() {
		return httperr.ErrBusiness(httperr.CodeInvalidPrice)
	}
	return nil
}

// Services manages the service menu. Services are deactivated, never deleted,
// so past appointments keep their reference.
type Services struct {
	repo  domain.ServiceRepository
	audit *audit.Dispatcher
}

func NewServices(repo domain.ServiceRepository, audit *audit.Dispatcher) *Services {
	return &Services{repo: repo, audit: audit}
}

func (uc *Services) List(ctx context.Context) ([]models.Service, error) {
	services, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	return services, nil
}

func (uc *Services) Create(ctx context.Context, in ServiceInput) (*models.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		DurationMin: in.DurationMin,
		Price:       in.Price.Round(2),
		Active:      true,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.dispatch(audit.ActionServiceSaved, s.ID)
	return s, nil
}

// Update changes the menu entry; prices of existing appointments stay frozen.
func (uc *Services) Update(ctx context.Context, id uint, in ServiceInput) (*models.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeServiceNotFound)
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Description = strings.TrimSpace(in.Description)
	s.DurationMin = in.DurationMin
	s.Price = in.Price.Round(2)

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.dispatch(audit.ActionServiceSaved, s.ID)
	return s, nil
}

func (uc *Services) Deactivate(ctx context.Context, id uint) error {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return httperr.Lookup(err, httperr.CodeServiceNotFound)
	}
	if !s.Active {
		return nil
	}

	s.Active = false
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return httperr.Storage(err)
	}

	uc.dispatch(audit.ActionServiceDeactivated, s.ID)
	return nil
}

func (uc *Services) dispatch(action string, id uint) {
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "service",
		EntityID: &id,
	})
}
