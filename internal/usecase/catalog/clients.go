package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
	"github.com/BruksfildServices01/barber-pos/internal/validators"
)

type ClientInput struct {
	Name  string
	Phone string
	Email string
}

// Clients manages the client book. The walk-in client is neither listed nor editable.
type Clients struct {
	repo         domain.ClientRepository
	appointments appointment.Repository
	phoneRegion  string
	clock        timezone.Clock
	audit        *audit.Dispatcher
}

func NewClients(
	repo domain.ClientRepository,
	appointments appointment.Repository,
	phoneRegion string,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *Clients {
	return &Clients{
		repo:         repo,
		appointments: appointments,
		phoneRegion:  phoneRegion,
		clock:        clock,
		audit:        audit,
	}
}

func (uc *Clients) List(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := uc.repo.ListClients(ctx, query, validators.PhoneSearchDigits(query, uc.phoneRegion))
	if err != nil {
		return nil, httperr.Storage(err)
	}
	return clients, nil
}

func (uc *Clients) Create(ctx context.Context, in ClientInput) (*models.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	c := &models.Client{
		Name:         name,
		Phone:        validators.NormalizePhone(in.Phone, uc.phoneRegion),
		Email:        strings.TrimSpace(in.Email),
		RegisteredOn: timezone.DateOf(uc.clock.Now()),
	}
	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   "client",
		EntityID: &c.ID,
	})
	return c, nil
}

func (uc *Clients) Update(ctx context.Context, id uint, in ClientInput) (*models.Client, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
	}
	if c.WalkIn {
		return nil, httperr.ErrBusiness(httperr.CodeWalkInProtected)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	c.Name = name
	c.Phone = validators.NormalizePhone(in.Phone, uc.phoneRegion)
	c.Email = strings.TrimSpace(in.Email)

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, httperr.Storage(err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientUpdated,
		Entity:   "client",
		EntityID: &c.ID,
	})
	return c, nil
}

// History lists a client's non-cancelled appointments, newest first.
func (uc *Clients) History(ctx context.Context, id uint) ([]dto.AppointmentListDTO, error) {
	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
	}
	if c.WalkIn {
		return nil, httperr.ErrBusiness(httperr.CodeWalkInProtected)
	}

	apps, err := uc.appointments.ListClientHistory(ctx, c.ID)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		ap.Client = *c
		out = append(out, dto.NewAppointmentListDTO(ap))
	}
	return out, nil
}
