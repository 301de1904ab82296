package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type ReassignClientInput struct {
	AppointmentID uint
	ClientID      uint
	// Confirm must be set to move an appointment away from a named client.
	Confirm bool
}

// ReassignClient attributes a walk-in booking to a registered client after the fact.
type ReassignClient struct {
	repo    domain.Repository
	catalog Catalog
	audit   *audit.Dispatcher
}

func NewReassignClient(
	repo domain.Repository,
	catalog Catalog,
	audit *audit.Dispatcher,
) *ReassignClient {
	return &ReassignClient{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

func (uc *ReassignClient) Execute(
	ctx context.Context,
	in ReassignClientInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}

	target, err := uc.catalog.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
	}

	if ap.ClientID == target.ID {
		return ap, nil
	}

	current, err := uc.catalog.GetClient(ctx, ap.ClientID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeClientNotFound)
	}
	if !current.WalkIn && !in.Confirm {
		return nil, httperr.ErrBusiness(httperr.CodeConfirmationRequired)
	}

	if err := uc.repo.SetClient(ctx, ap.ID, target.ID); err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}
	previous := ap.ClientID
	ap.ClientID = target.ID
	ap.Client = *target

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentReassign,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from_client_id": previous,
			"to_client_id":   target.ID,
		},
	})

	return ap, nil
}
