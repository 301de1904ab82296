package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// Implementations return record.ErrNotFound for missing rows.

type ClientRepository interface {
	// ListClients matches query against name and phone, and phoneDigits (when
	// not empty) against the stored phone. Empty query lists all named clients.
	// The walk-in client is never listed.
	ListClients(ctx context.Context, query, phoneDigits string) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetWalkInClient(ctx context.Context) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error
}

type ServiceRepository interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
}

type BarberRepository interface {
	ListActiveBarbers(ctx context.Context) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	FindBarberByName(ctx context.Context, name string) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	UpdateBarber(ctx context.Context, b *models.Barber) error
}

type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SaveSettings(ctx context.Context, values map[string]string) error
}
