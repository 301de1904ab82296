package appointment

import (
	"github.com/BruksfildServices01/barber-pos/internal/domain/catalog"
)

// Catalog is the read side of clients, services and barbers used when booking.
type Catalog interface {
	catalog.ClientRepository
	catalog.ServiceRepository
	catalog.BarberRepository
}
