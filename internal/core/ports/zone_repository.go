package ports

import (
	"context"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for delivery zone
// aggregates. Zones are written only by administrative flows; the quote path
// reads them as a per-call snapshot.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	// The zone must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *zone.DeliveryZone) error

	// Update persists changes to an existing zone aggregate.
	// The zone must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *zone.DeliveryZone) error

	// Remove deletes a zone aggregate from storage by its identifier.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a zone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.DeliveryZone, error)

	// GetAllByTenant retrieves every zone configured for a tenant, active or
	// not. Used by administrative flows such as bulk replacement.
	GetAllByTenant(ctx context.Context, tenantID kernel.UUID) ([]*zone.DeliveryZone, error)

	// GetActiveByTenant retrieves the active zone snapshot for a tenant.
	// An empty result is a valid configuration state, not an error; the
	// quote path treats it as "nothing is deliverable".
	GetActiveByTenant(ctx context.Context, tenantID kernel.UUID) ([]*zone.DeliveryZone, error)
}
