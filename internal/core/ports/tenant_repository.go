package ports

import (
	"context"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenant aggregates.
type TenantRepository interface {
	// Add persists a new tenant aggregate to storage.
	// The tenant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// Update persists changes to an existing tenant aggregate.
	Update(ctx context.Context, aggregate *tenant.Tenant) error

	// Get retrieves a tenant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// GetBySlug retrieves a tenant aggregate by its URL-safe identifier.
	GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)
}
