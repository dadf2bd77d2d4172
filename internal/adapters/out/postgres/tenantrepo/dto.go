// Package tenantrepo provides data transfer objects and mapping functions for
// tenant persistence.
package tenantrepo

import (
	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// TenantDTO represents the database structure for persisting tenant aggregates.
type TenantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Slug     string    `gorm:"uniqueIndex;not null"`
	IsActive bool
}

// TableName specifies the database table name for tenant entities.
func (TenantDTO) TableName() string {
	return "tenants"
}

// fromDomain converts a tenant domain aggregate to its database representation.
func fromDomain(t *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:       t.ID().Bytes(),
		Name:     t.Name(),
		Slug:     t.Slug(),
		IsActive: t.IsActive(),
	}
}

// toDomain converts a database DTO to a tenant domain aggregate.
func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tenant.RestoreTenant(id, dto.Name, dto.Slug, dto.IsActive)
}
