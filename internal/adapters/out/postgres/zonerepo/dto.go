// Package zonerepo provides data transfer objects and mapping functions for
// delivery zone persistence. It implements the repository pattern for the
// zone aggregate, converting between domain entities and database rows.
package zonerepo

import (
	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
// The matcher sets are stored as postgres text[] columns; entries are already
// canonical when they reach this layer, so queries never need to normalize.
type ZoneDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID      `gorm:"type:uuid;index"`
	Name             string         `gorm:"not null"`
	DeliveryFeeCents int64          `gorm:"not null"`
	MinOrderCents    *int64         `gorm:""`
	Priority         int            `gorm:"not null"`
	PostalCodes      pq.StringArray `gorm:"type:text[]"`
	CityNames        pq.StringArray `gorm:"type:text[]"`
	CityParts        pq.StringArray `gorm:"type:text[]"`
	IsActive         bool           `gorm:"index"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "delivery_zones"
}

// fromDomain converts a zone domain aggregate to its database representation.
func fromDomain(z *zone.DeliveryZone) ZoneDTO {
	var minOrderCents *int64
	if minOrder := z.MinOrder(); minOrder != nil {
		cents := minOrder.Cents()
		minOrderCents = &cents
	}

	return ZoneDTO{
		ID:               z.ID().Bytes(),
		TenantID:         z.TenantID().Bytes(),
		Name:             z.Name(),
		DeliveryFeeCents: z.DeliveryFee().Cents(),
		MinOrderCents:    minOrderCents,
		Priority:         z.Priority(),
		PostalCodes:      z.PostalCodes(),
		CityNames:        z.CityNames(),
		CityParts:        z.CityParts(),
		IsActive:         z.IsActive(),
	}
}

// toDomain converts a database DTO to a zone domain aggregate using
// RestoreDeliveryZone, so the active flag survives the round trip.
func toDomain(dto ZoneDTO) (*zone.DeliveryZone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	var minOrder *kernel.Money
	if dto.MinOrderCents != nil {
		m, minErr := kernel.NewMoney(*dto.MinOrderCents)
		if minErr != nil {
			return nil, minErr
		}
		minOrder = &m
	}

	return zone.RestoreDeliveryZone(id, tenantID, dto.Name, fee, minOrder, dto.Priority,
		dto.PostalCodes, dto.CityNames, dto.CityParts, dto.IsActive)
}
