package queries

import (
	"context"

	"zones/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetZonesQueryHandler retrieves zone configuration from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetZonesQueryHandler creates a handler for zone configuration queries.
// Requires a GORM database connection for query execution.
func NewGetZonesQueryHandler(db *gorm.DB) GetZonesQueryHandler {
	return GetZonesQueryHandler{db: db}
}

// Handle executes the query to retrieve a tenant's zones.
// Returns zone read models sorted by priority descending, then by name, so
// the configuration surface lists zones in resolution order.
func (h GetZonesQueryHandler) Handle(
	ctx context.Context,
	query GetZonesQuery,
) ([]GetZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetZonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			delivery_fee_cents,
			min_order_cents,
			priority,
			postal_codes,
			city_names,
			city_parts,
			is_active
		FROM delivery_zones
		WHERE tenant_id = ?
		ORDER BY priority DESC, name
	`, query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var z GetZonesQueryResponse
		var id uuid.UUID
		var postalCodes, cityNames, cityParts pq.StringArray

		err = rows.Scan(
			&id,
			&z.Name,
			&z.FeeCents,
			&z.MinOrderCents,
			&z.Priority,
			&postalCodes,
			&cityNames,
			&cityParts,
			&z.IsActive,
		)
		if err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		z.ID = zoneID
		z.PostalCodes = postalCodes
		z.CityNames = cityNames
		z.CityParts = cityParts

		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
