// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/pkg/guard"
)

var (
	ErrGetZonesQueryIsNotConstructed = errors.New(
		"GetZonesQuery must be created via NewGetZonesQuery constructor",
	)
)

// GetZonesQuery retrieves the full zone configuration of one tenant,
// active and inactive alike. Used by the configuration surface, not by
// quote resolution.
//
// Example:
//
//	query, err := NewGetZonesQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//
//	zones, err := handler.Handle(ctx, query)
//	for _, z := range zones {
//	    fmt.Printf("%s (priority %d, fee %s)\n", z.Name, z.Priority, z.DeliveryFee)
//	}
type GetZonesQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetZonesQuery creates a query to retrieve a tenant's zones.
func NewGetZonesQuery(tenantID kernel.UUID) (GetZonesQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetZonesQuery{}, err
	}

	return GetZonesQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetZonesQueryIsNotConstructed if validation fails.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// TenantID returns the tenant whose zones are requested.
func (q GetZonesQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// GetZonesQueryResponse represents one zone in the configuration read model.
// Money values are integer cents; MinOrderCents is nil when the zone has no
// minimum order value.
type GetZonesQueryResponse struct {
	ID            kernel.UUID
	Name          string
	FeeCents      int64
	MinOrderCents *int64
	Priority      int
	PostalCodes   []string
	CityNames     []string
	CityParts     []string
	IsActive      bool
}
