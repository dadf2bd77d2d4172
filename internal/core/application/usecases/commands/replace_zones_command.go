package commands

import (
	"errors"
	"fmt"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
	"zones/internal/pkg/guard"
)

var (
	ErrReplaceZonesCommandIsNotConstructed = errors.New(
		"ReplaceZonesCommand must be created via NewReplaceZonesCommand constructor",
	)
	ErrZoneTenantMismatch = errors.New("zone belongs to a different tenant")
	ErrDuplicateZoneName  = errors.New("zone names must be unique within one replacement")
)

// ReplaceZonesCommand represents a request to swap a tenant's full zone
// configuration for a new one. The desired zones are carried as fully
// constructed aggregates; the handler reconciles them against the stored set.
//
// An empty zone list is valid and clears the tenant's configuration,
// making every address undeliverable for that tenant.
type ReplaceZonesCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	zones    []*zone.DeliveryZone

	guard guard.ConstructorGuard
}

// NewReplaceZonesCommand creates a command to replace a tenant's zones.
// Every zone must belong to the given tenant and carry a name that is
// unique within the new configuration.
func NewReplaceZonesCommand(tenantID kernel.UUID, zones []*zone.DeliveryZone) (ReplaceZonesCommand, error) {
	command := ReplaceZonesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setZones(tenantID, zones),
	); err != nil {
		return ReplaceZonesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReplaceZonesCommandIsNotConstructed if validation fails.
func (c ReplaceZonesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceZonesCommandIsNotConstructed)
}

// TenantID returns the tenant whose zones are being replaced.
func (c ReplaceZonesCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Zones returns the desired zone configuration.
func (c ReplaceZonesCommand) Zones() []*zone.DeliveryZone {
	return c.zones
}

func (c *ReplaceZonesCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tenantID = id
	return nil
}

func (c *ReplaceZonesCommand) setZones(tenantID kernel.UUID, zones []*zone.DeliveryZone) error {
	seen := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
		if !z.TenantID().IsEqual(tenantID) {
			return fmt.Errorf("%w: zone %q", ErrZoneTenantMismatch, z.Name())
		}
		if _, ok := seen[z.Name()]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateZoneName, z.Name())
		}
		seen[z.Name()] = struct{}{}
	}

	c.zones = zones
	return nil
}
