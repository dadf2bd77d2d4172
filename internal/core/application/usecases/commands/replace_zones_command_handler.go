package commands

import (
	"context"
	"errors"

	"zones/internal/core/domain/model/zone"
	"zones/internal/pkg/errs"
)

// ReplaceZonesCommandHandler handles full replacement of a tenant's zone
// configuration. The stored set is reconciled against the desired set within
// one transaction, so quote requests running concurrently never observe a
// half-replaced configuration.
//
// Reconciliation is keyed by zone name:
//   - a desired zone whose name is unknown is inserted
//   - a desired zone whose name exists but whose definition changed is
//     updated in place, keeping the stored zone's identifier
//   - a desired zone identical to the stored one is left untouched
//   - a stored zone absent from the desired set is deleted
type ReplaceZonesCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewReplaceZonesCommandHandler creates a handler for zone replacement.
// Requires a ZoneUoWFactory for transactional persistence operations.
func NewReplaceZonesCommandHandler(uowFactory ZoneUoWFactory) ReplaceZonesCommandHandler {
	return ReplaceZonesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone replacement command.
// All inserts, updates and deletes happen in a single transaction.
func (h *ReplaceZonesCommandHandler) Handle(ctx context.Context, cmd ReplaceZonesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()

	existing, err := zoneRepo.GetAllByTenant(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	existingByName := make(map[string]*zone.DeliveryZone, len(existing))
	for _, z := range existing {
		existingByName[z.Name()] = z
	}

	desiredNames := make(map[string]struct{}, len(cmd.Zones()))
	for _, desired := range cmd.Zones() {
		desiredNames[desired.Name()] = struct{}{}

		stored, ok := existingByName[desired.Name()]
		if !ok {
			if err = zoneRepo.Add(ctx, desired); err != nil {
				return err
			}
			continue
		}

		if stored.SameDefinition(desired) && stored.IsActive() == desired.IsActive() {
			continue
		}

		updated, restoreErr := zone.RestoreDeliveryZone(
			stored.ID(),
			desired.TenantID(),
			desired.Name(),
			desired.DeliveryFee(),
			desired.MinOrder(),
			desired.Priority(),
			desired.PostalCodes(),
			desired.CityNames(),
			desired.CityParts(),
			desired.IsActive(),
		)
		if restoreErr != nil {
			return restoreErr
		}

		if err = zoneRepo.Update(ctx, updated); err != nil {
			return err
		}
	}

	for _, stored := range existing {
		if _, keep := desiredNames[stored.Name()]; keep {
			continue
		}

		if err = zoneRepo.Remove(ctx, stored.ID()); err != nil {
			// A concurrent replacement may already have removed it.
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
