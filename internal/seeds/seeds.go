// Package seeds loads the initial tenant and zone catalogs.
//
// Seeding is idempotent: tenants are created only when missing, and zone
// catalogs go through the same transactional replacement as the public
// configuration API, so a rerun converges on the same state and an
// interrupted run never leaves a tenant half-configured.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"zones/internal/core/application/usecases/commands"
	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/tenant"
	"zones/internal/core/domain/model/zone"
	"zones/internal/core/ports"
	"zones/internal/pkg/errs"

	"github.com/google/uuid"
)

type zoneSeed struct {
	name          string
	feeCents      int64
	minOrderCents *int64
	priority      int
	postalCodes   []string
	cityNames     []string
	cityParts     []string
}

type tenantSeed struct {
	name  string
	slug  string
	zones []zoneSeed
}

func minOrder(cents int64) *int64 {
	return &cents
}

// catalog is the initial platform configuration: two pizzeria storefronts
// delivering within Bratislava. Zone numbering follows the city's own
// delivery-zone convention.
var catalog = []tenantSeed{
	{
		name: "Pizza Presto",
		slug: "pizza-presto",
		zones: []zoneSeed{
			{
				name: "ZONA1 (Staré Mesto)", feeCents: 0, priority: 20,
				postalCodes: []string{
					"81101", "81102", "81103", "81104", "81105",
					"81106", "81107", "81108", "81109",
				},
				cityNames: []string{"Bratislava"},
				cityParts: []string{"Staré Mesto"},
			},
			{
				name: "ZONA4 (Dúbravka)", feeCents: 250, priority: 20,
				postalCodes: []string{"84101", "84102"},
				cityNames:   []string{"Bratislava"},
				cityParts:   []string{"Dúbravka"},
			},
			{
				name: "ZONA8 (Vrakuňa)", feeCents: 0, priority: 20,
				postalCodes: []string{"82107", "82110"},
				cityNames:   []string{"Bratislava"},
				cityParts:   []string{"Vrakuňa"},
			},
			{
				name: "ZONA15 (Jarovce, Rusovce, Čunovo)", feeCents: 0,
				minOrderCents: minOrder(3000), priority: 30,
				postalCodes: []string{"85108", "85110"},
				cityNames:   []string{"Bratislava"},
				cityParts:   []string{"Jarovce", "Rusovce", "Čunovo"},
			},
		},
	},
	{
		name: "Pasta Palazzo",
		slug: "pasta-palazzo",
		zones: []zoneSeed{
			{
				name: "Centrum", feeCents: 150, priority: 20,
				postalCodes: []string{"81101", "81102", "81103"},
				cityNames:   []string{"Bratislava"},
				cityParts:   []string{"Staré Mesto"},
			},
			{
				name: "Ružinov", feeCents: 300, minOrderCents: minOrder(2000), priority: 10,
				postalCodes: []string{"82101", "82102", "82109"},
				cityNames:   []string{"Bratislava"},
				cityParts:   []string{"Ružinov"},
			},
		},
	},
}

// Seeder applies the initial catalog through the same use cases the public
// API runs.
type Seeder struct {
	uowFactory   ports.UnitOfWorkFactory
	replaceZones commands.ReplaceZonesCommandHandler
	logger       *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(
	uowFactory ports.UnitOfWorkFactory,
	replaceZones commands.ReplaceZonesCommandHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		uowFactory:   uowFactory,
		replaceZones: replaceZones,
		logger:       logger.With("component", "seeder"),
	}
}

// Apply loads every seed tenant and its zone catalog. Safe to rerun.
func (s *Seeder) Apply(ctx context.Context) error {
	for _, seed := range catalog {
		tenantID, err := s.ensureTenant(ctx, seed)
		if err != nil {
			return fmt.Errorf("seed tenant %q: %w", seed.slug, err)
		}

		zones, err := buildZones(tenantID, seed.zones)
		if err != nil {
			return fmt.Errorf("seed zones for %q: %w", seed.slug, err)
		}

		cmd, err := commands.NewReplaceZonesCommand(tenantID, zones)
		if err != nil {
			return fmt.Errorf("seed zones for %q: %w", seed.slug, err)
		}

		if err = s.replaceZones.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed zones for %q: %w", seed.slug, err)
		}

		s.logger.InfoContext(ctx, "tenant seeded",
			"slug", seed.slug, "zones", len(seed.zones))
	}

	return nil
}

// ensureTenant creates the tenant when missing and returns its identifier.
func (s *Seeder) ensureTenant(ctx context.Context, seed tenantSeed) (kernel.UUID, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenantRepo := uow.TenantRepository()

	existing, err := tenantRepo.GetBySlug(ctx, seed.slug)
	if err == nil {
		if rollbackErr := uow.Rollback(ctx); rollbackErr != nil {
			return kernel.UUID{}, rollbackErr
		}
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	tenantID, err := deterministicUUID("tenant:" + seed.slug)
	if err != nil {
		return kernel.UUID{}, err
	}

	tenantEntity, err := tenant.NewTenant(tenantID, seed.name, seed.slug)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = tenantRepo.Add(ctx, tenantEntity); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return tenantID, nil
}

func buildZones(tenantID kernel.UUID, seedZones []zoneSeed) ([]*zone.DeliveryZone, error) {
	zones := make([]*zone.DeliveryZone, 0, len(seedZones))
	for _, seed := range seedZones {
		zoneID, err := deterministicUUID("zone:" + tenantID.String() + ":" + seed.name)
		if err != nil {
			return nil, err
		}

		fee, err := kernel.NewMoney(seed.feeCents)
		if err != nil {
			return nil, err
		}

		var min *kernel.Money
		if seed.minOrderCents != nil {
			m, minErr := kernel.NewMoney(*seed.minOrderCents)
			if minErr != nil {
				return nil, minErr
			}
			min = &m
		}

		z, err := zone.NewDeliveryZone(zoneID, tenantID, seed.name, fee, min,
			seed.priority, seed.postalCodes, seed.cityNames, seed.cityParts)
		if err != nil {
			return nil, err
		}

		zones = append(zones, z)
	}

	return zones, nil
}

// deterministicUUID derives a stable identifier from a seed key, so reruns
// reference the same tenants and zones.
func deterministicUUID(key string) (kernel.UUID, error) {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	return kernel.UUIDFromBytes(id[:])
}
