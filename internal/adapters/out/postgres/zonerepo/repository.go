package zonerepo

import (
	"context"
	"errors"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/zone"
	"zones/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.DeliveryZone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing zone to the database. All columns are written,
// including zero values such as a cleared active flag or a removed minimum.
func (r *GormZoneRepository) Update(ctx context.Context, aggregate *zone.DeliveryZone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ZoneDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes a zone from the database by its identifier.
func (r *GormZoneRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ZoneDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("zone", id.String())
	}

	return nil
}

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.DeliveryZone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByTenant retrieves every zone configured for a tenant, active or not.
func (r *GormZoneRepository) GetAllByTenant(ctx context.Context, tenantID kernel.UUID) ([]*zone.DeliveryZone, error) {
	return r.findByTenant(ctx, tenantID, false)
}

// GetActiveByTenant retrieves the active zone snapshot for a tenant.
// An empty result means nothing is deliverable for this tenant; it is not
// an error.
func (r *GormZoneRepository) GetActiveByTenant(ctx context.Context, tenantID kernel.UUID) ([]*zone.DeliveryZone, error) {
	return r.findByTenant(ctx, tenantID, true)
}

func (r *GormZoneRepository) findByTenant(
	ctx context.Context, tenantID kernel.UUID, activeOnly bool,
) ([]*zone.DeliveryZone, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID.Bytes())
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var dtos []ZoneDTO
	if err := query.Order("priority DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*zone.DeliveryZone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, z)
	}

	return result, nil
}
