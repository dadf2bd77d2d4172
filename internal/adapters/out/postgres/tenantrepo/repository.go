package tenantrepo

import (
	"context"
	"errors"

	"zones/internal/core/domain/model/kernel"
	"zones/internal/core/domain/model/tenant"
	"zones/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB, tracker aggregateTracker) *GormTenantRepository {
	return &GormTenantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tenant to the database.
func (r *GormTenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
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

// Update saves an existing tenant to the database. All columns are written,
// including a cleared active flag.
func (r *GormTenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TenantDTO{}).
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

// Get retrieves a tenant by ID.
func (r *GormTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a tenant by its URL-safe identifier.
func (r *GormTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	var dto TenantDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}
