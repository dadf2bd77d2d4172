package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ZoneAuditJob scans every tenant's active zones for pairs with equal
// priority and overlapping matchers. Such pairs are legal but ambiguous:
// an address inside the overlap resolves by the deterministic tie-break
// instead of an explicit priority, which usually means a misconfigured
// catalog. The job surfaces them nightly so operators can fix priorities.
type ZoneAuditJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// auditRecord is the projection of one active zone the audit runs over.
type auditRecord struct {
	TenantID    uuid.UUID
	ZoneID      uuid.UUID
	Name        string
	Priority    int
	PostalCodes pq.StringArray `gorm:"type:text[]"`
	CityNames   pq.StringArray `gorm:"type:text[]"`
	CityParts   pq.StringArray `gorm:"type:text[]"`
}

// zoneOverlap describes one ambiguous pair found by the audit.
type zoneOverlap struct {
	TenantID uuid.UUID
	Priority int
	First    auditRecord
	Second   auditRecord
}

// NewZoneAuditJob creates a nightly audit over the zone configuration.
func NewZoneAuditJob(db *gorm.DB, logger *slog.Logger) *ZoneAuditJob {
	return &ZoneAuditJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "zone_audit_job"),
	}
}

// Start schedules the audit to run nightly at 03:00.
func (j *ZoneAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()
		if runErr := j.RunOnce(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Zone audit job failed", "error", runErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone audit job started (running nightly)")
	return nil
}

// Stop stops the zone audit job.
func (j *ZoneAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Zone audit job stopped")
}

// RunOnce executes one audit pass over all tenants and logs every
// ambiguous pair it finds.
func (j *ZoneAuditJob) RunOnce(ctx context.Context) error {
	var records []auditRecord

	err := j.db.WithContext(ctx).Raw(`
		SELECT
			tenant_id,
			id AS zone_id,
			name,
			priority,
			postal_codes,
			city_names,
			city_parts
		FROM delivery_zones
		WHERE is_active
		ORDER BY tenant_id, priority DESC, id
	`).Scan(&records).Error
	if err != nil {
		return err
	}

	overlaps := detectOverlaps(records)
	for _, overlap := range overlaps {
		j.logger.WarnContext(ctx, "equal-priority zones overlap",
			"tenant_id", overlap.TenantID.String(),
			"priority", overlap.Priority,
			"zone", overlap.First.Name,
			"zone_id", overlap.First.ZoneID.String(),
			"other_zone", overlap.Second.Name,
			"other_zone_id", overlap.Second.ZoneID.String(),
		)
	}

	j.logger.InfoContext(ctx, "zone audit completed",
		"zones_scanned", len(records),
		"overlaps_found", len(overlaps),
	)
	return nil
}

// detectOverlaps finds same-tenant, equal-priority pairs whose matchers can
// both claim some address. Matcher values are stored canonicalized, so plain
// set intersection is sufficient.
func detectOverlaps(records []auditRecord) []zoneOverlap {
	byTenant := make(map[uuid.UUID][]auditRecord)
	for _, r := range records {
		byTenant[r.TenantID] = append(byTenant[r.TenantID], r)
	}

	var overlaps []zoneOverlap
	for tenantID, zones := range byTenant {
		for i := 0; i < len(zones); i++ {
			for k := i + 1; k < len(zones); k++ {
				a, b := zones[i], zones[k]
				if a.Priority != b.Priority {
					continue
				}
				if matchersOverlap(a, b) {
					overlaps = append(overlaps, zoneOverlap{
						TenantID: tenantID,
						Priority: a.Priority,
						First:    a,
						Second:   b,
					})
				}
			}
		}
	}

	return overlaps
}

// matchersOverlap reports whether some address could satisfy both zones'
// matchers: a shared postal code, or a shared city where the city-part
// restrictions (empty means the whole city) intersect.
func matchersOverlap(a, b auditRecord) bool {
	if intersects(a.PostalCodes, b.PostalCodes) {
		return true
	}

	if !intersects(a.CityNames, b.CityNames) {
		return false
	}

	if len(a.CityParts) == 0 || len(b.CityParts) == 0 {
		return true
	}

	return intersects(a.CityParts, b.CityParts)
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}
