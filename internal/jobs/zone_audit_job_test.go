package jobs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(tenantID uuid.UUID, name string, priority int, postals, cities, parts []string) auditRecord {
	return auditRecord{
		TenantID:    tenantID,
		ZoneID:      uuid.New(),
		Name:        name,
		Priority:    priority,
		PostalCodes: postals,
		CityNames:   cities,
		CityParts:   parts,
	}
}

func TestDetectOverlaps_SharedPostalCodeSamePriority(t *testing.T) {
	tenantID := uuid.New()
	records := []auditRecord{
		record(tenantID, "Centrum", 20, []string{"81101", "81102"}, nil, nil),
		record(tenantID, "Nivy", 20, []string{"81102", "82109"}, nil, nil),
	}

	overlaps := detectOverlaps(records)

	require.Len(t, overlaps, 1)
	assert.Equal(t, tenantID, overlaps[0].TenantID)
	assert.Equal(t, 20, overlaps[0].Priority)
}

func TestDetectOverlaps_DifferentPrioritiesNeverFlagged(t *testing.T) {
	tenantID := uuid.New()
	records := []auditRecord{
		record(tenantID, "Centrum", 30, []string{"81101"}, nil, nil),
		record(tenantID, "Nivy", 20, []string{"81101"}, nil, nil),
	}

	overlaps := detectOverlaps(records)

	assert.Empty(t, overlaps)
}

func TestDetectOverlaps_DifferentTenantsNeverFlagged(t *testing.T) {
	records := []auditRecord{
		record(uuid.New(), "Centrum", 20, []string{"81101"}, nil, nil),
		record(uuid.New(), "Centrum", 20, []string{"81101"}, nil, nil),
	}

	overlaps := detectOverlaps(records)

	assert.Empty(t, overlaps)
}

func TestDetectOverlaps_WholeCityOverlapsDistrictZone(t *testing.T) {
	tenantID := uuid.New()
	records := []auditRecord{
		// Empty city parts means the zone covers the whole city.
		record(tenantID, "Cele mesto", 10, nil, []string{"bratislava"}, nil),
		record(tenantID, "Ruzinov", 10, nil, []string{"bratislava"}, []string{"ruzinov"}),
	}

	overlaps := detectOverlaps(records)

	require.Len(t, overlaps, 1)
}

func TestDetectOverlaps_DisjointDistrictsSameCity(t *testing.T) {
	tenantID := uuid.New()
	records := []auditRecord{
		record(tenantID, "Ruzinov", 10, nil, []string{"bratislava"}, []string{"ruzinov"}),
		record(tenantID, "Petrzalka", 10, nil, []string{"bratislava"}, []string{"petrzalka"}),
	}

	overlaps := detectOverlaps(records)

	assert.Empty(t, overlaps)
}

func TestDetectOverlaps_DisjointMatchers(t *testing.T) {
	tenantID := uuid.New()
	records := []auditRecord{
		record(tenantID, "Centrum", 20, []string{"81101"}, []string{"bratislava"}, []string{"stare mesto"}),
		record(tenantID, "Senec", 20, []string{"90301"}, []string{"senec"}, nil),
	}

	overlaps := detectOverlaps(records)

	assert.Empty(t, overlaps)
}
