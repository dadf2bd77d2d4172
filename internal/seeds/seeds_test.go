package seeds

import (
	"testing"

	"zones/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_BuildsValidZones(t *testing.T) {
	for _, seed := range catalog {
		t.Run(seed.slug, func(t *testing.T) {
			tenantID, err := deterministicUUID("tenant:" + seed.slug)
			require.NoError(t, err)

			zones, err := buildZones(tenantID, seed.zones)
			require.NoError(t, err)
			require.Len(t, zones, len(seed.zones))

			for _, z := range zones {
				assert.NoError(t, z.Validate())
				assert.True(t, z.TenantID().IsEqual(tenantID))
				assert.True(t, z.IsActive())
			}
		})
	}
}

func TestCatalog_CoversCityZoneScenarios(t *testing.T) {
	tenantID, err := deterministicUUID("tenant:pizza-presto")
	require.NoError(t, err)

	zones, err := buildZones(tenantID, catalog[0].zones)
	require.NoError(t, err)

	addr := func(cityPart, postalCode string) kernel.Address {
		a, addrErr := kernel.NewAddress("Bratislava", cityPart, postalCode)
		require.NoError(t, addrErr)
		return a
	}

	var matchedNames []string
	for _, z := range zones {
		if z.MatchesAddress(addr("", "81105")) {
			matchedNames = append(matchedNames, z.Name())
		}
	}
	assert.Equal(t, []string{"ZONA1 (Staré Mesto)"}, matchedNames)

	var jarovce []string
	for _, z := range zones {
		if z.MatchesAddress(addr("Jarovce", "85108")) {
			jarovce = append(jarovce, z.Name())
		}
	}
	require.Len(t, jarovce, 1)
	assert.Equal(t, "ZONA15 (Jarovce, Rusovce, Čunovo)", jarovce[0])

	for _, z := range zones {
		if z.Name() == jarovce[0] {
			require.NotNil(t, z.MinOrder())
			assert.Equal(t, int64(3000), z.MinOrder().Cents())
		}
	}
}

func TestDeterministicUUID_StableAcrossRuns(t *testing.T) {
	first, err := deterministicUUID("tenant:pizza-presto")
	require.NoError(t, err)

	second, err := deterministicUUID("tenant:pizza-presto")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))

	other, err := deterministicUUID("tenant:pasta-palazzo")
	require.NoError(t, err)
	assert.False(t, first.IsEqual(other))
}
