package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPlan(t *testing.T) {
	plan, err := LookupPlan("medium")
	require.NoError(t, err)
	assert.Equal(t, 20, plan.VCPUs)
	assert.Equal(t, 40, plan.MemoryGB)
	assert.Equal(t, 900, plan.Price)
}

func TestLookupPlanUnknown(t *testing.T) {
	_, err := LookupPlan("xlarge")
	require.Error(t, err)

	var invalid *InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestLookupStorageUnknown(t *testing.T) {
	_, err := LookupStorage("999")
	require.Error(t, err)

	var invalid *InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestPrice(t *testing.T) {
	testCases := []struct {
		planID    string
		storageID string
		expected  int
	}{
		{"small", "1000000000000", 600},
		{"small", "3000000000000", 750},
		{"medium", "1000000000000", 1000},
		{"medium", "2000000000000", 1090},
		{"large", "3000000000000", 1750},
	}
	for _, tc := range testCases {
		price, err := Price(tc.planID, tc.storageID)
		require.NoError(t, err, "price for %s/%s", tc.planID, tc.storageID)
		assert.Equal(t, tc.expected, price)
	}
}

// The combined price is never lower than either of its parts.
func TestPriceLowerBound(t *testing.T) {
	for planID, plan := range Plans() {
		for storageID, storage := range StorageOptions() {
			price, err := Price(planID, storageID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, price, plan.Price)
			assert.GreaterOrEqual(t, price, storage.Price)
		}
	}
}

func TestPriceUnknownSelections(t *testing.T) {
	_, err := Price("xlarge", "1000000000000")
	assert.Error(t, err)

	_, err = Price("small", "999")
	assert.Error(t, err)
}
