package shipping

import (
	"testing"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimator_Quote_Regions(t *testing.T) {
	estimator := NewEstimator()

	tests := []struct {
		name       string
		postalCode string
		wantRegion string
		wantCost   int64
		wantETA    int
	}{
		{"attica metro", "11527", RegionAtticaMetro, 350, 2},
		{"attica lower bound", "10431", RegionAtticaMetro, 350, 2},
		{"attica upper bound", "19004", RegionAtticaMetro, 350, 2},
		{"thessaloniki", "54622", RegionThessaloniki, 368, 2},
		{"thessaloniki upper bound", "57001", RegionThessaloniki, 368, 2},
		{"major city patras", "26222", RegionMajorCity, 403, 3},
		{"major city larissa", "41222", RegionMajorCity, 403, 3},
		{"island crete", "71201", RegionIslands, 525, 4},
		{"island syros", "84100", RegionIslands, 525, 4},
		{"island corfu", "49100", RegionIslands, 525, 4},
		{"mainland remote", "33100", RegionMainlandRemote, 455, 3},
		{"mainland remote sparta", "23100", RegionMainlandRemote, 455, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := estimator.Quote(1000, tt.postalCode)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRegion, quote.Region)
			assert.Equal(t, tt.wantCost, quote.Cost)
			assert.Equal(t, tt.wantETA, quote.ETADays)
		})
	}
}

func TestEstimator_Quote_WeightTiers(t *testing.T) {
	estimator := NewEstimator()

	// Attica (multiplier 1.00) so the base cost shows through unchanged
	tests := []struct {
		name  string
		grams int64
		want  int64
	}{
		{"minimum weight", 1, 350},
		{"flat tier upper bound", 2000, 350},
		{"one started kg over 2kg", 2001, 410},
		{"two and a half kg", 2500, 410},
		{"second tier upper bound", 5000, 530},
		{"one started kg over 5kg", 5001, 580},
		{"seven point two kg", 7200, 680},
		{"third tier upper bound", 10000, 780},
		{"twelve kg", 12000, 870},
		{"fourth tier upper bound", 20000, 1230},
		{"just over 20kg", 20001, 1270},
		{"twenty five kg", 25000, 1430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := estimator.Quote(tt.grams, "11527")
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.Cost)
		})
	}
}

func TestEstimator_Quote_RoundsHalfUp(t *testing.T) {
	estimator := NewEstimator()

	// 350 * 1.05 = 367.5 rounds up to 368
	quote, err := estimator.Quote(1000, "54622")
	require.NoError(t, err)
	assert.Equal(t, int64(368), quote.Cost)

	// 350 * 1.15 = 402.5 rounds up to 403
	quote, err = estimator.Quote(1000, "26222")
	require.NoError(t, err)
	assert.Equal(t, int64(403), quote.Cost)
}

func TestEstimator_Quote_Carriers(t *testing.T) {
	estimator := NewEstimator()

	t.Run("standard courier on the mainland", func(t *testing.T) {
		quote, err := estimator.Quote(1000, "11527")
		require.NoError(t, err)
		assert.Equal(t, CarrierStandard, quote.Carrier)
	})

	t.Run("island courier for islands", func(t *testing.T) {
		quote, err := estimator.Quote(1000, "84100")
		require.NoError(t, err)
		assert.Equal(t, CarrierIsland, quote.Carrier)
	})

	t.Run("heavy freight above 20kg", func(t *testing.T) {
		quote, err := estimator.Quote(25000, "11527")
		require.NoError(t, err)
		assert.Equal(t, CarrierHeavyFreight, quote.Carrier)
	})

	t.Run("heavy freight wins over island", func(t *testing.T) {
		quote, err := estimator.Quote(25000, "84100")
		require.NoError(t, err)
		assert.Equal(t, CarrierHeavyFreight, quote.Carrier)
		assert.Equal(t, RegionIslands, quote.Region)
		// (1230 + 5*40) * 1.50
		assert.Equal(t, int64(2145), quote.Cost)
	})
}

func TestEstimator_Quote_InvalidInput(t *testing.T) {
	estimator := NewEstimator()

	tests := []struct {
		name       string
		grams      int64
		postalCode string
	}{
		{"zero weight", 0, "11527"},
		{"negative weight", -100, "11527"},
		{"postal code too short", 1000, "1"},
		{"empty postal code", 1000, ""},
		{"whitespace postal code", 1000, "   "},
		{"non-digit prefix", 1000, "AB123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := estimator.Quote(tt.grams, tt.postalCode)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		})
	}
}

func TestEstimator_Quote_TrimsPostalCode(t *testing.T) {
	estimator := NewEstimator()
	quote, err := estimator.Quote(1000, "  11527  ")
	require.NoError(t, err)
	assert.Equal(t, RegionAtticaMetro, quote.Region)
}
