package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHealthScore(t *testing.T) {
	t.Run("strong sender", func(t *testing.T) {
		// delivery 96%, bounce 1%, complaint 0.05%, open 20%, click 4%
		score := ComputeHealthScore(DeliveryMetrics{
			DeliveryRate:  96,
			BounceRate:    1,
			ComplaintRate: 0.05,
			OpenRate:      20,
			ClickRate:     4,
		})

		// 96*.30 + 90*.25 + 99*.25 + 100*.10 + 40*.10 = 90.05
		assert.Equal(t, 90, score.Score)
		assert.Empty(t, score.Recommendations)

		require.Len(t, score.Factors, 5)
		for _, f := range score.Factors {
			assert.Equal(t, ImpactPositive, f.Impact, f.Name)
		}
	})

	t.Run("troubled sender gets recommendations", func(t *testing.T) {
		score := ComputeHealthScore(DeliveryMetrics{
			DeliveryRate:  80,
			BounceRate:    8,
			ComplaintRate: 1,
			OpenRate:      10,
			ClickRate:     1,
		})

		assert.Equal(t, []string{
			recommendDelivery,
			recommendBounce,
			recommendComplaint,
			recommendOpen,
			recommendClick,
		}, score.Recommendations)
	})

	t.Run("factor scores are clamped", func(t *testing.T) {
		score := ComputeHealthScore(DeliveryMetrics{
			BounceRate:    50, // 100 - 500 clamps to 0
			ComplaintRate: 10, // 100 - 200 clamps to 0
			OpenRate:      50, // 250 clamps to 100
			ClickRate:     20, // 200 clamps to 100
		})

		byName := map[string]HealthFactor{}
		for _, f := range score.Factors {
			byName[f.Name] = f
		}

		assert.Zero(t, byName["bounce_rate"].Score)
		assert.Zero(t, byName["complaint_rate"].Score)
		assert.Equal(t, float64(100), byName["open_rate"].Score)
		assert.Equal(t, float64(100), byName["click_rate"].Score)
	})

	t.Run("neutral band", func(t *testing.T) {
		score := ComputeHealthScore(DeliveryMetrics{
			DeliveryRate:  92,  // between 90 and 95
			BounceRate:    3,   // between 2 and 5
			ComplaintRate: 0.3, // between 0.1 and 0.5
			OpenRate:      17,  // between 15 and 20
			ClickRate:     2.5, // between 2 and 3
		})

		for _, f := range score.Factors {
			assert.Equal(t, ImpactNeutral, f.Impact, f.Name)
		}
		assert.Empty(t, score.Recommendations)
	})

	t.Run("zero metrics", func(t *testing.T) {
		score := ComputeHealthScore(DeliveryMetrics{})

		// bounce and complaint factor scores are 100 when the rates are 0
		assert.Equal(t, 50, score.Score)
		assert.NotNil(t, score.Recommendations)
	})
}
