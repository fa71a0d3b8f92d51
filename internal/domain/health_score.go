package domain

import "math"

// FactorImpact is the qualitative classification of one health factor.
type FactorImpact string

const (
	ImpactPositive FactorImpact = "positive"
	ImpactNeutral  FactorImpact = "neutral"
	ImpactNegative FactorImpact = "negative"
)

// HealthFactor is one weighted component of the delivery health score.
type HealthFactor struct {
	Name   string       `json:"name"`
	Value  float64      `json:"value"`
	Score  float64      `json:"score"`
	Weight float64      `json:"weight"`
	Impact FactorImpact `json:"impact"`
}

// HealthScore is the weighted composite deliverability score.
type HealthScore struct {
	Score           int            `json:"score"`
	Factors         []HealthFactor `json:"factors"`
	Recommendations []string       `json:"recommendations"`
}

// Scoring weights and impact thresholds are a versioned policy table:
// changing any value changes every reported score, so deviations need a
// deliberate version bump.
const (
	deliveryRateWeight  = 0.30
	bounceRateWeight    = 0.25
	complaintRateWeight = 0.25
	openRateWeight      = 0.10
	clickRateWeight     = 0.10
)

const (
	recommendDelivery  = "Improve delivery rate: verify your sending domain authentication (SPF, DKIM, DMARC) and sender reputation"
	recommendBounce    = "Reduce bounce rate: clean your contact list to remove invalid and stale addresses"
	recommendComplaint = "Reduce complaint rate: review your email content and sending frequency"
	recommendOpen      = "Improve open rate: work on subject lines and send-time optimization"
	recommendClick     = "Improve click rate: strengthen your call-to-action and content relevance"
)

// ComputeHealthScore derives the composite health score from a metrics
// snapshot. Pure and deterministic: the same metrics always produce the
// same integer score.
func ComputeHealthScore(m DeliveryMetrics) *HealthScore {
	factors := []HealthFactor{
		{
			Name:   "delivery_rate",
			Value:  m.DeliveryRate,
			Score:  math.Min(m.DeliveryRate, 100),
			Weight: deliveryRateWeight,
			Impact: impactAtLeast(m.DeliveryRate, 95, 90),
		},
		{
			Name:   "bounce_rate",
			Value:  m.BounceRate,
			Score:  math.Max(0, 100-m.BounceRate*10),
			Weight: bounceRateWeight,
			Impact: impactAtMost(m.BounceRate, 2, 5),
		},
		{
			Name:   "complaint_rate",
			Value:  m.ComplaintRate,
			Score:  math.Max(0, 100-m.ComplaintRate*20),
			Weight: complaintRateWeight,
			Impact: impactAtMost(m.ComplaintRate, 0.1, 0.5),
		},
		{
			Name:   "open_rate",
			Value:  m.OpenRate,
			Score:  math.Min(m.OpenRate*5, 100),
			Weight: openRateWeight,
			Impact: impactAtLeast(m.OpenRate, 20, 15),
		},
		{
			Name:   "click_rate",
			Value:  m.ClickRate,
			Score:  math.Min(m.ClickRate*10, 100),
			Weight: clickRateWeight,
			Impact: impactAtLeast(m.ClickRate, 3, 2),
		},
	}

	recommendationFor := map[string]string{
		"delivery_rate":  recommendDelivery,
		"bounce_rate":    recommendBounce,
		"complaint_rate": recommendComplaint,
		"open_rate":      recommendOpen,
		"click_rate":     recommendClick,
	}

	score := &HealthScore{
		Factors:         factors,
		Recommendations: []string{},
	}

	var weighted float64
	for _, f := range factors {
		weighted += f.Score * f.Weight
		if f.Impact == ImpactNegative {
			score.Recommendations = append(score.Recommendations, recommendationFor[f.Name])
		}
	}
	score.Score = int(math.Round(weighted))

	return score
}

// impactAtLeast classifies a higher-is-better rate.
func impactAtLeast(value, positive, neutral float64) FactorImpact {
	switch {
	case value >= positive:
		return ImpactPositive
	case value >= neutral:
		return ImpactNeutral
	default:
		return ImpactNegative
	}
}

// impactAtMost classifies a lower-is-better rate.
func impactAtMost(value, positive, neutral float64) FactorImpact {
	switch {
	case value <= positive:
		return ImpactPositive
	case value <= neutral:
		return ImpactNeutral
	default:
		return ImpactNegative
	}
}
