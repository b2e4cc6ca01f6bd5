package engine

import "math"

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// clampScore forces a score into the [1.0, 5.0] band so no heuristic
// arithmetic or weight configuration can produce an out-of-range result.
func clampScore(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	if v > 5.0 {
		return 5.0
	}
	return v
}

// bandHigh maps a higher-is-better rate onto the 1-5 band using four
// descending cutoffs: rate >= c5 scores 5, >= c4 scores 4, and so on.
func bandHigh(rate, c5, c4, c3, c2 float64) float64 {
	switch {
	case rate >= c5:
		return 5
	case rate >= c4:
		return 4
	case rate >= c3:
		return 3
	case rate >= c2:
		return 2
	default:
		return 1
	}
}

// bandLow maps a lower-is-better rate onto the 1-5 band using four ascending
// cutoffs: rate <= c5 scores 5, <= c4 scores 4, and so on.
func bandLow(rate, c5, c4, c3, c2 float64) float64 {
	switch {
	case rate <= c5:
		return 5
	case rate <= c4:
		return 4
	case rate <= c3:
		return 3
	case rate <= c2:
		return 2
	default:
		return 1
	}
}

// resolve combines component results into a MetricResult per the metric's
// aggregation mode. A metric is not applicable iff none of its components
// are; weighted metrics renormalize configured weights over the applicable
// set before summing.
func resolve(spec MetricSpec, components []ComponentResult) MetricResult {
	result := MetricResult{ID: spec.ID, Components: components}

	var sum, weightSum float64
	applicableCount := 0
	for i, c := range components {
		if !c.Applicable || c.Score == nil {
			continue
		}
		applicableCount++
		switch spec.Formula {
		case FormulaWeighted:
			w := spec.Components[i].Weight
			sum += *c.Score * w
			weightSum += w
		default:
			sum += *c.Score
			weightSum++
		}
	}

	if applicableCount == 0 || weightSum == 0 {
		result.NotApplicable = true
		return result
	}

	overall := round1(clampScore(sum / weightSum))
	result.OverallScore = &overall
	return result
}
