package service

import "github.com/fieldcoach/coach-server/internal/engine"

// MetricReport is one scored metric enriched with its display-layer
// capability mapping and coaching tips, ready for the presentation layer.
type MetricReport struct {
	MetricID        string
	DisplayName     string
	CapabilityID    string
	CapabilityLabel string
	OverallScore    *float64
	NotApplicable   bool
	Components      []engine.ComponentResult
	CoachingTips    []string
}
