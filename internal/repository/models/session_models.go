package models

import "time"

// Session is one recorded roleplay conversation between a rep and a
// simulated customer.
type Session struct {
	ID        int64
	Scenario  string
	CreatedAt time.Time
	EndedAt   *time.Time
}

// StoredTurn is a raw turn as persisted during a live session. Validation
// happens at scoring time, not at ingest.
type StoredTurn struct {
	SessionID int64
	Index     int
	Speaker   string
	Text      string
}

// MetricResultRow is one persisted metric outcome for a scored session.
// OverallScore is nil when the metric was not applicable. Components holds
// the component breakdown as JSON.
type MetricResultRow struct {
	SessionID     int64
	MetricID      string
	OverallScore  *float64
	NotApplicable bool
	Components    string
}
