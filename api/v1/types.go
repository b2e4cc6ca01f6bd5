// Package apiv1 defines the wire contract of the coaching service. Messages
// are plain structs carried over gRPC's json content-subtype (see codec.go),
// so the contract is committed Go source rather than generated bindings.
package apiv1

type StartSessionRequest struct {
	Scenario string `json:"scenario"`
}

type StartSessionResponse struct {
	SessionId int64 `json:"session_id"`
}

type AppendTurnRequest struct {
	SessionId int64  `json:"session_id"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}

type AppendTurnResponse struct {
	TurnIndex int32 `json:"turn_index"`
}

type ScoreSessionRequest struct {
	SessionId int64 `json:"session_id"`
}

type GetSessionReportsRequest struct {
	SessionId int64 `json:"session_id"`
}

type ComponentScore struct {
	Name       string   `json:"name"`
	Score      *float64 `json:"score"`
	Applicable bool     `json:"applicable"`
}

type MetricReport struct {
	MetricId        string            `json:"metric_id"`
	DisplayName     string            `json:"display_name"`
	CapabilityId    string            `json:"capability_id"`
	CapabilityLabel string            `json:"capability_label"`
	OverallScore    *float64          `json:"overall_score"`
	NotApplicable   bool              `json:"not_applicable"`
	Components      []*ComponentScore `json:"components"`
	CoachingTips    []string          `json:"coaching_tips"`
}

type SessionReportsResponse struct {
	Reports []*MetricReport `json:"reports"`
}
