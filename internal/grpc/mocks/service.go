package mocks

import (
	"context"
	"errors"

	"github.com/fieldcoach/coach-server/internal/service"
)

// MockCoachingService is a mock implementation of the CoachingService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockCoachingService struct {
	StartSessionFunc      func(ctx context.Context, scenario string) (int64, error)
	AppendTurnFunc        func(ctx context.Context, sessionID int64, speaker, text string) (int, error)
	ScoreSessionFunc      func(ctx context.Context, sessionID int64) ([]service.MetricReport, error)
	GetSessionReportsFunc func(ctx context.Context, sessionID int64) ([]service.MetricReport, error)
}

// StartSession implements the CoachingService interface
func (m *MockCoachingService) StartSession(ctx context.Context, scenario string) (int64, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, scenario)
	}
	return 0, errors.New("StartSessionFunc not implemented")
}

// AppendTurn implements the CoachingService interface
func (m *MockCoachingService) AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error) {
	if m.AppendTurnFunc != nil {
		return m.AppendTurnFunc(ctx, sessionID, speaker, text)
	}
	return 0, errors.New("AppendTurnFunc not implemented")
}

// ScoreSession implements the CoachingService interface
func (m *MockCoachingService) ScoreSession(ctx context.Context, sessionID int64) ([]service.MetricReport, error) {
	if m.ScoreSessionFunc != nil {
		return m.ScoreSessionFunc(ctx, sessionID)
	}
	return nil, errors.New("ScoreSessionFunc not implemented")
}

// GetSessionReports implements the CoachingService interface
func (m *MockCoachingService) GetSessionReports(ctx context.Context, sessionID int64) ([]service.MetricReport, error) {
	if m.GetSessionReportsFunc != nil {
		return m.GetSessionReportsFunc(ctx, sessionID)
	}
	return nil, errors.New("GetSessionReportsFunc not implemented")
}
