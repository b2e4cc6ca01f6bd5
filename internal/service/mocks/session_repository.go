package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/fieldcoach/coach-server/internal/repository/models"
)

// MockSessionRepository is a mock implementation of the SessionRepository
// interface for testing the service layer. It uses function-based mocking for
// flexibility.
type MockSessionRepository struct {
	CreateSessionFunc     func(ctx context.Context, scenario string, createdAt time.Time) (int64, error)
	GetSessionFunc        func(ctx context.Context, id int64) (models.Session, error)
	EndSessionFunc        func(ctx context.Context, id int64, endedAt time.Time) error
	AppendTurnFunc        func(ctx context.Context, sessionID int64, speaker, text string) (int, error)
	GetTurnsFunc          func(ctx context.Context, sessionID int64) ([]models.StoredTurn, error)
	SaveMetricResultsFunc func(ctx context.Context, sessionID int64, results []models.MetricResultRow) error
	GetMetricResultsFunc  func(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error)
}

// CreateSession implements the SessionRepository interface
func (m *MockSessionRepository) CreateSession(ctx context.Context, scenario string, createdAt time.Time) (int64, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, scenario, createdAt)
	}
	return 0, errors.New("CreateSessionFunc not implemented")
}

// GetSession implements the SessionRepository interface
func (m *MockSessionRepository) GetSession(ctx context.Context, id int64) (models.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, id)
	}
	return models.Session{}, errors.New("GetSessionFunc not implemented")
}

// EndSession implements the SessionRepository interface
func (m *MockSessionRepository) EndSession(ctx context.Context, id int64, endedAt time.Time) error {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(ctx, id, endedAt)
	}
	return nil
}

// AppendTurn implements the SessionRepository interface
func (m *MockSessionRepository) AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error) {
	if m.AppendTurnFunc != nil {
		return m.AppendTurnFunc(ctx, sessionID, speaker, text)
	}
	return 0, errors.New("AppendTurnFunc not implemented")
}

// GetTurns implements the SessionRepository interface
func (m *MockSessionRepository) GetTurns(ctx context.Context, sessionID int64) ([]models.StoredTurn, error) {
	if m.GetTurnsFunc != nil {
		return m.GetTurnsFunc(ctx, sessionID)
	}
	return nil, errors.New("GetTurnsFunc not implemented")
}

// SaveMetricResults implements the SessionRepository interface
func (m *MockSessionRepository) SaveMetricResults(ctx context.Context, sessionID int64, results []models.MetricResultRow) error {
	if m.SaveMetricResultsFunc != nil {
		return m.SaveMetricResultsFunc(ctx, sessionID, results)
	}
	return nil
}

// GetMetricResults implements the SessionRepository interface
func (m *MockSessionRepository) GetMetricResults(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error) {
	if m.GetMetricResultsFunc != nil {
		return m.GetMetricResultsFunc(ctx, sessionID)
	}
	return nil, errors.New("GetMetricResultsFunc not implemented")
}
