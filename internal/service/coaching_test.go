package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fieldcoach/coach-server/internal/engine"
	"github.com/fieldcoach/coach-server/internal/repository/models"
	"github.com/fieldcoach/coach-server/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func existingSession(id int64) func(ctx context.Context, sid int64) (models.Session, error) {
	return func(ctx context.Context, sid int64) (models.Session, error) {
		if sid != id {
			return models.Session{}, sql.ErrNoRows
		}
		return models.Session{ID: id, Scenario: "skeptical-hcp", CreatedAt: time.Now()}, nil
	}
}

// TestNewCoachingService tests the constructor
func TestNewCoachingService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{}
		logger := zap.NewNop()

		svc := NewCoachingService(mockRepo, logger)

		assert.NotNil(t, svc)
		assert.Equal(t, logger, svc.logger)
	})

	t.Run("nil storage panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewCoachingService(nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewCoachingService(&mocks.MockSessionRepository{}, nil)

		assert.NotNil(t, svc)
		assert.NotNil(t, svc.logger)
	})
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("successful start", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			CreateSessionFunc: func(ctx context.Context, scenario string, createdAt time.Time) (int64, error) {
				assert.Equal(t, "budget-objection", scenario)
				assert.False(t, createdAt.IsZero())
				return 42, nil
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		id, err := svc.StartSession(ctx, "budget-objection")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			CreateSessionFunc: func(ctx context.Context, scenario string, createdAt time.Time) (int64, error) {
				return 0, errors.New("disk full")
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.StartSession(ctx, "budget-objection")

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestAppendTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and returns index", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			AppendTurnFunc: func(ctx context.Context, sessionID int64, speaker, text string) (int, error) {
				assert.Equal(t, int64(7), sessionID)
				assert.Equal(t, "rep", speaker)
				return 3, nil
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		idx, err := svc.AppendTurn(ctx, 7, "rep", "What are your priorities?")

		assert.NoError(t, err)
		assert.Equal(t, 3, idx)
	})

	t.Run("unknown speaker rejected", func(t *testing.T) {
		svc := NewCoachingService(&mocks.MockSessionRepository{}, zap.NewNop())

		_, err := svc.AppendTurn(ctx, 7, "narrator", "Scene opens.")

		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		svc := NewCoachingService(&mocks.MockSessionRepository{}, zap.NewNop())

		_, err := svc.AppendTurn(ctx, 7, "customer", "")

		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("missing session", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.AppendTurn(ctx, 99, "rep", "Hello?")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestScoreSession(t *testing.T) {
	ctx := context.Background()

	turns := []models.StoredTurn{
		{SessionID: 7, Index: 0, Speaker: "rep", Text: "Today I'd like to understand your priorities."},
		{SessionID: 7, Index: 1, Speaker: "customer", Text: "Our main challenge is adherence tracking."},
		{SessionID: 7, Index: 2, Speaker: "rep", Text: "What makes adherence tracking difficult for your team?"},
	}

	t.Run("scores, persists and reports", func(t *testing.T) {
		var savedRows []models.MetricResultRow
		ended := false
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			GetTurnsFunc: func(ctx context.Context, sessionID int64) ([]models.StoredTurn, error) {
				return turns, nil
			},
			SaveMetricResultsFunc: func(ctx context.Context, sessionID int64, results []models.MetricResultRow) error {
				savedRows = results
				return nil
			},
			EndSessionFunc: func(ctx context.Context, id int64, endedAt time.Time) error {
				ended = true
				return nil
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		reports, err := svc.ScoreSession(ctx, 7)

		require.NoError(t, err)
		assert.True(t, ended)

		require.Len(t, reports, len(engine.MetricSpecs))
		require.Len(t, savedRows, len(engine.MetricSpecs))
		for i, id := range engine.MetricIDs() {
			assert.Equal(t, id, reports[i].MetricID)
			assert.Equal(t, id, savedRows[i].MetricID)
			assert.NotEmpty(t, reports[i].DisplayName)
			assert.NotEmpty(t, reports[i].CapabilityID)
			assert.NotEmpty(t, reports[i].CoachingTips)

			var components []engine.ComponentResult
			require.NoError(t, json.Unmarshal([]byte(savedRows[i].Components), &components))
			assert.Equal(t, reports[i].Components, components)
		}
	})

	t.Run("empty transcript still yields all metrics", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			GetTurnsFunc: func(ctx context.Context, sessionID int64) ([]models.StoredTurn, error) {
				return nil, nil
			},
			EndSessionFunc: func(ctx context.Context, id int64, endedAt time.Time) error { return nil },
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		reports, err := svc.ScoreSession(ctx, 7)

		require.NoError(t, err)
		require.Len(t, reports, len(engine.MetricSpecs))
		for _, r := range reports {
			assert.True(t, r.NotApplicable, "metric %s", r.MetricID)
			assert.Nil(t, r.OverallScore, "metric %s", r.MetricID)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.ScoreSession(ctx, 99)

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("save failure is wrapped", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			GetTurnsFunc: func(ctx context.Context, sessionID int64) ([]models.StoredTurn, error) {
				return turns, nil
			},
			SaveMetricResultsFunc: func(ctx context.Context, sessionID int64, results []models.MetricResultRow) error {
				return errors.New("locked")
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.ScoreSession(ctx, 7)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestGetSessionReports(t *testing.T) {
	ctx := context.Background()

	t.Run("returns persisted reports", func(t *testing.T) {
		score := 4.2
		components, err := json.Marshal([]engine.ComponentResult{
			{Name: "open_closed_ratio", Score: &score, Applicable: true},
		})
		require.NoError(t, err)

		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			GetMetricResultsFunc: func(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error) {
				return []models.MetricResultRow{
					{
						SessionID:    7,
						MetricID:     engine.MetricQuestionQuality,
						OverallScore: &score,
						Components:   string(components),
					},
				}, nil
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		reports, err := svc.GetSessionReports(ctx, 7)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, engine.MetricQuestionQuality, reports[0].MetricID)
		assert.Equal(t, "Question Quality", reports[0].DisplayName)
		assert.Equal(t, "signal-awareness", reports[0].CapabilityID)
		require.NotNil(t, reports[0].OverallScore)
		assert.Equal(t, 4.2, *reports[0].OverallScore)
		require.Len(t, reports[0].Components, 1)
		assert.True(t, reports[0].Components[0].Applicable)
	})

	t.Run("unscored session", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
			GetMetricResultsFunc: func(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error) {
				return nil, nil
			},
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.GetSessionReports(ctx, 7)

		assert.ErrorIs(t, err, ErrNotScored)
	})

	t.Run("missing session", func(t *testing.T) {
		mockRepo := &mocks.MockSessionRepository{
			GetSessionFunc: existingSession(7),
		}

		svc := NewCoachingService(mockRepo, zap.NewNop())
		_, err := svc.GetSessionReports(ctx, 99)

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
