package service

import (
	"context"
	"time"

	"github.com/fieldcoach/coach-server/internal/repository/models"
)

// SessionRepository defines the database operations the coaching service
// needs.
type SessionRepository interface {
	CreateSession(ctx context.Context, scenario string, createdAt time.Time) (int64, error)
	GetSession(ctx context.Context, id int64) (models.Session, error)
	EndSession(ctx context.Context, id int64, endedAt time.Time) error
	AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error)
	GetTurns(ctx context.Context, sessionID int64) ([]models.StoredTurn, error)
	SaveMetricResults(ctx context.Context, sessionID int64, results []models.MetricResultRow) error
	GetMetricResults(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error)
}
