package grpc

import (
	"context"
	"time"

	"github.com/fieldcoach/coach-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// CoachingService is the application service the handlers delegate to.
type CoachingService interface {
	StartSession(ctx context.Context, scenario string) (int64, error)
	AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error)
	ScoreSession(ctx context.Context, sessionID int64) ([]service.MetricReport, error)
	GetSessionReports(ctx context.Context, sessionID int64) ([]service.MetricReport, error)
}
