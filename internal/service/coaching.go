package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fieldcoach/coach-server/internal/engine"
	"github.com/fieldcoach/coach-server/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotScored       = errors.New("session not scored")
	ErrInvalidTurn     = errors.New("invalid turn")
	ErrStorageFailure  = errors.New("storage failure")
)

// CoachingService manages roleplay sessions and runs the behavioral metrics
// engine on their transcripts at end of session.
type CoachingService struct {
	storage SessionRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewCoachingService creates a new CoachingService instance.
func NewCoachingService(storage SessionRepository, logger *zap.Logger) *CoachingService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &CoachingService{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// StartSession creates a new session for the given scenario.
func (s *CoachingService) StartSession(ctx context.Context, scenario string) (int64, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.storage.CreateSession(dbCtx, scenario, s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("session started",
		zap.Int64("session_id", id),
		zap.String("scenario", scenario))
	return id, nil
}

// AppendTurn stores one turn of the live conversation. The speaker must be
// rep or customer and the text non-empty; the transport layer rejects
// anything else up front, while stored data that later fails these checks is
// silently dropped by the normalizer at scoring time.
func (s *CoachingService) AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error) {
	if speaker != string(engine.SpeakerRep) && speaker != string(engine.SpeakerCustomer) {
		return 0, fmt.Errorf("%w: unknown speaker %q", ErrInvalidTurn, speaker)
	}
	if text == "" {
		return 0, fmt.Errorf("%w: empty text", ErrInvalidTurn)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.getSession(dbCtx, sessionID); err != nil {
		return 0, err
	}

	idx, err := s.storage.AppendTurn(dbCtx, sessionID, speaker, text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return idx, nil
}

// ScoreSession runs the scoring engine over the session's full transcript,
// persists the results and returns the metric reports. Scoring is
// deterministic, so rescoring a session overwrites prior rows with identical
// content.
func (s *CoachingService) ScoreSession(ctx context.Context, sessionID int64) ([]MetricReport, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.getSession(dbCtx, sessionID); err != nil {
		return nil, err
	}

	turns, err := s.storage.GetTurns(dbCtx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	raw := make([]engine.RawTurn, len(turns))
	for i, t := range turns {
		raw[i] = engine.RawTurn{Speaker: t.Speaker, Text: t.Text}
	}

	results := engine.Score(raw)

	rows := make([]models.MetricResultRow, len(results))
	for i, res := range results {
		components, err := json.Marshal(res.Components)
		if err != nil {
			return nil, fmt.Errorf("marshal components for %s: %w", res.ID, err)
		}
		rows[i] = models.MetricResultRow{
			SessionID:     sessionID,
			MetricID:      res.ID,
			OverallScore:  res.OverallScore,
			NotApplicable: res.NotApplicable,
			Components:    string(components),
		}
	}

	if err := s.storage.SaveMetricResults(dbCtx, sessionID, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if err := s.storage.EndSession(dbCtx, sessionID, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("session scored",
		zap.Int64("session_id", sessionID),
		zap.Int("turns", len(turns)),
		zap.Int("metrics", len(results)))

	reports := make([]MetricReport, len(results))
	for i, res := range results {
		reports[i] = buildReport(res.ID, res.OverallScore, res.NotApplicable, res.Components)
	}
	return reports, nil
}

// GetSessionReports returns the persisted metric reports for a scored
// session.
func (s *CoachingService) GetSessionReports(ctx context.Context, sessionID int64) ([]MetricReport, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.getSession(dbCtx, sessionID); err != nil {
		return nil, err
	}

	rows, err := s.storage.GetMetricResults(dbCtx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotScored
	}

	reports := make([]MetricReport, len(rows))
	for i, row := range rows {
		var components []engine.ComponentResult
		if err := json.Unmarshal([]byte(row.Components), &components); err != nil {
			return nil, fmt.Errorf("unmarshal components for %s: %w", row.MetricID, err)
		}
		reports[i] = buildReport(row.MetricID, row.OverallScore, row.NotApplicable, components)
	}
	return reports, nil
}

func (s *CoachingService) getSession(ctx context.Context, sessionID int64) (models.Session, error) {
	sess, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return sess, nil
}

func buildReport(metricID string, score *float64, notApplicable bool, components []engine.ComponentResult) MetricReport {
	capability, _ := engine.CapabilityFor(metricID)
	return MetricReport{
		MetricID:        metricID,
		DisplayName:     engine.DisplayNameFor(metricID),
		CapabilityID:    capability.ID,
		CapabilityLabel: capability.Label,
		OverallScore:    score,
		NotApplicable:   notApplicable,
		Components:      components,
		CoachingTips:    engine.CoachingInsightsFor(metricID),
	}
}
