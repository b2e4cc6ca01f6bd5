package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/fieldcoach/coach-server/api/v1"
	"github.com/fieldcoach/coach-server/internal/engine"
	"github.com/fieldcoach/coach-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second

	cacheKeyReports = "grpc:session_reports"
)

type GRPCHandlers struct {
	pb.UnimplementedCoachingServer
	coaching CoachingService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(coaching CoachingService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if coaching == nil {
		panic("nil CoachingService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		coaching: coaching,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func reportsCacheKey(sessionID int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyReports, sessionID)
}

func validSessionID(id int64) error {
	if id <= 0 {
		return status.Error(codes.InvalidArgument, "session id is required")
	}
	return nil
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		s.logger.Info("session not found", zap.String("op", op))
		return status.Error(codes.NotFound, "session not found")
	case errors.Is(err, service.ErrNotScored):
		s.logger.Info("session not scored yet", zap.String("op", op))
		return status.Error(codes.FailedPrecondition, "session has not been scored")
	case errors.Is(err, service.ErrInvalidTurn):
		s.logger.Info("invalid turn", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {
	if req.Scenario == "" {
		return nil, status.Error(codes.InvalidArgument, "scenario is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	id, err := s.coaching.StartSession(ctx, req.Scenario)
	if err != nil {
		return nil, s.handleError(ctx, "StartSession", err)
	}
	return &pb.StartSessionResponse{SessionId: id}, nil
}

func (s *GRPCHandlers) AppendTurn(ctx context.Context, req *pb.AppendTurnRequest) (*pb.AppendTurnResponse, error) {
	if err := validSessionID(req.SessionId); err != nil {
		return nil, err
	}
	if req.Speaker != string(engine.SpeakerRep) && req.Speaker != string(engine.SpeakerCustomer) {
		return nil, status.Errorf(codes.InvalidArgument, "speaker must be %q or %q", engine.SpeakerRep, engine.SpeakerCustomer)
	}
	if req.Text == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	idx, err := s.coaching.AppendTurn(ctx, req.SessionId, req.Speaker, req.Text)
	if err != nil {
		return nil, s.handleError(ctx, "AppendTurn", err)
	}
	return &pb.AppendTurnResponse{TurnIndex: int32(idx)}, nil
}

func (s *GRPCHandlers) ScoreSession(ctx context.Context, req *pb.ScoreSessionRequest) (*pb.SessionReportsResponse, error) {
	if err := validSessionID(req.SessionId); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	reports, err := s.coaching.ScoreSession(ctx, req.SessionId)
	if err != nil {
		return nil, s.handleError(ctx, "ScoreSession", err)
	}

	// Scoring supersedes any cached reports for the session.
	if s.cache != nil {
		WriteCacheAsync(s.cache, reportsCacheKey(req.SessionId), reports, s.cacheTTL, s.logger)
	}

	return &pb.SessionReportsResponse{Reports: mapToProtoReports(reports)}, nil
}

func (s *GRPCHandlers) GetSessionReports(ctx context.Context, req *pb.GetSessionReportsRequest) (*pb.SessionReportsResponse, error) {
	if err := validSessionID(req.SessionId); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	var reports []service.MetricReport
	var err error
	if s.cache == nil {
		reports, err = s.coaching.GetSessionReports(ctx, req.SessionId)
	} else {
		reports, err = FindAndCache(ctx, s.cache, &s.sfGroup, reportsCacheKey(req.SessionId), s.cacheTTL, s.logger,
			func(fetchCtx context.Context) ([]service.MetricReport, error) {
				return s.coaching.GetSessionReports(fetchCtx, req.SessionId)
			})
	}
	if err != nil {
		return nil, s.handleError(ctx, "GetSessionReports", err)
	}

	return &pb.SessionReportsResponse{Reports: mapToProtoReports(reports)}, nil
}

func mapToProtoReports(reports []service.MetricReport) []*pb.MetricReport {
	out := make([]*pb.MetricReport, len(reports))
	for i, r := range reports {
		components := make([]*pb.ComponentScore, len(r.Components))
		for j, c := range r.Components {
			components[j] = &pb.ComponentScore{
				Name:       c.Name,
				Score:      c.Score,
				Applicable: c.Applicable,
			}
		}
		out[i] = &pb.MetricReport{
			MetricId:        r.MetricID,
			DisplayName:     r.DisplayName,
			CapabilityId:    r.CapabilityID,
			CapabilityLabel: r.CapabilityLabel,
			OverallScore:    r.OverallScore,
			NotApplicable:   r.NotApplicable,
			Components:      components,
			CoachingTips:    r.CoachingTips,
		}
	}
	return out
}
