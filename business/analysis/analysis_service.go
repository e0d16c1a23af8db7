package analysis

import (
	"context"
	"errors"
	"fmt"

	"skinAdvisor/domain"
	"skinAdvisor/pkg/logger"
)

// AnalysisRepository contract interface
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *domain.AnalysisLog) error
	FindByID(ctx context.Context, id uint64) (domain.AnalysisLog, bool, error)
	FindByUser(ctx context.Context, userID uint, limit int) ([]domain.AnalysisLog, error)
}

type analysisService struct {
	analysisRepo AnalysisRepository
}

func NewAnalysisService(analysisRepo AnalysisRepository) *analysisService {
	return &analysisService{
		analysisRepo: analysisRepo,
	}
}

// scoreInRange rejects values the upstream analyzer should never emit.
func scoreInRange(v float64) bool {
	return v >= 0 && v <= 100
}

// Ingest stores one vision-analysis result for a user.
func (s *analysisService) Ingest(ctx context.Context, analysis *domain.AnalysisLog) (*domain.AnalysisLog, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when ingest analysis")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if analysis.UserID == 0 {
		logger.Error("invalid analysis data: user id is required")
		return nil, errors.New("user id is required")
	}

	for name, v := range analysis.CameraScores() {
		if !scoreInRange(v) {
			logger.Error("invalid analysis data: score out of range", "metric", name, "value", v)
			return nil, fmt.Errorf("score %s out of range", name)
		}
	}

	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		logger.Error("failed to store analysis", "error", err)
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	logger.Info("analysis ingested", "id", analysis.ID, "user_id", analysis.UserID)

	return analysis, nil
}

func (s *analysisService) GetByID(ctx context.Context, id uint64) (*domain.AnalysisLog, error) {
	if id == 0 {
		return nil, errors.New("invalid analysis id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	analysis, found, err := s.analysisRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find analysis by id", "error", err)
		return nil, err
	}
	if !found {
		return nil, errors.New("analysis not found")
	}

	return &analysis, nil
}

func (s *analysisService) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.AnalysisLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	list, err := s.analysisRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("failed to list analyses by user", "error", err)
		return nil, err
	}

	return list, nil
}
