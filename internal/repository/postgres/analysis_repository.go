package postgres

import (
	"context"
	"errors"
	"fmt"
	"skinAdvisor/domain"

	"gorm.io/gorm"
)

type AnalysisRepository struct {
	DB *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{
		DB: db,
	}
}

func (r *AnalysisRepository) Create(ctx context.Context, analysis *domain.AnalysisLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis log: %w", err)
	}

	return nil
}

// FindByID returns (row, found, error). An unknown id is not an error:
// the advisor falls back to neutral scores in that case.
func (r *AnalysisRepository) FindByID(ctx context.Context, id uint64) (domain.AnalysisLog, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisLog{}, false, fmt.Errorf("context error: %w", err)
	}

	var analysis domain.AnalysisLog
	err := r.DB.WithContext(ctx).First(&analysis, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AnalysisLog{}, false, nil
		}
		return domain.AnalysisLog{}, false, fmt.Errorf("failed to find analysis log: %w", err)
	}

	return analysis, true, nil
}

func (r *AnalysisRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.AnalysisLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	var rows []domain.AnalysisLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find analysis logs: %w", err)
	}

	return rows, nil
}
