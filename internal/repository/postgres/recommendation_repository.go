package postgres

import (
	"context"
	"fmt"
	"skinAdvisor/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

func (r *RecommendationRepository) Save(ctx context.Context, rec *domain.RecommendationLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to save recommendation log: %w", err)
	}

	return nil
}

// HistoryByUser returns past advisor runs newest-first, joined with the
// analysis scores that produced them.
func (r *RecommendationRepository) HistoryByUser(ctx context.Context, userID uint) ([]domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var recs []domain.RecommendationLog
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendation history: %w", err)
	}

	history := make([]domain.HistoryEntry, 0, len(recs))
	for _, rec := range recs {
		entry := domain.HistoryEntry{
			RecordID: rec.ID,
			SkinAge:  rec.SkinAge,
			Date:     rec.CreatedAt,
		}

		for _, p := range rec.TopProducts {
			entry.TopNames = append(entry.TopNames, p.Name)
		}

		// best effort: a purged analysis row only loses the score detail
		var analysis domain.AnalysisLog
		if err := r.DB.WithContext(ctx).First(&analysis, rec.AnalysisID).Error; err == nil {
			entry.ImagePath = analysis.ImagePath
			entry.Scores = analysis.CameraScores()
		}

		history = append(history, entry)
	}

	return history, nil
}
