package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"skinAdvisor/domain"
	"skinAdvisor/pkg/logger"
)

// ---- Repository / collaborator interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type AnalysisRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.AnalysisLog, bool, error)
}

type RecommendationRepository interface {
	Save(ctx context.Context, rec *domain.RecommendationLog) error
	HistoryByUser(ctx context.Context, userID uint) ([]domain.HistoryEntry, error)
}

// WeatherProvider resolves the current environment snapshot; it never
// fails, falling back to documented defaults instead.
type WeatherProvider interface {
	Current(ctx context.Context) domain.EnvSnapshot
}

// TroublePredictor is the sibling classifier. Its output is merged into
// the response but never influences product scores.
type TroublePredictor interface {
	Predict(payload *domain.AdvisorPayload) domain.TroublePrediction
}

// ---- Usecase / Service ----

type AdvisorService struct {
	engine       *Engine
	productRepo  ProductRepository
	analysisRepo AnalysisRepository
	recRepo      RecommendationRepository
	weather      WeatherProvider
	trouble      TroublePredictor
	topN         int
	now          func() time.Time
}

func NewAdvisorService(
	engine *Engine,
	productRepo ProductRepository,
	analysisRepo AnalysisRepository,
	recRepo RecommendationRepository,
	weather WeatherProvider,
	trouble TroublePredictor,
	topN int,
) *AdvisorService {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &AdvisorService{
		engine:       engine,
		productRepo:  productRepo,
		analysisRepo: analysisRepo,
		recRepo:      recRepo,
		weather:      weather,
		trouble:      trouble,
		topN:         topN,
		now:          time.Now,
	}
}

// neutralCamera is used when the analysis id cannot be resolved: the
// advisor still answers with a baseline recommendation rather than failing
// the request.
func neutralCamera() map[string]float64 {
	return map[string]float64{
		"tone": 50, "sebum": 50, "moisture": 50, "acne": 50,
		"wrinkle": 50, "pore": 50, "pigmentation": 50, "redness": 50,
	}
}

// Recommend assembles the payload (analysis scores, weather, lifestyle,
// preferences, current time), runs the scoring engine over an immutable
// catalog snapshot, merges the trouble prediction and persists the run.
func (s *AdvisorService) Recommend(
	ctx context.Context,
	userID uint,
	analysisID uint64,
	lifestyle domain.Lifestyle,
	profile domain.UserProfile,
) (domain.RecommendationResponse, error) {

	if err := ctx.Err(); err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// 1) camera scores from the stored analysis, neutral fallback when
	// the id is unknown
	camera := neutralCamera()
	if analysis, ok, err := s.analysisRepo.FindByID(ctx, analysisID); err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("load analysis: %w", err)
	} else if ok {
		camera = analysis.CameraScores()
	} else {
		logger.Warn("analysis not found, using neutral camera scores",
			"request_id", requestID,
			"analysis_id", analysisID,
		)
	}

	// 2) resolved environment
	env := s.weather.Current(ctx)

	now := s.now()
	payload := &domain.AdvisorPayload{
		Camera:    camera,
		Env:       env,
		Lifestyle: lifestyle,
		User:      profile,
		Hour:      now.Hour(),
		Weekday:   now.Weekday(),
	}

	// 3) catalog snapshot; the slice is never shared with a writer, so
	// concurrent re-ingestion cannot be observed mid-scoring
	catalog, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("load products: %w", err)
	}

	// 4) scoring engine + sibling classifier
	result := s.engine.Recommend(payload, catalog, s.topN)
	prediction := s.trouble.Predict(payload)

	logger.Debug("advisor_recommend",
		"request_id", requestID,
		"user_id", userID,
		"analysis_id", analysisID,
		"skin_age", result.SkinAge,
		"catalog_size", len(catalog),
		"selected", len(result.Top),
		"env_source", env.Source,
	)

	// 5) persist the run; a write failure must not cost the user their
	// recommendation
	troubleProb := 0.0
	if prediction.Prob != nil {
		troubleProb = *prediction.Prob
	}
	rec := &domain.RecommendationLog{
		RequestID:   requestID,
		UserID:      userID,
		AnalysisID:  analysisID,
		SkinAge:     result.SkinAge,
		TopProducts: datatypes.JSONSlice[domain.DisplayEntry](result.Top),
		RoutineAM:   datatypes.JSONSlice[string](result.Routine.Morning),
		RoutinePM:   datatypes.JSONSlice[string](result.Routine.Evening),
		TroubleProb: troubleProb,
	}
	if err := s.recRepo.Save(ctx, rec); err != nil {
		logger.Error("failed to save recommendation log",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
	}

	AdvisorRunsTotal.WithLabelValues(env.Source).Inc()

	return domain.RecommendationResponse{
		UserID:            userID,
		AnalysisID:        analysisID,
		SkinAge:           result.SkinAge,
		Top:               result.Top,
		Reasons:           result.Reasons,
		Routine:           result.Routine,
		TroublePrediction: prediction,
	}, nil
}

// History returns the user's past advisor runs joined with their analysis
// scores.
func (s *AdvisorService) History(ctx context.Context, userID uint) ([]domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	history, err := s.recRepo.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	return history, nil
}
