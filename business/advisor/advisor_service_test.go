//go:build !integration

package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"skinAdvisor/domain"
)

type fakeProductRepo struct {
	catalog []domain.Product
	err     error
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	return f.catalog, f.err
}

type fakeAnalysisRepo struct {
	analysis domain.AnalysisLog
	found    bool
	err      error
}

func (f *fakeAnalysisRepo) FindByID(ctx context.Context, id uint64) (domain.AnalysisLog, bool, error) {
	return f.analysis, f.found, f.err
}

type fakeRecRepo struct {
	saved   []*domain.RecommendationLog
	saveErr error
	history []domain.HistoryEntry
}

func (f *fakeRecRepo) Save(ctx context.Context, rec *domain.RecommendationLog) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeRecRepo) HistoryByUser(ctx context.Context, userID uint) ([]domain.HistoryEntry, error) {
	return f.history, nil
}

type fakeWeather struct {
	env domain.EnvSnapshot
}

func (f *fakeWeather) Current(ctx context.Context) domain.EnvSnapshot {
	return f.env
}

type fakeTrouble struct {
	prediction domain.TroublePrediction
}

func (f *fakeTrouble) Predict(p *domain.AdvisorPayload) domain.TroublePrediction {
	return f.prediction
}

func newTestService(products *fakeProductRepo, analyses *fakeAnalysisRepo, recs *fakeRecRepo) *AdvisorService {
	prob := 0.25
	svc := NewAdvisorService(
		testEngine(),
		products,
		analyses,
		recs,
		&fakeWeather{env: domain.EnvSnapshot{UV: 7, Humidity: 40, Temperature: 25, Source: "api(weather)"}},
		&fakeTrouble{prediction: domain.TroublePrediction{Prob: &prob, Message: "트러블 발생 확률: 25%"}},
		3,
	)
	// pin the clock to a weekday afternoon
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAdvisorService_Recommend(t *testing.T) {
	products := &fakeProductRepo{catalog: fullCatalog()}
	analyses := &fakeAnalysisRepo{
		analysis: domain.AnalysisLog{
			ID: 7, UserID: 3, Acne: 65, Wrinkles: 45, Pores: 55,
			Pigmentation: 30, Redness: 40, Moisture: 35, Sebum: 70, Tone: 48,
		},
		found: true,
	}
	recs := &fakeRecRepo{}

	svc := newTestService(products, analyses, recs)

	resp, err := svc.Recommend(context.Background(), 3, 7,
		domain.Lifestyle{Sensitivity: "no"},
		domain.UserProfile{Age: 28, PrefTexture: "gel"},
	)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.UserID != 3 || resp.AnalysisID != 7 {
		t.Errorf("response ids = (%d, %d), want (3, 7)", resp.UserID, resp.AnalysisID)
	}
	if len(resp.Top) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if resp.TroublePrediction.Prob == nil || *resp.TroublePrediction.Prob != 0.25 {
		t.Error("trouble prediction must be merged into the response")
	}

	if len(recs.saved) != 1 {
		t.Fatalf("saved %d recommendation logs, want 1", len(recs.saved))
	}
	saved := recs.saved[0]
	if saved.RequestID == "" {
		t.Error("saved log must carry a request id")
	}
	if saved.UserID != 3 || saved.AnalysisID != 7 {
		t.Errorf("saved ids = (%d, %d), want (3, 7)", saved.UserID, saved.AnalysisID)
	}
	if saved.SkinAge != resp.SkinAge {
		t.Errorf("saved skin age %v differs from response %v", saved.SkinAge, resp.SkinAge)
	}
	if saved.TroubleProb != 0.25 {
		t.Errorf("saved trouble prob = %v, want 0.25", saved.TroubleProb)
	}
}

func TestAdvisorService_UnknownAnalysisFallsBackToNeutral(t *testing.T) {
	products := &fakeProductRepo{catalog: fullCatalog()}
	analyses := &fakeAnalysisRepo{found: false}
	recs := &fakeRecRepo{}

	svc := newTestService(products, analyses, recs)

	resp, err := svc.Recommend(context.Background(), 3, 999,
		domain.Lifestyle{}, domain.UserProfile{})
	if err != nil {
		t.Fatalf("unknown analysis id must not fail the request: %v", err)
	}
	if len(resp.Top) == 0 {
		t.Fatal("neutral camera scores must still produce recommendations")
	}
}

func TestAdvisorService_AnalysisLoadErrorFails(t *testing.T) {
	products := &fakeProductRepo{catalog: fullCatalog()}
	analyses := &fakeAnalysisRepo{err: errors.New("db down")}
	recs := &fakeRecRepo{}

	svc := newTestService(products, analyses, recs)

	if _, err := svc.Recommend(context.Background(), 3, 7, domain.Lifestyle{}, domain.UserProfile{}); err == nil {
		t.Fatal("a storage error is not the same as a missing row and must surface")
	}
}

func TestAdvisorService_SaveFailureDoesNotFailRequest(t *testing.T) {
	products := &fakeProductRepo{catalog: fullCatalog()}
	analyses := &fakeAnalysisRepo{found: false}
	recs := &fakeRecRepo{saveErr: errors.New("disk full")}

	svc := newTestService(products, analyses, recs)

	resp, err := svc.Recommend(context.Background(), 3, 0, domain.Lifestyle{}, domain.UserProfile{})
	if err != nil {
		t.Fatalf("log write failure must not cost the user the recommendation: %v", err)
	}
	if len(resp.Top) == 0 {
		t.Fatal("response should still carry recommendations")
	}
}

func TestAdvisorService_CancelledContext(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeAnalysisRepo{}, &fakeRecRepo{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, 3, 7, domain.Lifestyle{}, domain.UserProfile{}); err == nil {
		t.Fatal("cancelled context must abort the request")
	}
}
