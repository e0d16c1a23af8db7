//go:build !integration

package analysis

import (
	"context"
	"testing"

	"skinAdvisor/domain"
)

type fakeAnalysisRepo struct {
	created []*domain.AnalysisLog
	byID    map[uint64]domain.AnalysisLog
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{byID: map[uint64]domain.AnalysisLog{}}
}

func (f *fakeAnalysisRepo) Create(ctx context.Context, analysis *domain.AnalysisLog) error {
	analysis.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, analysis)
	f.byID[analysis.ID] = *analysis
	return nil
}

func (f *fakeAnalysisRepo) FindByID(ctx context.Context, id uint64) (domain.AnalysisLog, bool, error) {
	a, ok := f.byID[id]
	return a, ok, nil
}

func (f *fakeAnalysisRepo) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.AnalysisLog, error) {
	var out []domain.AnalysisLog
	for _, a := range f.created {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func TestIngest_StoresValidAnalysis(t *testing.T) {
	repo := newFakeAnalysisRepo()
	svc := NewAnalysisService(repo)

	stored, err := svc.Ingest(context.Background(), &domain.AnalysisLog{
		UserID: 3, Acne: 65, Wrinkles: 45, Pores: 55,
		Pigmentation: 30, Redness: 40, Moisture: 35, Sebum: 70, Tone: 48,
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("stored analysis must get an id")
	}

	got, err := svc.GetByID(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Sebum != 70 {
		t.Fatalf("round-tripped sebum = %v, want 70", got.Sebum)
	}
}

func TestIngest_RejectsInvalidInput(t *testing.T) {
	svc := NewAnalysisService(newFakeAnalysisRepo())

	// missing user
	if _, err := svc.Ingest(context.Background(), &domain.AnalysisLog{Acne: 50}); err == nil {
		t.Error("missing user id must be rejected")
	}

	// out-of-range score
	if _, err := svc.Ingest(context.Background(), &domain.AnalysisLog{UserID: 3, Acne: 140}); err == nil {
		t.Error("score above 100 must be rejected")
	}
	if _, err := svc.Ingest(context.Background(), &domain.AnalysisLog{UserID: 3, Moisture: -5}); err == nil {
		t.Error("negative score must be rejected")
	}
}

func TestGetByID_Unknown(t *testing.T) {
	svc := NewAnalysisService(newFakeAnalysisRepo())

	if _, err := svc.GetByID(context.Background(), 42); err == nil {
		t.Fatal("unknown id must return an error")
	}
	if _, err := svc.GetByID(context.Background(), 0); err == nil {
		t.Fatal("zero id must be rejected")
	}
}
