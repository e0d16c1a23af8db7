//go:build !integration

package advisor

import (
	"reflect"
	"testing"
	"time"

	"skinAdvisor/domain"
)

func fullPayload() *domain.AdvisorPayload {
	return &domain.AdvisorPayload{
		Camera: map[string]float64{
			"sebum": 70, "moisture": 35, "redness": 40, "acne": 65,
			"wrinkle": 45, "pore": 55, "pigmentation": 30, "tone": 48,
		},
		Env: domain.EnvSnapshot{UV: 7.2, Humidity: 38, Temperature: 29},
		Lifestyle: domain.Lifestyle{
			SleepHours7d:   6,
			WaterIntakeML:  1200,
			WashFreqPerDay: 3,
			WashTemp:       "hot",
			Sensitivity:    "no",
		},
		User:    domain.UserProfile{Age: 28, PrefTexture: "gel"},
		Hour:    14,
		Weekday: time.Saturday,
	}
}

func fullCatalog() []domain.Product {
	return []domain.Product{
		testProduct("strong sun", "Sunscreen", []string{"spf50", "light", "no-white-cast"}, nil),
		testProduct("cica gel", "Gel", []string{"gel", "cica", "soothing", "acne-care"}, nil),
		testProduct("rich cream", "Cream", []string{"cream", "rich", "ceramide", "moisturizing"}, nil),
		testProduct("night retinol", "Serum", []string{"anti-aging"}, []string{"retinol"}),
		testProduct("plain toner", "Toner", []string{"brightening"}, nil),
	}
}

func TestEngineRecommend_Deterministic(t *testing.T) {
	e := testEngine()

	a := e.Recommend(fullPayload(), fullCatalog(), 3)
	b := e.Recommend(fullPayload(), fullCatalog(), 3)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical payload and catalog must give identical results:\n%+v\n%+v", a, b)
	}
}

func TestEngineRecommend_FullResult(t *testing.T) {
	e := testEngine()

	result := e.Recommend(fullPayload(), fullCatalog(), 3)

	if len(result.Top) != 3 {
		t.Fatalf("top = %d entries, want 3", len(result.Top))
	}

	for i, en := range result.Top {
		if en.Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, en.Rank, i+1)
		}
		if len(en.Reasons) == 0 || len(en.Reasons) > maxDisplayReasons {
			t.Errorf("entry %d reasons = %d, want 1..%d", i, len(en.Reasons), maxDisplayReasons)
		}
		if len(en.Tags) > maxDisplayTags {
			t.Errorf("entry %d tags = %d, want at most %d", i, len(en.Tags), maxDisplayTags)
		}
	}

	// scores arrive sorted descending
	for i := 1; i < len(result.Top); i++ {
		if result.Top[i].Score > result.Top[i-1].Score {
			t.Fatalf("entries out of score order: %v", result.Top)
		}
	}

	// daytime retinol never surfaces at 14:00
	for _, en := range result.Top {
		if en.Name == "night retinol" {
			t.Fatal("daytime request must not surface a retinol product")
		}
	}

	if result.SkinAge < 15 || result.SkinAge > 80 {
		t.Errorf("skin age %v out of range", result.SkinAge)
	}
	if len(result.Reasons) == 0 {
		t.Error("reasons must never be empty")
	}
	if len(result.Routine.Morning) == 0 || len(result.Routine.Evening) == 0 {
		t.Error("routine must always have both sequences")
	}
}

func TestEngineRecommend_EmptyCatalog(t *testing.T) {
	e := testEngine()

	result := e.Recommend(fullPayload(), nil, 3)

	if len(result.Top) != 0 {
		t.Fatalf("empty catalog produced %d entries", len(result.Top))
	}
	if len(result.Reasons) == 0 {
		t.Error("summary must fall back to the generic sentence")
	}
	if len(result.Routine.Morning) == 0 || len(result.Routine.Evening) == 0 {
		t.Error("routine must survive an empty catalog")
	}
	if result.SkinAge == 0 {
		t.Error("skin age estimation does not depend on the catalog")
	}
}

func TestEngineRecommend_LocalizedDisplay(t *testing.T) {
	e := testEngine()

	payload := fullPayload()
	result := e.Recommend(payload, fullCatalog(), 3)

	for _, en := range result.Top {
		if en.Category == "Sunscreen" {
			t.Errorf("category left unlocalized: %q", en.Category)
		}
		for _, tag := range en.Tags {
			if tag == "spf50" || tag == "cica" || tag == "cream" {
				t.Errorf("tag left unlocalized: %q", tag)
			}
		}
	}
}

func TestFormatEntries_UnknownVocabularyPassesThrough(t *testing.T) {
	e := testEngine()

	ranked := []ScoredCandidate{{
		Product:  testProduct("mystery", "Mist", []string{"snail-mucin"}, nil),
		Score:    12.3456,
		Evidence: []string{"a", "b", "c", "d"},
	}}

	entries := e.FormatEntries(ranked)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	en := entries[0]
	if en.Category != "Mist" {
		t.Errorf("unknown category should pass through, got %q", en.Category)
	}
	if en.Tags[0] != "snail-mucin" {
		t.Errorf("unknown tag should pass through, got %q", en.Tags[0])
	}
	if en.Score != 12.35 {
		t.Errorf("score = %v, want rounded 12.35", en.Score)
	}
	if len(en.Reasons) != maxDisplayReasons {
		t.Errorf("reasons = %d, want capped at %d", len(en.Reasons), maxDisplayReasons)
	}
}

func TestSummarizeReasons_Triggers(t *testing.T) {
	e := testEngine()

	// nothing notable: exactly the generic fallback
	calm := &domain.AdvisorPayload{
		Camera: map[string]float64{"moisture": 70, "acne": 10, "redness": 10},
		Env:    domain.EnvSnapshot{UV: 2, Humidity: 50, Temperature: 20},
	}
	reasons := e.SummarizeReasons(calm, DeriveMetrics(calm))
	if len(reasons) != 1 {
		t.Fatalf("calm payload reasons = %d, want 1 generic sentence", len(reasons))
	}

	// strong UV + dryness + acne: all three sentences, no fallback
	rough := &domain.AdvisorPayload{
		Camera: map[string]float64{"moisture": 5, "acne": 80, "redness": 30},
		Env:    domain.EnvSnapshot{UV: 8, Humidity: 30, Temperature: 20},
	}
	reasons = e.SummarizeReasons(rough, DeriveMetrics(rough))
	if len(reasons) != 3 {
		t.Fatalf("rough payload reasons = %d, want 3", len(reasons))
	}
}
