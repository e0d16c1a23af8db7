//go:build !integration

package trouble

import (
	"strings"
	"testing"

	"skinAdvisor/domain"
)

func TestPredict_ZeroPayloadBaseline(t *testing.T) {
	m := NewPredictor()

	out := m.Predict(&domain.AdvisorPayload{})
	if out.Prob == nil {
		t.Fatal("prediction must always carry a probability")
	}

	// only the bias contributes: sigmoid(-1.7) ≈ 0.1545, rounded to 0.15
	if *out.Prob != 0.15 {
		t.Fatalf("baseline prob = %v, want 0.15", *out.Prob)
	}
	if !strings.Contains(out.Message, "15%") {
		t.Fatalf("message %q should state the percentage", out.Message)
	}
}

func TestPredict_RiskFactorsRaiseProbability(t *testing.T) {
	m := NewPredictor()

	calm := &domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 10, "sebum": 20, "moisture": 70, "acne": 5},
		Env:    domain.EnvSnapshot{UV: 2, Humidity: 50, Temperature: 20},
		Lifestyle: domain.Lifestyle{
			SleepHours7d:   8,
			WaterIntakeML:  2000,
			WashFreqPerDay: 2,
			WashTemp:       "normal",
			Sensitivity:    "no",
		},
	}

	stressed := &domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 70, "sebum": 85, "moisture": 20, "acne": 80},
		Env:    domain.EnvSnapshot{UV: 9, Humidity: 80, Temperature: 32},
		Lifestyle: domain.Lifestyle{
			SleepHours7d:   4,
			WaterIntakeML:  500,
			WashFreqPerDay: 5,
			WashTemp:       "hot",
			Sensitivity:    "yes",
		},
	}

	low := *m.Predict(calm).Prob
	high := *m.Predict(stressed).Prob

	if high <= low {
		t.Fatalf("stressed profile must score higher: %v <= %v", high, low)
	}
	if low < 0 || low > 1 || high < 0 || high > 1 {
		t.Fatalf("probabilities out of [0,1]: %v, %v", low, high)
	}
}

func TestPredict_HotWashFlag(t *testing.T) {
	m := NewPredictor()

	base := domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 30, "sebum": 50, "moisture": 50, "acne": 30},
		Env:    domain.EnvSnapshot{UV: 5, Humidity: 45, Temperature: 24},
		Lifestyle: domain.Lifestyle{
			SleepHours7d:  7,
			WaterIntakeML: 1500,
			WashTemp:      "normal",
		},
	}

	hot := base
	hot.Lifestyle.WashTemp = "HOT"

	cold := *m.Predict(&base).Prob
	heated := *m.Predict(&hot).Prob

	if heated <= cold {
		t.Fatalf("hot wash flag must raise the probability: %v <= %v", heated, cold)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	m := NewPredictor()

	p := &domain.AdvisorPayload{
		Camera:    map[string]float64{"redness": 42, "sebum": 61, "moisture": 38, "acne": 57},
		Env:       domain.EnvSnapshot{UV: 6.1, Humidity: 58, Temperature: 27},
		Lifestyle: domain.Lifestyle{SleepHours7d: 5.5, WaterIntakeML: 900, WashFreqPerDay: 3},
	}

	a := *m.Predict(p).Prob
	b := *m.Predict(p).Prob
	if a != b {
		t.Fatalf("identical payloads must predict identically: %v vs %v", a, b)
	}
}
