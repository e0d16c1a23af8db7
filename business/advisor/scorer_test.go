//go:build !integration

package advisor

import (
	"testing"

	"skinAdvisor/domain"

	"gorm.io/datatypes"
)

func testProduct(name, category string, tags, ingredients []string) domain.Product {
	return domain.Product{
		Name:                name,
		Brand:               "testbrand",
		OfficialCategory:    category,
		Tags:                datatypes.JSONSlice[string](tags),
		FeaturedIngredients: datatypes.JSONSlice[string](ingredients),
	}
}

func testEngine() *Engine {
	return NewEngine(DefaultRules(), DefaultLocale())
}

func TestScoreProduct_OilySummerScenario(t *testing.T) {
	e := testEngine()

	// hot, humid, strong UV; oily skin with large pores
	payload := &domain.AdvisorPayload{
		Camera: map[string]float64{
			"sebum": 90, "pore": 60, "moisture": 50,
			"redness": 20, "acne": 20, "tone": 50,
		},
		Env:  domain.EnvSnapshot{UV: 6.5, Humidity: 75, Temperature: 30},
		Hour: 12,
	}
	m := DeriveMetrics(payload)

	// sebum load 0.5*90 + 0.3*60 = 63 crosses the 60 gate
	sunscreen := testProduct("strong sun", "Sunscreen", []string{"spf50", "light"}, nil)
	sebumGel := testProduct("fresh gel", "Gel", []string{"gel", "sebum", "light"}, nil)
	faceOil := testProduct("face oil", "Cream", []string{"oil", "rich"}, nil)

	sun := e.ScoreProduct(sunscreen, payload, m)
	// spf50 (+30) and humid-weather light texture (+20)
	if sun.Points != 50 {
		t.Errorf("sunscreen points = %v, want 50", sun.Points)
	}

	gel := e.ScoreProduct(sebumGel, payload, m)
	// humid (+20), hot (+15), sebum load (+15), default gel preference (+5)
	if gel.Points != 55 {
		t.Errorf("sebum gel points = %v, want 55", gel.Points)
	}
	if len(gel.Evidence) != 4 {
		t.Errorf("sebum gel evidence count = %d, want 4", len(gel.Evidence))
	}

	oil := e.ScoreProduct(faceOil, payload, m)
	// only the heavy-oil penalty fires (-10)
	if oil.Points != -10 {
		t.Errorf("face oil points = %v, want -10", oil.Points)
	}
	if oil.Eligible() {
		t.Error("negative-score product must not be eligible")
	}
}

func TestScoreProduct_DrynessScenario(t *testing.T) {
	e := testEngine()

	payload := &domain.AdvisorPayload{
		Camera: map[string]float64{"moisture": 20, "sebum": 30, "pore": 30},
		Env:    domain.EnvSnapshot{UV: 2, Humidity: 30, Temperature: 5},
		User:   domain.UserProfile{Age: 35, PrefTexture: "cream"},
	}
	m := DeriveMetrics(payload)

	richCream := testProduct("barrier cream", "Cream", []string{"cream", "rich", "ceramide"}, nil)
	out := e.ScoreProduct(richCream, payload, m)

	// dry weather (+20), cold weather (+15), cream preference (+5), mature rich bonus (+15)
	if out.Points != 55 {
		t.Fatalf("rich cream points = %v, want 55", out.Points)
	}
}

func TestScoreProduct_DaytimeRetinolBan(t *testing.T) {
	e := testEngine()
	retinolSerum := testProduct("night serum", "Serum", []string{"anti-aging"}, []string{"retinol"})
	retinoidCream := testProduct("a-cream", "Cream", []string{"retinoid"}, nil)

	payload := func(hour int) *domain.AdvisorPayload {
		return &domain.AdvisorPayload{
			Camera: map[string]float64{"sebum": 50, "pore": 50},
			Env:    domain.EnvSnapshot{UV: 2, Humidity: 50, Temperature: 20},
			User:   domain.UserProfile{Age: 35},
			Hour:   hour,
		}
	}

	cases := []struct {
		hour   int
		banned bool
	}{
		{5, false},
		{6, true},
		{12, true},
		{17, true},
		{18, false},
		{22, false},
	}

	for _, tc := range cases {
		p := payload(tc.hour)
		m := DeriveMetrics(p)

		out := e.ScoreProduct(retinolSerum, p, m)
		if out.Banned != tc.banned {
			t.Errorf("retinol ingredient at hour %d: banned = %v, want %v", tc.hour, out.Banned, tc.banned)
		}
		if tc.banned && out.BanReason != BanDaytimeRetinol {
			t.Errorf("hour %d: ban reason = %q, want %q", tc.hour, out.BanReason, BanDaytimeRetinol)
		}

		out = e.ScoreProduct(retinoidCream, p, m)
		if out.Banned != tc.banned {
			t.Errorf("retinoid tag at hour %d: banned = %v, want %v", tc.hour, out.Banned, tc.banned)
		}
	}
}

func TestScoreProduct_SensitiveIrritantBan(t *testing.T) {
	e := testEngine()
	peel := testProduct("strong peel", "Toner", []string{"strong_acid"}, nil)

	sensitive := &domain.AdvisorPayload{
		Camera:    map[string]float64{"redness": 10, "acne": 10},
		Env:       domain.EnvSnapshot{Humidity: 50},
		Lifestyle: domain.Lifestyle{Sensitivity: "yes"},
		Hour:      20,
	}
	out := e.ScoreProduct(peel, sensitive, DeriveMetrics(sensitive))
	if !out.Banned || out.BanReason != BanSensitiveIrritant {
		t.Fatalf("sensitive user + strong acid: got %+v, want sensitive_irritant ban", out)
	}

	// derived sensitivity alone (redness 80) also trips the ban
	flushed := &domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 80, "acne": 10},
		Env:    domain.EnvSnapshot{Humidity: 50},
		Hour:   20,
	}
	out = e.ScoreProduct(peel, flushed, DeriveMetrics(flushed))
	if !out.Banned {
		t.Fatal("high derived sensitivity must also ban irritant tags")
	}

	calm := &domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 10, "acne": 10},
		Env:    domain.EnvSnapshot{Humidity: 50},
		Hour:   20,
	}
	out = e.ScoreProduct(peel, calm, DeriveMetrics(calm))
	if out.Banned {
		t.Fatal("non-sensitive user must not trigger the irritant ban")
	}
}

func TestScoreProduct_BanOverridesAccumulatedPoints(t *testing.T) {
	e := testEngine()

	// would score heavily via spf50 + anti-aging, but carries retinoid
	loaded := testProduct("do-it-all", "Sunscreen", []string{"spf50", "anti-aging", "retinoid"}, nil)
	payload := &domain.AdvisorPayload{
		Camera: map[string]float64{"sebum": 50, "pore": 50},
		Env:    domain.EnvSnapshot{UV: 9, Humidity: 50, Temperature: 20},
		User:   domain.UserProfile{Age: 40},
		Hour:   12,
	}

	out := e.ScoreProduct(loaded, payload, DeriveMetrics(payload))
	if !out.Banned {
		t.Fatal("ban must not be outweighed by positive rules")
	}
	if out.Eligible() {
		t.Fatal("banned product can never be eligible")
	}
	if out.Points != 0 {
		t.Fatalf("banned outcome carries no points, got %v", out.Points)
	}
}

func TestScoreProduct_TagNormalization(t *testing.T) {
	e := testEngine()

	shouty := testProduct("shouty sun", "Sunscreen", []string{"  SPF50 ", " Light"}, nil)
	payload := &domain.AdvisorPayload{
		Camera: map[string]float64{"sebum": 30, "pore": 30},
		Env:    domain.EnvSnapshot{UV: 7, Humidity: 50, Temperature: 20},
		Hour:   12,
	}

	out := e.ScoreProduct(shouty, payload, DeriveMetrics(payload))
	if out.Points != defaultUVHighSPF50 {
		t.Fatalf("mixed-case tags should still match: points = %v, want %v", out.Points, float64(defaultUVHighSPF50))
	}
}
