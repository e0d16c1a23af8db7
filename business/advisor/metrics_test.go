//go:build !integration

package advisor

import (
	"testing"

	"skinAdvisor/domain"
)

func TestDeriveMetrics_Dryness(t *testing.T) {
	cases := []struct {
		name     string
		moisture float64
		humidity float64
		want     float64
	}{
		{"low moisture humid day", 20, 60, 40},
		{"low moisture dry day", 20, 30, 50},
		{"high moisture no floor below zero", 80, 60, 0},
		{"high moisture dry day only weather term", 80, 40, 10},
		{"boundary humidity 40 counts as dry", 50, 40, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.AdvisorPayload{
				Camera: map[string]float64{"moisture": tc.moisture},
				Env:    domain.EnvSnapshot{Humidity: tc.humidity},
			}
			m := DeriveMetrics(p)
			if m.Dryness != tc.want {
				t.Fatalf("dryness = %v, want %v", m.Dryness, tc.want)
			}
		})
	}
}

func TestDeriveMetrics_SensitivityFloor(t *testing.T) {
	// derived sensitivity is max(redness, acne)
	p := &domain.AdvisorPayload{
		Camera: map[string]float64{"redness": 30, "acne": 70},
	}
	if m := DeriveMetrics(p); m.Sensitivity != 70 {
		t.Fatalf("sensitivity = %v, want 70", m.Sensitivity)
	}

	// self-reported sensitivity lifts low values to the 65 floor
	p = &domain.AdvisorPayload{
		Camera:    map[string]float64{"redness": 10, "acne": 10},
		Lifestyle: domain.Lifestyle{Sensitivity: "yes"},
	}
	if m := DeriveMetrics(p); m.Sensitivity != 65 {
		t.Fatalf("sensitivity with floor = %v, want 65", m.Sensitivity)
	}

	// the floor never lowers an already-high value
	p = &domain.AdvisorPayload{
		Camera:    map[string]float64{"redness": 80, "acne": 10},
		Lifestyle: domain.Lifestyle{Sensitivity: "YES"},
	}
	if m := DeriveMetrics(p); m.Sensitivity != 80 {
		t.Fatalf("sensitivity above floor = %v, want 80", m.Sensitivity)
	}
}

func TestDeriveMetrics_MissingCameraDefaults(t *testing.T) {
	m := DeriveMetrics(&domain.AdvisorPayload{Env: domain.EnvSnapshot{Humidity: 50}})

	if m.Sebum != defaultSebum {
		t.Errorf("sebum = %v, want default %v", m.Sebum, float64(defaultSebum))
	}
	if m.Redness != defaultRedness {
		t.Errorf("redness = %v, want default %v", m.Redness, float64(defaultRedness))
	}
	if m.Acne != defaultAcne {
		t.Errorf("acne = %v, want default %v", m.Acne, float64(defaultAcne))
	}
	// default moisture 50 → dryness 10, humidity 50 adds nothing
	if m.Dryness != 10 {
		t.Errorf("dryness = %v, want 10", m.Dryness)
	}
}
