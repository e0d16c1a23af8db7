package advisor

import (
	"strings"

	"skinAdvisor/domain"
)

// DerivedMetrics are the composite indicators computed once per payload.
// Both the age estimator and the rule scorer read from the same instance
// so they always agree on dryness/sensitivity values.
type DerivedMetrics struct {
	Sebum       float64
	Dryness     float64
	Sensitivity float64
	Acne        float64
	Redness     float64
}

// Camera fallback values for missing metrics.
const (
	defaultSebum        = 50
	defaultMoisture     = 50
	defaultRedness      = 30
	defaultAcne         = 30
	defaultWrinkle      = 40
	defaultPore         = 50
	defaultPigmentation = 40
	defaultTone         = 50
)

func camVal(cam map[string]float64, key string, fallback float64) float64 {
	if cam == nil {
		return fallback
	}
	if v, ok := cam[key]; ok {
		return v
	}
	return fallback
}

// DeriveMetrics combines camera scores, environment and lifestyle into the
// derived indicators. Pure; must be called before age estimation or
// scoring so every component reads the same values.
func DeriveMetrics(p *domain.AdvisorPayload) DerivedMetrics {
	sebum := camVal(p.Camera, "sebum", defaultSebum)
	moisture := camVal(p.Camera, "moisture", defaultMoisture)
	redness := camVal(p.Camera, "redness", defaultRedness)
	acne := camVal(p.Camera, "acne", defaultAcne)

	// Dryness: the less moisture, the higher; dry weather adds on top.
	dryness := 60 - moisture
	if dryness < 0 {
		dryness = 0
	}
	if p.Env.Humidity <= 40 {
		dryness += 10
	}

	// Sensitivity: self-reported sensitivity sets a floor of 65, otherwise
	// whichever of redness/acne is worse.
	sensitivity := redness
	if acne > sensitivity {
		sensitivity = acne
	}
	if strings.EqualFold(strings.TrimSpace(p.Lifestyle.Sensitivity), "yes") && sensitivity < 65 {
		sensitivity = 65
	}

	return DerivedMetrics{
		Sebum:       sebum,
		Dryness:     dryness,
		Sensitivity: sensitivity,
		Acne:        acne,
		Redness:     redness,
	}
}
