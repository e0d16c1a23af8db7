package advisor

import (
	"math"

	"skinAdvisor/domain"
)

const (
	skinAgeMin = 15
	skinAgeMax = 80

	defaultUserAge = 25
)

// userAge returns the stated age, or the neutral default when the caller
// never supplied one.
func userAge(p *domain.AdvisorPayload) float64 {
	if p.User.Age <= 0 {
		return defaultUserAge
	}
	return float64(p.User.Age)
}

// EstimateSkinAge computes the estimated skin age from camera flaws, the
// derived metrics and the user's stated age. Wrinkles carry the largest
// weight; a neutral score of 50 keeps the delta centered, and the final
// clamp keeps the result within [15, 80] for any input.
func EstimateSkinAge(p *domain.AdvisorPayload, m DerivedMetrics) float64 {
	wrinkle := camVal(p.Camera, "wrinkle", defaultWrinkle)
	pore := camVal(p.Camera, "pore", defaultPore)
	pigm := camVal(p.Camera, "pigmentation", defaultPigmentation)
	tone := camVal(p.Camera, "tone", defaultTone)

	toneLoss := 50 - tone
	if toneLoss < 0 {
		toneLoss = 0
	}

	agingScore := 0.30*wrinkle +
		0.15*pore +
		0.15*pigm +
		0.10*m.Redness +
		0.05*m.Acne +
		0.10*m.Dryness +
		0.15*toneLoss

	delta := 0.12 * (agingScore - 50)

	age := userAge(p) + delta
	if age < skinAgeMin {
		age = skinAgeMin
	}
	if age > skinAgeMax {
		age = skinAgeMax
	}

	return math.Round(age*10) / 10
}
