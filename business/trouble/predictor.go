package trouble

import (
	"fmt"
	"math"
	"strings"

	"skinAdvisor/domain"
)

const featureDim = 12

// Predictor estimates the probability of a skin trouble flare-up from the
// same payload the advisor scores with. It is a fixed-coefficient logistic
// model (trained offline), fully deterministic, and independent of the
// scoring engine: its output is merged into the response but never moves a
// product score.
type Predictor struct {
	weights [featureDim]float64
	bias    float64
}

// NewPredictor returns the shipped model. Feature order is fixed by the
// training pipeline: skin (redness, sebum, moisture, acne), environment
// (uv, humidity, temperature), lifestyle (sleep hours, water intake,
// wash frequency, hot-wash flag, sensitivity flag).
func NewPredictor() *Predictor {
	return &Predictor{
		weights: [featureDim]float64{
			0.012,   // redness
			0.015,   // sebum
			-0.010,  // moisture
			0.030,   // acne
			0.040,   // uv
			0.005,   // humidity
			0.010,   // temperature
			-0.080,  // sleep_hours_7d
			-0.0004, // water_intake_ml
			0.050,   // wash_freq_per_day
			0.400,   // wash_temp == hot
			0.300,   // sensitivity == yes
		},
		bias: -1.7,
	}
}

func featureVector(p *domain.AdvisorPayload) [featureDim]float64 {
	cam := func(key string) float64 {
		if p.Camera == nil {
			return 0
		}
		return p.Camera[key]
	}

	hotWash := 0.0
	if strings.EqualFold(strings.TrimSpace(p.Lifestyle.WashTemp), "hot") {
		hotWash = 1.0
	}
	sensitive := 0.0
	if strings.EqualFold(strings.TrimSpace(p.Lifestyle.Sensitivity), "yes") {
		sensitive = 1.0
	}

	return [featureDim]float64{
		cam("redness"),
		cam("sebum"),
		cam("moisture"),
		cam("acne"),
		p.Env.UV,
		p.Env.Humidity,
		p.Env.Temperature,
		p.Lifestyle.SleepHours7d,
		p.Lifestyle.WaterIntakeML,
		p.Lifestyle.WashFreqPerDay,
		hotWash,
		sensitive,
	}
}

// Predict returns the flare-up probability rounded to 2 decimals plus a
// display message.
func (m *Predictor) Predict(p *domain.AdvisorPayload) domain.TroublePrediction {
	x := featureVector(p)

	z := m.bias
	for i := 0; i < featureDim; i++ {
		z += m.weights[i] * x[i]
	}

	prob := 1.0 / (1.0 + math.Exp(-z))
	prob = math.Round(prob*100) / 100

	return domain.TroublePrediction{
		Prob:    &prob,
		Message: fmt.Sprintf("트러블 발생 확률: %d%%", int(prob*100)),
	}
}
