package domain

import "time"

// AdvisorPayload is the full per-request context the scoring engine works
// on. It is assembled once by the advisor service and passed by reference
// into every engine call; the engine never mutates it.
type AdvisorPayload struct {
	// Camera holds vision-derived scores keyed by metric name (sebum,
	// moisture, redness, acne, wrinkle, pore, pigmentation, tone), each
	// conventionally in [0,100]. Missing keys fall back to documented
	// defaults inside the engine.
	Camera    map[string]float64 `json:"camera"`
	Env       EnvSnapshot        `json:"env"`
	Lifestyle Lifestyle          `json:"lifestyle"`
	User      UserProfile        `json:"user"`
	// Hour of day [0,23], drives the daytime retinol ban.
	Hour int `json:"hour"`
	// Weekday is carried in the payload so routine composition stays
	// deterministic for a fixed payload.
	Weekday time.Weekday `json:"weekday"`
}

type EnvSnapshot struct {
	UV          float64 `json:"uv"`
	Humidity    float64 `json:"humidity"`
	Temperature float64 `json:"temperature"`
	Source      string  `json:"source,omitempty"`
}

type Lifestyle struct {
	SleepHours7d   float64 `json:"sleep_hours_7d"`
	WaterIntakeML  float64 `json:"water_intake_ml"`
	WashFreqPerDay float64 `json:"wash_freq_per_day"`
	WashTemp       string  `json:"wash_temp"`   // hot | normal | cold
	Sensitivity    string  `json:"sensitivity"` // yes | no
}

type UserProfile struct {
	Age         int    `json:"age"`
	PrefTexture string `json:"pref_texture"` // gel | cream | lotion (freeform accepted)
}

// DisplayEntry is one recommended product shaped for the app/kiosk front
// end: localized category and tags, trimmed evidence.
type DisplayEntry struct {
	Rank     int      `json:"rank"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Tags     []string `json:"tags"`
	Reasons  []string `json:"reasons"`
}

type Routine struct {
	Morning []string `json:"am"`
	Evening []string `json:"pm"`
}

// AdvisorResult is the scoring engine's output for one payload + catalog.
type AdvisorResult struct {
	SkinAge float64        `json:"skin_age"`
	Top     []DisplayEntry `json:"top_n"`
	Reasons []string       `json:"reasons"`
	Routine Routine        `json:"routine"`
}

// TroublePrediction is the sibling classifier output merged into the final
// response. It never influences product scores.
type TroublePrediction struct {
	Prob    *float64 `json:"prob"`
	Message string   `json:"msg"`
}

// RecommendationResponse is what the HTTP layer returns.
type RecommendationResponse struct {
	UserID            uint              `json:"user_id"`
	AnalysisID        uint64            `json:"analysis_id"`
	SkinAge           float64           `json:"skin_age"`
	Top               []DisplayEntry    `json:"top_n"`
	Reasons           []string          `json:"reasons"`
	Routine           Routine           `json:"routine"`
	TroublePrediction TroublePrediction `json:"trouble_prediction"`
}
