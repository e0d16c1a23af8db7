package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skinAdvisor/domain"
	"skinAdvisor/pkg/logger"
)

type OWMConfig struct {
	ApiKey    string
	BaseURL   string
	Latitude  float64
	Longitude float64
}

// OWMRepository resolves the current environment from OpenWeatherMap.
// It never returns an error: any failure (missing key, timeout, bad
// payload) falls back to a fixed neutral snapshot so a recommendation is
// always possible.
type OWMRepository struct {
	cfg    OWMConfig
	client *http.Client
}

func NewOWMRepository(cfg OWMConfig) *OWMRepository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org"
	}
	return &OWMRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

// fallbackEnv is the documented neutral snapshot.
func fallbackEnv() domain.EnvSnapshot {
	return domain.EnvSnapshot{
		UV:          5.0,
		Humidity:    45,
		Temperature: 24.0,
		Source:      "fallback",
	}
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

func (r *OWMRepository) Current(ctx context.Context) domain.EnvSnapshot {
	if r.cfg.ApiKey == "" {
		return fallbackEnv()
	}

	url := fmt.Sprintf("%s/data/2.5/weather?lat=%f&lon=%f&units=metric&appid=%s",
		r.cfg.BaseURL, r.cfg.Latitude, r.cfg.Longitude, r.cfg.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Warn("weather request build failed, using fallback", "error", err)
		return fallbackEnv()
	}

	res, err := r.client.Do(req)
	if err != nil {
		logger.Warn("weather api call failed, using fallback", "error", err)
		return fallbackEnv()
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.Warn("weather api returned non-200, using fallback", "status", res.StatusCode)
		return fallbackEnv()
	}

	var data owmResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		logger.Warn("weather api payload decode failed, using fallback", "error", err)
		return fallbackEnv()
	}

	return domain.EnvSnapshot{
		// the free weather endpoint has no UV index, pin the neutral value
		UV:          5.0,
		Humidity:    data.Main.Humidity,
		Temperature: data.Main.Temp,
		Source:      "api(weather)",
	}
}
