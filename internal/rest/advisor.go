package rest

import (
	"context"
	"net/http"
	"time"

	"skinAdvisor/business/advisor"
	"skinAdvisor/domain"
	"skinAdvisor/pkg/logger"
	"skinAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AdvisorService interface {
	Recommend(ctx context.Context, userID uint, analysisID uint64, lifestyle domain.Lifestyle, profile domain.UserProfile) (domain.RecommendationResponse, error)
	History(ctx context.Context, userID uint) ([]domain.HistoryEntry, error)
}

type AdvisorHandler struct {
	advisorService AdvisorService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewAdvisorHandler(advisorService AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type RecommendRequest struct {
	AnalysisID uint64 `json:"analysis_id"`
	Lifestyle  struct {
		SleepHours7d   float64 `json:"sleep_hours_7d" validate:"gte=0,lte=24"`
		WaterIntakeML  float64 `json:"water_intake_ml" validate:"gte=0"`
		WashFreqPerDay float64 `json:"wash_freq_per_day" validate:"gte=0"`
		WashTemp       string  `json:"wash_temp" validate:"omitempty,oneof=hot normal cold"`
		Sensitivity    string  `json:"sensitivity" validate:"omitempty,oneof=yes no"`
	} `json:"lifestyle"`
	User struct {
		Age         int    `json:"age" validate:"gte=0,lte=120"`
		PrefTexture string `json:"pref_texture"`
	} `json:"user"`
}

// Recommend runs the full advisory pipeline for the authenticated user:
// stored analysis scores + current weather + the lifestyle answers from
// the request body.
func (h *AdvisorHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind recommend request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate recommend request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, advisor.RequestIDKey, uuid.NewString())

	lifestyle := domain.Lifestyle{
		SleepHours7d:   req.Lifestyle.SleepHours7d,
		WaterIntakeML:  req.Lifestyle.WaterIntakeML,
		WashFreqPerDay: req.Lifestyle.WashFreqPerDay,
		WashTemp:       req.Lifestyle.WashTemp,
		Sensitivity:    req.Lifestyle.Sensitivity,
	}
	profile := domain.UserProfile{
		Age:         req.User.Age,
		PrefTexture: req.User.PrefTexture,
	}

	result, err := h.advisorService.Recommend(ctx, userID, req.AnalysisID, lifestyle, profile)
	if err != nil {
		logger.Error("failed to build recommendation", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.AdvisorRecommendRequests.Inc()
	metrics.AdvisorRecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// History returns the authenticated user's past recommendation runs.
func (h *AdvisorHandler) History(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.advisorService.History(ctx, userID)
	if err != nil {
		logger.Error("failed to load recommendation history", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(history))
}
