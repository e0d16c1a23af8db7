package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"skinAdvisor/domain"
	"skinAdvisor/pkg/logger"
	"skinAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AnalysisService interface {
	Ingest(ctx context.Context, analysis *domain.AnalysisLog) (*domain.AnalysisLog, error)
	GetByID(ctx context.Context, id uint64) (*domain.AnalysisLog, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]domain.AnalysisLog, error)
}

type AnalysisHandler struct {
	analysisService AnalysisService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewAnalysisHandler(analysisService AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type IngestAnalysisRequest struct {
	Acne         float64 `json:"acne" validate:"gte=0,lte=100"`
	Wrinkles     float64 `json:"wrinkles" validate:"gte=0,lte=100"`
	Pores        float64 `json:"pores" validate:"gte=0,lte=100"`
	Pigmentation float64 `json:"pigmentation" validate:"gte=0,lte=100"`
	Redness      float64 `json:"redness" validate:"gte=0,lte=100"`
	Moisture     float64 `json:"moisture" validate:"gte=0,lte=100"`
	Sebum        float64 `json:"sebum" validate:"gte=0,lte=100"`
	Tone         float64 `json:"tone" validate:"gte=0,lte=100"`
	ImagePath    string  `json:"image_path"`
}

// Ingest stores one vision-analysis upload for the authenticated user.
func (h *AnalysisHandler) Ingest(c echo.Context) error {
	var req IngestAnalysisRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind analysis request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate analysis request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analysis := &domain.AnalysisLog{
		UserID:       userID,
		Acne:         req.Acne,
		Wrinkles:     req.Wrinkles,
		Pores:        req.Pores,
		Pigmentation: req.Pigmentation,
		Redness:      req.Redness,
		Moisture:     req.Moisture,
		Sebum:        req.Sebum,
		Tone:         req.Tone,
		ImagePath:    req.ImagePath,
	}

	stored, err := h.analysisService.Ingest(ctx, analysis)
	if err != nil {
		logger.Error("failed to ingest analysis", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.AnalysisIngestTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(stored))
}

// GetByID returns one stored analysis record.
func (h *AnalysisHandler) GetByID(c echo.Context) error {
	idStr := c.Param("id")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		logger.Error("invalid analysis id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analysis, err := h.analysisService.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "analysis not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analysis))
}

// ListMine returns the authenticated user's recent analyses.
func (h *AnalysisHandler) ListMine(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.analysisService.ListByUser(ctx, userID, limit)
	if err != nil {
		logger.Error("failed to list analyses", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(list))
}
