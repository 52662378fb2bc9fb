package server

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/outfit"
)

// OutfitService is the outfit.Service surface used by the HTTP API.
type OutfitService interface {
	Weather(ctx context.Context, location string) (*outfit.WeatherResult, error)
	WeatherRecords(ctx context.Context, location string, limit int) ([]entity.WeatherRecord, error)
	GenerateByWeather(ctx context.Context, location string) (*outfit.WeatherAdvice, error)
	GenerateByClothes(ctx context.Context, garments []entity.UserGarment, scene string) (*outfit.ClothesAdvice, error)
	ImageConfig(garments []entity.UserGarment) (entity.ImageConfig, error)
}

type WeatherHandler struct {
	svc    OutfitService
	logger *slog.Logger
}

func NewWeatherHandler(svc OutfitService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{svc: svc, logger: logger}
}

// Current serves GET /api/weather?location=.
func (h *WeatherHandler) Current(c echo.Context) error {
	res, err := h.svc.Weather(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return err
	}
	return ok(c, "获取天气信息成功", res)
}

// Records serves GET /api/weather/records?location=&limit=.
func (h *WeatherHandler) Records(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return common.InvalidArgumentError("limit must be an integer")
		}
		limit = n
	}

	recs, err := h.svc.WeatherRecords(c.Request().Context(), c.QueryParam("location"), limit)
	if err != nil {
		return err
	}
	return ok(c, "获取天气记录成功", recs)
}
