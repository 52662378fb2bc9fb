package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/history"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HistoryService is the history.Service surface used by the HTTP API.
type HistoryService interface {
	Save(ctx context.Context, req history.SaveRequest) (*entity.HistoryRecord, error)
	List(ctx context.Context, req history.ListRequest) ([]entity.HistoryRecord, error)
	Get(ctx context.Context, id string) (*entity.HistoryRecord, error)
	Export(ctx context.Context, req history.ListRequest) ([]byte, error)
}

type HistoryHandler struct {
	svc    HistoryService
	logger *slog.Logger
}

func NewHistoryHandler(svc HistoryService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, logger: logger}
}

type saveRequest struct {
	UserID      *int64          `json:"userId"`
	OutfitData  json.RawMessage `json:"outfitData"`
	WeatherInfo json.RawMessage `json:"weatherInfo"`
}

type saveResponse struct {
	ID string `json:"id"`
}

// Save serves POST /api/history/save.
func (h *HistoryHandler) Save(c echo.Context) error {
	var req saveRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	rec, err := h.svc.Save(c.Request().Context(), history.SaveRequest{
		UserID:      req.UserID,
		OutfitData:  req.OutfitData,
		WeatherInfo: req.WeatherInfo,
	})
	if err != nil {
		return err
	}
	return ok(c, "保存搭配历史成功", saveResponse{ID: rec.ID.String()})
}

// List serves GET /api/history?userId=&startDate=&endDate=.
func (h *HistoryHandler) List(c echo.Context) error {
	req, err := listRequest(c)
	if err != nil {
		return err
	}

	recs, err := h.svc.List(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return ok(c, "获取历史记录成功", recs)
}

// Get serves GET /api/history/:id.
func (h *HistoryHandler) Get(c echo.Context) error {
	rec, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, "获取历史记录成功", rec)
}

// Export serves GET /api/history/export with the List filters.
func (h *HistoryHandler) Export(c echo.Context) error {
	req, err := listRequest(c)
	if err != nil {
		return err
	}

	data, err := h.svc.Export(c.Request().Context(), req)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("outfit-history-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, mimeXLSX, data)
}

func listRequest(c echo.Context) (history.ListRequest, error) {
	req := history.ListRequest{
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
	}
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, common.InvalidArgumentError("userId must be an integer")
		}
		req.UserID = &id
	}
	return req, nil
}
