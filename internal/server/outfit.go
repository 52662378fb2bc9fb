package server

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

const msgClothesRequired = "请提供衣物信息"

type OutfitHandler struct {
	svc    OutfitService
	logger *slog.Logger
}

func NewOutfitHandler(svc OutfitService, logger *slog.Logger) *OutfitHandler {
	return &OutfitHandler{svc: svc, logger: logger}
}

type generateRequest struct {
	Location string `json:"location"`
}

type clothesRequest struct {
	Clothes []entity.UserGarment `json:"clothes"`
	Scene   *string              `json:"scene"`
}

type imageResponse struct {
	ImageConfig entity.ImageConfig   `json:"imageConfig"`
	Clothes     []entity.UserGarment `json:"clothes"`
}

// Generate serves POST /api/outfit/generate.
func (h *OutfitHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	advice, err := h.svc.GenerateByWeather(c.Request().Context(), req.Location)
	if err != nil {
		return err
	}
	return ok(c, "生成穿搭建议成功", advice)
}

// GenerateByClothes serves POST /api/outfit/generate-by-clothes.
func (h *OutfitHandler) GenerateByClothes(c echo.Context) error {
	req, err := h.bindClothes(c)
	if err != nil {
		return err
	}
	scene := ""
	if req.Scene != nil {
		scene = *req.Scene
	}

	advice, err := h.svc.GenerateByClothes(c.Request().Context(), req.Clothes, scene)
	if err != nil {
		return err
	}
	return ok(c, "生成穿搭建议成功", advice)
}

// GenerateImage serves POST /api/outfit/generate-image.
func (h *OutfitHandler) GenerateImage(c echo.Context) error {
	req, err := h.bindClothes(c)
	if err != nil {
		return err
	}

	cfg, err := h.svc.ImageConfig(req.Clothes)
	if err != nil {
		return err
	}
	return ok(c, "生成效果图配置成功", imageResponse{ImageConfig: cfg, Clothes: req.Clothes})
}

// bindClothes validates the body against clothesSchema before decoding it.
func (h *OutfitHandler) bindClothes(c echo.Context) (*clothesRequest, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if err := validateJSON(clothesValidator, body); err != nil {
		common.LoggerFromContext(c.Request().Context(), h.logger).Debug("outfit.request.invalid", "error", err)
		return nil, common.InvalidArgumentError(msgClothesRequired)
	}

	var req clothesRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, common.InvalidArgumentError(msgClothesRequired)
	}
	return &req, nil
}
