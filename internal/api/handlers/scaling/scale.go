package scaling

import (
	"net/http"

	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScaleRecipeRequest 食譜縮放請求
type ScaleRecipeRequest struct {
	Ingredients []common.Ingredient `json:"ingredients" binding:"required"`
	Factor      float64             `json:"factor"`
}

// ScaleRecipeResponse 食譜縮放響應
type ScaleRecipeResponse struct {
	Ingredients []common.Ingredient `json:"ingredients"`
	Factor      float64             `json:"factor"`
}

// ScaleByAmountRequest 依可用量縮放請求
// original_quantity 是食譜原本需要的量，available_quantity 是手上實際有的量
type ScaleByAmountRequest struct {
	Ingredients       []common.Ingredient `json:"ingredients" binding:"required"`
	OriginalQuantity  float64             `json:"original_quantity"`
	AvailableQuantity float64             `json:"available_quantity"`
}

// ScaleByAmountResponse 依可用量縮放響應
type ScaleByAmountResponse struct {
	Factor      float64             `json:"factor"`
	Ingredients []common.Ingredient `json:"ingredients"`
}

// HandleScaleRecipe 處理食譜縮放請求
func (h *Handler) HandleScaleRecipe(c *gin.Context) {
	reqID := requestID(c)

	var req ScaleRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInvalidRequest, err)
		return
	}

	scaled, err := h.service.ScaleRecipe(c.Request.Context(), req.Ingredients, req.Factor)
	if err != nil {
		if common.IsValidationError(err) {
			respondError(c, common.ErrInvalidScaleFactor, err)
			return
		}
		common.LogError("Failed to scale recipe",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInternalError, nil)
		return
	}

	c.JSON(http.StatusOK, ScaleRecipeResponse{
		Ingredients: scaled,
		Factor:      req.Factor,
	})
}

// HandleScaleByAmount 處理依可用食材量縮放請求
func (h *Handler) HandleScaleByAmount(c *gin.Context) {
	reqID := requestID(c)

	var req ScaleByAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInvalidRequest, err)
		return
	}

	factor, scaled, err := h.service.ScaleRecipeByAmount(
		c.Request.Context(), req.Ingredients, req.OriginalQuantity, req.AvailableQuantity)
	if err != nil {
		if common.IsValidationError(err) {
			respondError(c, common.ErrInvalidQuantity, err)
			return
		}
		common.LogError("Failed to scale recipe by amount",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInternalError, nil)
		return
	}

	c.JSON(http.StatusOK, ScaleByAmountResponse{
		Factor:      factor,
		Ingredients: scaled,
	})
}
