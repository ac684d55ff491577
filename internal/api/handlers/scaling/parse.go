package scaling

import (
	"net/http"

	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseIngredientsRequest 食材文字解析請求
type ParseIngredientsRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseIngredientsResponse 食材文字解析響應
type ParseIngredientsResponse struct {
	Ingredients []common.ParsedIngredientLine `json:"ingredients"`
	Count       int                           `json:"count"`
}

// HandleParseIngredients 處理食材文字解析請求
// 解析不了的行直接略過，所以這個端點不會因輸入內容回 4xx
func (h *Handler) HandleParseIngredients(c *gin.Context) {
	reqID := requestID(c)

	var req ParseIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInvalidRequest, err)
		return
	}

	parsed := h.service.ParseIngredients(c.Request.Context(), req.Text)

	common.LogInfo("Successfully parsed ingredient text",
		zap.String("request_id", reqID),
		zap.Int("line_count", len(parsed)))

	c.JSON(http.StatusOK, ParseIngredientsResponse{
		Ingredients: parsed,
		Count:       len(parsed),
	})
}
