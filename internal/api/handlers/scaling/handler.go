package scaling

import (
	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 縮放相關端點的處理器
type Handler struct {
	service *scaling.Service
}

// NewHandler 創建新的處理器
func NewHandler(service *scaling.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// requestID 取出請求 ID，沒有就補一個
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = common.GenerateUUID()
		c.Header("X-Request-ID", id)
	}
	return id
}

// respondError 以預定義錯誤渲染錯誤響應，原始錯誤放進 details
func respondError(c *gin.Context, predefined *common.CustomError, err error) {
	resp := predefined.Response()
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(predefined.Status, resp)
}
