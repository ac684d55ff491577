package scaling

import (
	"net/http"

	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContainerVolumeRequest 容器容量請求
type ContainerVolumeRequest struct {
	Container common.ContainerSpec `json:"container" binding:"required"`
}

// ContainerVolumeResponse 容器容量響應
type ContainerVolumeResponse struct {
	VolumeCups float64 `json:"volume_cups"`
}

// ContainerScaleRequest 容器縮放請求
type ContainerScaleRequest struct {
	Source common.ContainerSpec `json:"source" binding:"required"`
	Target common.ContainerSpec `json:"target" binding:"required"`
}

// HandleContainerVolume 處理容器容量請求
func (h *Handler) HandleContainerVolume(c *gin.Context) {
	reqID := requestID(c)

	var req ContainerVolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInvalidRequest, err)
		return
	}

	container, err := req.Container.ToContainer()
	if err != nil {
		common.LogWarn("Unknown container type",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrUnknownContainerType, err)
		return
	}

	volume := h.service.ContainerVolume(c.Request.Context(), container)

	c.JSON(http.StatusOK, ContainerVolumeResponse{
		VolumeCups: volume,
	})
}

// HandleContainerScale 處理容器縮放請求
func (h *Handler) HandleContainerScale(c *gin.Context) {
	reqID := requestID(c)

	var req ContainerScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID))
		respondError(c, common.ErrInvalidRequest, err)
		return
	}

	source, err := req.Source.ToContainer()
	if err != nil {
		respondError(c, common.ErrUnknownContainerType, err)
		return
	}
	target, err := req.Target.ToContainer()
	if err != nil {
		respondError(c, common.ErrUnknownContainerType, err)
		return
	}

	result := h.service.ContainerScale(c.Request.Context(), source, target)

	common.LogInfo("Successfully computed container scale",
		zap.String("request_id", reqID),
		zap.Float64("factor", result.Factor),
		zap.String("display", result.Display))

	c.JSON(http.StatusOK, result)
}
