package health

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/apimodel/response"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/ginx"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	service   string
	modelPath string
	draining  *atomic.Bool
}

// NewHealthHandler 创建健康检查处理器，draining 由优雅停机流程置位
func NewHealthHandler(service, modelPath string, draining *atomic.Bool) *HealthHandler {
	if draining == nil {
		draining = atomic.NewBool(false)
	}
	return &HealthHandler{
		service:   service,
		modelPath: modelPath,
		draining:  draining,
	}
}

// Get 健康检查
// GET /health
func (h *HealthHandler) Get(c *gin.Context) {
	resp := response.HealthResponse{
		Status:  "ok",
		Service: h.service,
		Model:   h.modelPath,
	}
	if h.draining.Load() {
		resp.Status = "draining"
		ginx.ServiceUnavailable(c, resp)
		return
	}
	ginx.Success(c, resp)
}
