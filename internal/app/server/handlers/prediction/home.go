package prediction

import (
	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/ginx"
)

// Home 欢迎页
// GET /
func (h *PredictionHandler) Home(c *gin.Context) {
	ginx.Text(c, WelcomeMessage)
}
