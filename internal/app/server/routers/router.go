package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/ginx"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/metrics"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/handlers/health"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/handlers/prediction"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，metrics 为 nil 时不暴露 /metrics
func SetupRoutes(
	predictionHandler *prediction.PredictionHandler,
	healthHandler *health.HealthHandler,
	log logger.Logger,
	m *metrics.Metrics,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(log))
	if m != nil {
		r.Use(middlewares.Metrics(m))
	}
	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/", predictionHandler.Home)
	r.POST("/predict", predictionHandler.Predict)
	r.GET("/health", healthHandler.Get)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		ginx.NotFound(c, "not found")
	})

	return r
}

// NewHTTPHandler 在 gin 引擎外层包装 CORS
func NewHTTPHandler(engine *gin.Engine) http.Handler {
	return middlewares.CORS(engine)
}
