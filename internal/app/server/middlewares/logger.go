package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
)

// Logger 访问日志，每个请求一行
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infof(c.Request.Context(), "%s %s status=%d latency=%s client_ip=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
