package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/ginx"
	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 处理器通过 c.Error 上报、但尚未写响应的错误，统一输出 {"error": ...}
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last()
		log.Errorf(c.Request.Context(), "request failed: %v", err.Err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// Recovery 捕获 panic，记录堆栈后返回 500，进程继续运行
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v\n%s", r, debug.Stack())
				ginx.AbortWithError(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
