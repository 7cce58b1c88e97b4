package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/pkg/logger"
)

// HeaderRequestID 请求 ID 头
const HeaderRequestID = "X-Request-ID"

// RequestID 复用客户端传入的 X-Request-ID，否则生成 UUID
// 写入响应头，并作为 trace_id 放入请求 Context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Set("trace_id", id)
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), id))

		c.Next()
	}
}
