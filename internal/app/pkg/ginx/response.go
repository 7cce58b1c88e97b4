package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClorinHaffrin/Air-quality-prediction-final/internal/app/domains/apimodel/response"
)

// Success 成功响应（200），直接输出 data，不包裹外层结构
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Text 纯文本响应（200）
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}

// Error 错误响应，统一为 {"error": message}
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, response.ErrorResponse{Error: message})
}

// AbortWithError 输出错误并终止后续中间件
func AbortWithError(c *gin.Context, httpCode int, message string) {
	c.AbortWithStatusJSON(httpCode, response.ErrorResponse{Error: message})
}

// NotFound 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable 503 错误
func ServiceUnavailable(c *gin.Context, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, data)
}
