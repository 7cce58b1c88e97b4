package middlewares

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS 允许任意来源跨域访问，预检请求在这一层直接应答
func CORS(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", HeaderRequestID}),
		handlers.ExposedHeaders([]string{HeaderRequestID}),
	)(next)
}
