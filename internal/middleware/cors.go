package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS permits every origin, method and header. Credentials are allowed,
// so the request origin is echoed instead of "*".
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()

		if origin := c.GetHeader("Origin"); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
		} else {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			h.Set("Access-Control-Allow-Headers", reqHeaders)
		} else {
			h.Set("Access-Control-Allow-Headers", "*")
		}
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
		h.Set("Access-Control-Max-Age", "600")

		// Preflight ends here, before auth middleware.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
