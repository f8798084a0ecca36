package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware computes cross-origin access headers for every response.
//
// An origin is permitted when the request declared none (non-browser
// caller), when the configured list contains "*", or when the list
// literally contains the declared origin. The allow-origin header always
// echoes the exact origin, never the wildcard, so credentialed requests
// keep working. Requests from disallowed origins are still processed;
// the missing header makes the browser block the response.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
			continue
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		permitted := origin == "" || wildcard || allowed[origin]

		// Always advertise what the lead endpoint accepts
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if permitted && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		// Caches must differentiate by Origin
		c.Header("Vary", "Origin")

		// Preflight: headers only, no body, regardless of payload
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
