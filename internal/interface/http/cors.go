package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const corsMaxAge = "600"

// corsMiddleware lets browser clients on the allowed origins call the chart
// API. Requests from other origins get no CORS headers, so the browser
// blocks them.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin, ok := allowedOrigin(c.GetHeader("Origin"), allowed)
		if ok {
			headers := c.Writer.Header()
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			headers.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
			headers.Set("Access-Control-Expose-Headers", requestIDHeader+", Retry-After")
			headers.Set("Access-Control-Max-Age", corsMaxAge)
			headers.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// allowedOrigin resolves the Access-Control-Allow-Origin value. An empty
// allow-list or a "*" entry opens the API to every origin.
func allowedOrigin(requestOrigin string, allowed []string) (string, bool) {
	if len(allowed) == 0 {
		return "*", true
	}
	for _, candidate := range allowed {
		switch {
		case candidate == "*":
			return "*", true
		case requestOrigin != "" && strings.EqualFold(candidate, requestOrigin):
			return requestOrigin, true
		}
	}
	return "", false
}
