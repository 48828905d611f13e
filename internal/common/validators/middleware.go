package validators

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/routewise/toptw-hga/internal/common/middleware"
)

// ValidateRequestSize limits request body size. The solve request body is
// small (a handful of scalars plus a five-entry interests map), so this
// mainly guards against abusive clients rather than legitimate payloads.
func ValidateRequestSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// ValidateContentType validates Content-Type header
func ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "DELETE" {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")

		for _, allowed := range allowedTypes {
			if strings.Contains(contentType, allowed) {
				c.Next()
				return
			}
		}

		middleware.AbortWithBadRequest(c, fmt.Sprintf("Invalid Content-Type: must be one of %v", allowedTypes))
	}
}
