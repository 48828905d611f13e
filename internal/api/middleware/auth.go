package middleware

import (
	"github.com/gin-gonic/gin"

	commonmw "github.com/routewise/toptw-hga/internal/common/middleware"
)

// AuthRequired gates the solve endpoint behind a bearer JWT. The itinerary
// service has no user store, so this wraps the shared JWT validator
// rather than duplicating it.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return commonmw.AuthRequired(jwtSecret)
}
