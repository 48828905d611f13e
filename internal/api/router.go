package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	apimw "github.com/routewise/toptw-hga/internal/api/middleware"
	commonmw "github.com/routewise/toptw-hga/internal/common/middleware"
	"github.com/routewise/toptw-hga/internal/common/health"
	"github.com/routewise/toptw-hga/internal/common/logging"
	"github.com/routewise/toptw-hga/internal/common/validators"
)

// RouterConfig holds everything needed to assemble the gin engine.
type RouterConfig struct {
	Logger          *logging.Logger
	Handler         *Handler
	HealthHandler   *health.Handler
	JWTSecret       string
	CORSOrigins     []string
	RateLimitRPS    float64
	RateLimitBurst  int
	SlowRequestWarn time.Duration
}

// NewRouter assembles the full middleware chain and registers every
// route: health probes are unauthenticated and unthrottled, the solve
// endpoint sits behind rate limiting, bearer auth, and request-size
// validation.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(
		logging.RecoveryLoggingMiddleware(cfg.Logger),
		logging.RequestLoggingMiddleware(cfg.Logger),
		logging.PerformanceLoggingMiddleware(cfg.Logger, cfg.SlowRequestWarn),
		logging.ErrorLoggingMiddleware(cfg.Logger),
		gzip.Gzip(gzip.DefaultCompression),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		commonmw.SecurityHeaders(),
		serviceInfoMiddleware(cfg.Handler),
		commonmw.ErrorHandler(),
	)

	health.SetupHealthRoutes(r, cfg.HealthHandler)

	v1 := r.Group("/api/v1")
	v1.Use(
		apimw.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute).Middleware(),
		apimw.AuthRequired(cfg.JWTSecret),
		validators.ValidateRequestSize(1<<20),
		validators.ValidateContentType("application/json"),
	)
	v1.POST("/itineraries", cfg.Handler.Solve)

	return r
}

// serviceInfoMiddleware attaches identifying headers to every response:
// the service name, and the POI catalog version the itinerary handler is
// currently solving against. Clients pin the catalog version to detect
// when a previously solved itinerary was computed against a dataset that
// has since changed, without parsing the response body.
func serviceInfoMiddleware(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Service-Name", "TOPTW Itinerary Solver")
		c.Header("X-Catalog-Version", h.CatalogVersion())
		c.Next()
	}
}
