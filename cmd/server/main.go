package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/routewise/toptw-hga/internal/api"
	cachepkg "github.com/routewise/toptw-hga/internal/cache"
	commoncache "github.com/routewise/toptw-hga/internal/common/cache"
	"github.com/routewise/toptw-hga/internal/common/health"
	"github.com/routewise/toptw-hga/internal/common/logging"
	"github.com/routewise/toptw-hga/internal/config"
	"github.com/routewise/toptw-hga/internal/poi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	loggerConfig := &logging.LoggerConfig{
		Level:      logging.LogLevel(cfg.LogLevel),
		Format:     "json",
		Output:     os.Stdout,
		AddSource:  true,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	logger := logging.NewLogger(loggerConfig)
	logging.InitDefaultLogger(loggerConfig)

	logger.Info("starting TOPTW itinerary solver",
		"version", "1.0.0",
		"environment", cfg.Environment,
	)

	logger.Info("loading POI catalog", "path", cfg.CatalogPath)
	catalog, err := poi.LoadCached(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load POI catalog", "error", err)
		log.Fatal("failed to load POI catalog:", err)
	}
	matrix := poi.BuildMatrix(catalog.All())
	logger.Info("catalog loaded", "poi_count", catalog.Len())

	logger.Info("connecting to Redis...")
	redisClient, err := config.NewRedisClient(cfg.RedisURL)
	var solveCache *cachepkg.SolveCache
	if err != nil {
		logger.Warn("redis unavailable, solving without result caching", "error", err)
	} else {
		defer redisClient.Close()
		redisCache := commoncache.NewRedisCache(redisClient, "toptw")
		solveCache = cachepkg.NewSolveCache(redisCache)
		logger.Info("redis connected, solve-result caching enabled")
	}

	healthChecker := health.NewHealthChecker(redisClient, "TOPTW Itinerary Solver", "1.0.0")
	healthHandler := health.NewHandler(healthChecker)

	itineraryHandler := api.NewHandler(catalog, matrix, solveCache)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		Handler:         itineraryHandler,
		HealthHandler:   healthHandler,
		JWTSecret:       cfg.JWTSecret,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
		SlowRequestWarn: 2 * time.Second,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("itinerary solver listening",
			"port", cfg.Port,
			"health_check", "http://localhost:"+cfg.Port+"/health",
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Warn("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Info("server exited gracefully")
}
