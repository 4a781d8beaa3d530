package api

import (
	"fmt"
	"time"

	"dessert-catalog/internal/api/handlers/dessert"
	"dessert-catalog/internal/api/handlers/health"
	"dessert-catalog/internal/api/middleware"
	"dessert-catalog/internal/infrastructure/config"
	"dessert-catalog/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, catalog dessert.Catalog) (*gin.Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog service is required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 每個 router 使用獨立的 registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(middleware.Logger())
	router.Use(metrics.Handler())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// 注入設定供 health handler 使用
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	// 健康檢查與指標
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	dessertHandler := dessert.NewHandler(catalog, cfg.App.Debug)

	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	api.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	{
		desserts := api.Group("/desserts")
		desserts.GET("", dessertHandler.HandleList)
		desserts.GET("/:id", dessertHandler.HandleDetail)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, common.ErrNotFound.Response(false))
	})

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
	)

	return router, nil
}
