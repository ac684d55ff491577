package api

import (
	"context"
	"time"

	"recipe-scaler/internal/api/handlers/health"
	scalingHandler "recipe-scaler/internal/api/handlers/scaling"
	"recipe-scaler/internal/api/middleware"
	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)，純文字輸入用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheBackend cache.Cache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化縮放服務
	scalingSvc := scaling.NewService(cacheBackend)

	common.LogInfo("Scaling service initialized",
		zap.Bool("cache_enabled", cacheBackend != nil),
	)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置與緩存供 health 使用
		c.Set("config", cfg)
		c.Set("cache", cacheBackend)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			resp := common.ErrRequestTimeout.Response()
			resp.Details = timeoutDuration.String()
			c.JSON(common.ErrRequestTimeout.Status, resp)
			c.Abort()
			return
		}
	})

	// 未知路由與不支援的方法
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, common.ErrNotFound.Response())
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(common.ErrMethodNotAllowed.Status, common.ErrMethodNotAllowed.Response())
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")

	// 去重只掛在計算端點上，健康檢查不受影響
	if cfg.DedupWindow > 0 {
		api.Use(middleware.Deduplication(cfg))
	}

	{
		handler := scalingHandler.NewHandler(scalingSvc)

		// 食材文字解析
		ingredientGroup := api.Group("/ingredients")
		{
			ingredientGroup.POST("/parse", handler.HandleParseIngredients)
		}

		// 食譜縮放
		recipeGroup := api.Group("/recipe")
		{
			recipeGroup.POST("/scale", handler.HandleScaleRecipe)
			recipeGroup.POST("/scale-by-amount", handler.HandleScaleByAmount)
		}

		// 容器容量與縮放
		containerGroup := api.Group("/container")
		{
			containerGroup.POST("/volume", handler.HandleContainerVolume)
			containerGroup.POST("/scale", handler.HandleContainerScale)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_initialized", cacheBackend != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
