package main

import (
	"net/http"
	"strings"
	"time"

	"ordernest-be/internal/api"
	"ordernest-be/internal/auth"
	"ordernest-be/internal/config"
	"ordernest-be/internal/db"
	"ordernest-be/internal/idempotency"
	"ordernest-be/internal/inventory"
	"ordernest-be/internal/logger"
	"ordernest-be/internal/metrics"
	"ordernest-be/internal/order"
	"ordernest-be/internal/payment"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	inventoryGate := inventory.NewHTTPGateway(cfg.InventoryBaseURL)
	paymentGate := payment.NewHTTPGateway(cfg.PaymentBaseURL)
	orderStore := order.NewStore(database)

	pricingCache, err := order.NewPricingCache(cfg.PricingCacheSize)
	if err != nil {
		logger.L().Fatal("failed to build pricing cache", zap.Error(err))
	}

	var publisher order.Publisher = order.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		publisher = order.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	}

	var guard idempotency.Guard = idempotency.NopGuard{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		guard = idempotency.NewRedisGuard(rdb, 24*time.Hour)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	orderSvc := order.NewService(orderStore, inventoryGate, paymentGate, verifier, pricingCache, publisher, guard, m)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(logger.RequestIDMiddleware())
	e.Use(logger.LoggingMiddleware())
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     20,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	}))

	api.NewHandler(orderSvc).Register(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "order-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	logger.L().Info("order service listening", zap.String("port", cfg.AppPort))
	e.Logger.Fatal(e.Start(":" + cfg.AppPort))
}
