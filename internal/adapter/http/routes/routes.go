package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "pix_checkout/docs"
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/normalizer"
	"pix_checkout/internal/infrastructure/cache"
	"pix_checkout/internal/infrastructure/observability"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Run will start the server
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdownTelemetry, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		log.Printf("[observability] setup failed, continuing without telemetry err=%v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}

	gateway := buildGateway(cfg.Gateway)
	dialect := resolveDialect(cfg.Gateway.Dialect)

	var limiter middleware.Counter
	if cfg.RateLimit.RedisURL != "" {
		client, err := cache.ConnectRedis(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			log.Printf("[ratelimit] disabled err=%v", err)
		} else {
			counter := cache.NewWindowCounter(client)
			defer counter.Close()
			limiter = counter
		}
	}

	router := newRouter(cfg, gateway, dialect, limiter)

	var handler http.Handler = router
	if cfg.Observability.Enabled {
		handler = otelhttp.NewHandler(router, cfg.Observability.ServiceName)
	}
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] shutdown failed err=%v", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Printf("[observability] shutdown failed err=%v", err)
	}
}

// newRouter wires the handlers. A nil gateway keeps the routes up and makes
// them answer with the configuration error; a nil limiter disables rate
// limiting.
func newRouter(cfg config.Config, gateway interfaces.IPaymentGateway, dialect normalizer.Dialect, limiter middleware.Counter) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	setMiddlewares(router, cfg.RateLimit, limiter)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	settings := usecase.ChargeSettings{
		FixedAmount:  cfg.Charge.FixedAmount,
		FixedTitle:   cfg.Charge.FixedTitle,
		DefaultEmail: cfg.Charge.Email,
		DefaultPhone: cfg.Charge.Phone,
		Expiry:       payments.ExpiryFor(cfg.Gateway),
	}
	chargeUseCase := usecase.NewChargeUseCase(gateway, dialect, settings)
	statusUseCase := usecase.NewStatusUseCase(gateway, dialect)

	chargeHandler := handlers.NewChargeHandler(chargeUseCase)
	statusHandler := handlers.NewStatusHandler(statusUseCase)

	addPaymentRoutes(router, chargeHandler, statusHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentV1Routes(v1, chargeHandler, statusHandler)

	return router
}

func buildGateway(cfg config.GatewayConfig) interfaces.IPaymentGateway {
	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		log.Printf("[payment][routes] payment gateway not configured: %v", err)
		return nil
	}
	log.Printf("[payment][routes] payment gateway ready gateway=%s dialect=%s", gateway.Name(), gateway.Dialect().Name)
	return gateway
}

// resolveDialect returns the zero Dialect (gateway default) when the name is
// empty or unknown.
func resolveDialect(name string) normalizer.Dialect {
	if name == "" {
		return normalizer.Dialect{}
	}
	d, err := normalizer.ByName(name)
	if err != nil {
		log.Printf("[payment][routes] ignoring PIX_RESPONSE_DIALECT err=%v", err)
		return normalizer.Dialect{}
	}
	return d
}

func setMiddlewares(router *gin.Engine, cfg config.RateLimitConfig, limiter middleware.Counter) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	if limiter != nil {
		log.Printf("[ratelimit] enabled requests=%d window=%s", cfg.Requests, cfg.Window)
		router.Use(middleware.RateLimit(limiter, cfg.Requests, cfg.Window))
	}
}
