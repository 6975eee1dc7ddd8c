package handler

import (
	"energy-marketplace/internal/adapter/http/middleware"
	"energy-marketplace/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	MeterSvc       ports.MeterService
	OfferSvc       ports.OfferService
	SettlementSvc  ports.SettlementService
	MarketSvc      ports.MarketService
	PricingSvc     ports.PricingService
	HealthCheckers []ports.HealthChecker
	HouseholdLimit int      // max offers per market snapshot
	CORSOrigins    []string // empty = allow all (development)
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.CORS(deps.CORSOrigins))

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountHandler.Register)
		accounts.GET("", accountHandler.List)
		accounts.POST("/:id/fund", accountHandler.Fund)
		accounts.GET("/:id/status", accountHandler.Status)
	}

	meterHandler := NewMeterHandler(deps.MeterSvc)
	meter := v1.Group("/meter")
	{
		meter.POST("/samples", meterHandler.Record)
		meter.GET("/latest", meterHandler.Latest)
		meter.GET("/series", meterHandler.Series)
	}

	marketHandler := NewMarketHandler(deps.MarketSvc, deps.OfferSvc, deps.PricingSvc, deps.HouseholdLimit)
	market := v1.Group("/market")
	{
		market.GET("/offers", marketHandler.Snapshot)
		market.POST("/offers", marketHandler.CreateOffer)
		market.GET("/provider-series", marketHandler.ProviderSeries)
	}

	tradeHandler := NewTradeHandler(deps.SettlementSvc)
	trades := v1.Group("/trades")
	{
		trades.POST("/accept", tradeHandler.Accept)
		trades.GET("", tradeHandler.List)
		trades.POST("/:id/confirm", tradeHandler.Confirm)
	}

	return r
}
