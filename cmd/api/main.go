package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"energy-marketplace/config"
	httpHandler "energy-marketplace/internal/adapter/http/handler"
	pgStorage "energy-marketplace/internal/adapter/storage/postgres"
	redisStorage "energy-marketplace/internal/adapter/storage/redis"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/internal/observability/metrics"
	"energy-marketplace/internal/service"
	"energy-marketplace/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Energy Marketplace")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	offerRepo := pgStorage.NewOfferRepo(pool)
	tradeRepo := pgStorage.NewTradeRepo(pool)
	meterRepo := pgStorage.NewMeterRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	marketCache := redisStorage.NewMarketCache(rdb)

	// Initialize business services
	pricingSvc := service.NewPricingService(cfg.Pricing, log)
	meterSvc := service.NewMeterService(meterRepo, accountRepo, log)
	accountSvc := service.NewAccountService(
		accountRepo,
		meterSvc,
		cfg.Pricing.ProviderNames,
		cfg.Market.SurplusWindowHours,
		log,
	)
	offerSvc := service.NewOfferService(offerRepo, accountRepo, log)
	settlementSvc := service.NewSettlementService(
		tradeRepo,
		offerRepo,
		accountRepo,
		transactor,
		cfg.Market.FeeRate,
		cfg.Market.RequireTxRef,
		log,
	)
	marketSvc := service.NewMarketService(
		pricingSvc,
		offerRepo,
		marketCache,
		cfg.Market.SnapshotCacheTTL,
		cfg.Pricing.VirtualPricing,
		log,
	)

	// Seed one account per configured virtual provider
	if err := accountSvc.SeedProviders(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed provider accounts")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Register Prometheus collectors
	metrics.Init()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		MeterSvc:       meterSvc,
		OfferSvc:       offerSvc,
		SettlementSvc:  settlementSvc,
		MarketSvc:      marketSvc,
		PricingSvc:     pricingSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		HouseholdLimit: cfg.Market.HouseholdLimit,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
