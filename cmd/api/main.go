package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"codex-service/internal/core/cache"
	"codex-service/internal/core/config"
	"codex-service/internal/core/logger"
	"codex-service/internal/core/proxy"
	"codex-service/internal/core/server"
	orderadapter "codex-service/internal/features/orders/adapters"
	orderhandler "codex-service/internal/features/orders/handler"
	orderservice "codex-service/internal/features/orders/service"
	versionadapter "codex-service/internal/features/version/adapters"
	versionhandler "codex-service/internal/features/version/handler"
	"codex-service/internal/features/version/ports"
	versionservice "codex-service/internal/features/version/service"

	"go.uber.org/zap"
)

// @title Codex API
// @version 1.0
// @description Lists open Shopify orders that Codex drivers can deliver in Riyadh, plus the driver app version check.
// @contact.name API Support
// @contact.email support@codex.sa
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("shop", cfg.Shopify.ShopDomain),
		zap.String("api_version", cfg.Shopify.APIVersion),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Shopify Adapter and optionally verify credentials
	proxySettings := proxy.FromConfig(cfg.Proxy)
	if proxySettings.HasProxy() {
		l.Info("Routing Shopify calls through proxy", zap.String("proxy", proxySettings.HostPort()))
	}

	shopifyAdapter := orderadapter.NewShopifyAdapter(cfg.Shopify, proxySettings)
	if cfg.Shopify.VerifyOnStart {
		checkCtx, cancel := context.WithTimeout(ctx, cfg.Shopify.Timeout())
		err := shopifyAdapter.HealthCheck(checkCtx)
		cancel()
		if err != nil {
			l.Fatal("Shopify Health Check Failed", zap.Error(err))
		}
		l.Info("Shopify connection verified")
	}

	// Initialize Order Service & Handler
	orderService := orderservice.NewOrderService(shopifyAdapter)
	orderHandler := orderhandler.NewOrderHandler(orderService)

	// Version overrides are only available with Redis
	var versionRepo ports.VersionRepository
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis unreachable", zap.Error(err))
		}
		l.Info("Redis connection verified")
		versionRepo = versionadapter.NewRedisVersionRepository(redisCache)
	}

	versionSvc := versionservice.NewVersionService(cfg.Version, versionRepo)
	versionHdl := versionhandler.NewVersionHandler(versionSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/", versionHdl.Root)
	srv.App.Get("/version", versionHdl.GetVersion)
	if versionRepo != nil {
		srv.App.Put("/version", versionHdl.SetVersion)
		srv.App.Delete("/version", versionHdl.ResetVersion)
	}
	srv.App.Get("/codex/eligible", orderHandler.ListEligible)

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
