package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"container-tracker/internal/core/cache"
	"container-tracker/internal/core/config"
	"container-tracker/internal/core/logger"
	"container-tracker/internal/core/server"
	containeradapter "container-tracker/internal/features/containers/adapters"
	containerhandler "container-tracker/internal/features/containers/handler"
	containerports "container-tracker/internal/features/containers/ports"
	containerservice "container-tracker/internal/features/containers/service"
	reconadapter "container-tracker/internal/features/reconciliation/adapters"
	reconhandler "container-tracker/internal/features/reconciliation/handler"
	reconservice "container-tracker/internal/features/reconciliation/service"

	"go.uber.org/zap"
)

// @title Container Tracker API
// @version 1.0
// @description Tracks import containers through planning, transit and yard, and reconciles what suppliers shipped against what was requested.
// @contact.name API Support
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
		zap.String("timezone", cfg.Location().String()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Spreadsheet adapter and health check
	sheets := containeradapter.NewSheetsAdapter(cfg.Sheets)
	checkCtx, cancel := context.WithTimeout(ctx, cfg.Sheets.Timeout())
	if err := sheets.HealthCheck(checkCtx); err != nil {
		cancel()
		l.Fatal("Spreadsheet Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Spreadsheet connection verified")

	// Optional shared snapshot cache
	var repo containerports.ContainerRepository = sheets
	if cfg.Snapshot.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Snapshot.RedisURL, "container-tracker")
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis unreachable, snapshot cache disabled", zap.Error(err))
		} else {
			repo = containeradapter.NewCachedRepository(sheets, redisCache, cfg.Snapshot.TTL())
			l.Info("Snapshot cache enabled", zap.Duration("ttl", cfg.Snapshot.TTL()))
		}
	}

	// Container Service & Handler
	containerSvc := containerservice.NewContainerService(repo, cfg.Location())
	if err := containerSvc.Refresh(ctx); err != nil {
		l.Warn("Initial snapshot load failed", zap.Error(err))
	}
	go containerSvc.Run(ctx, cfg.Snapshot.RefreshInterval())
	containerHdl := containerhandler.NewContainerHandler(containerSvc)

	// Reconciliation Service & Handler
	reconSvc := reconservice.NewReconciliationService(containerSvc, reconadapter.NewXLSXExporter(), cfg.Location())
	reconHdl := reconhandler.NewReconciliationHandler(reconSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/containers", containerHdl.ListContainers)
	srv.App.Get("/containers/next-id", containerHdl.NextID)
	srv.App.Post("/containers/refresh", containerHdl.Refresh)
	srv.App.Get("/containers/:id", containerHdl.GetContainer)
	srv.App.Post("/containers", containerHdl.CreateContainer)
	srv.App.Post("/containers/:id/shipment", containerHdl.RegisterShipment)
	srv.App.Post("/containers/:id/receipt", containerHdl.ConfirmReceipt)
	srv.App.Delete("/containers/:id", containerHdl.DeleteContainer)

	srv.App.Get("/reconciliation/suppliers", reconHdl.ListSuppliers)
	srv.App.Get("/reconciliation/export", reconHdl.ExportReport)
	srv.App.Get("/reconciliation", reconHdl.GetReport)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
