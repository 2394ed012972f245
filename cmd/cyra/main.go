package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyra-app/cyra/internal/api"
	"github.com/cyra-app/cyra/internal/config"
	"github.com/cyra-app/cyra/internal/db"
	"github.com/cyra-app/cyra/internal/logger"
	"github.com/cyra-app/cyra/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warnf("invalid TZ %q, falling back to UTC", cfg.Timezone)
		location = time.UTC
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, location, log)

	app := fiber.New(fiber.Config{
		AppName:               "Cyra",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	refresher := services.NewRefreshService(handler.CycleService(), log, location, cfg.RefreshCron)
	if err := refresher.Start(); err != nil {
		log.Fatalf("refresh scheduler init failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		refresher.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("server shutdown failed: %v", err)
		}
	}()

	log.Infof("Cyra listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
