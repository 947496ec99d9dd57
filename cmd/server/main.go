package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/bhawani/internal/config"
	"github.com/example/bhawani/internal/database"
	"github.com/example/bhawani/internal/handlers"
	"github.com/example/bhawani/internal/media"
	"github.com/example/bhawani/internal/routes"
	"github.com/example/bhawani/internal/views"
)

const shutdownTimeout = 10 * time.Second

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}

// newApp configures fiber with the shared error handler, views and the
// recover, request id and access log middleware.
func newApp(cfg *config.Config, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Bhawani Construction",
		ErrorHandler: handlers.ErrorHandler(logg),
		Views:        views.New(media.NewRewriter(cfg.MediaHost)),
		ProxyHeader:  fiber.HeaderXForwardedFor,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logg,
		Fields: []string{"requestId", "status", "method", "path", "latency", "ip"},
	}))
	return app
}

func main() {
	cfg := config.Load()

	logg, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.Connect(cfg, logg)
	if err != nil {
		logg.Fatal("database connection failed", zap.Error(err))
	}

	app := newApp(cfg, logg)

	routes.Register(app, db, cfg, logg)

	go func() {
		logg.Info("starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logg.Fatal("fiber.Listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logg.Error("server shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logg.Error("database close failed", zap.Error(err))
	}
	logg.Info("server stopped")
}
