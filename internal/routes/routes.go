package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/bhawani/internal/config"
	"github.com/example/bhawani/internal/content"
	"github.com/example/bhawani/internal/database"
	"github.com/example/bhawani/internal/handlers"
	"github.com/example/bhawani/internal/media"
	"github.com/example/bhawani/internal/middleware"
	"github.com/example/bhawani/internal/page"
	"github.com/example/bhawani/internal/services"
	"github.com/example/bhawani/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	st := store.New(db)
	rw := media.NewRewriter(cfg.MediaHost)

	notifier := services.NewNotifications(log)
	if cfg.EmailEnabled() {
		notifier.Add("email", services.NewMailjetService(services.MailjetConfig{
			APIKey:    cfg.MailjetAPIKey,
			SecretKey: cfg.MailjetSecretKey,
			FromEmail: cfg.MailjetFromEmail,
			FromName:  cfg.MailjetFromName,
			ToEmail:   cfg.ContactNotifyEmail,
			ToName:    cfg.ContactNotifyName,
		}))
	}
	if telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, log); telegram.Enabled() {
		notifier.Add("telegram", telegram)
	}
	if notifier.Len() == 0 {
		log.Warn("no contact notification channel configured; messages are only stored")
	}

	pageHandler := handlers.NewPageHandler(page.NewAssembler(st, log))
	adminHandler := handlers.NewAdminHandler(st, rw.Host, log)
	authHandler := handlers.NewAuthHandler(cfg)
	contentHandler := handlers.NewContentHandler(st, rw, log)
	contactHandler := handlers.NewContactHandler(st, notifier, log)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, log)

	app.Use(middleware.AdminGate(cfg.AdminSecret))

	app.Get("/", pageHandler.Home)
	app.Get("/admin/login", adminHandler.LoginPage)
	app.Get("/admin", adminHandler.Panel)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", healthHandler.Check)

	api := app.Group("/api")
	api.Post("/contact", contactHandler.Submit)

	admin := api.Group("/admin")
	admin.Post("/auth", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)

	protected := admin.Group("", middleware.AdminAPIGuard(cfg.AdminSecret))
	protected.Get("/media", adminHandler.ListMedia)
	for _, fam := range content.Families() {
		protected.Patch(fam.Route(), contentHandler.Update(fam.Key))
	}
}
