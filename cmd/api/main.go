package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"corpsite/internal/access"
	"corpsite/internal/config"
	"corpsite/internal/database"
	"corpsite/internal/database/migration"
	handlers "corpsite/internal/http/handler"
	"corpsite/internal/http/middleware"
	"corpsite/internal/otel"
	"corpsite/internal/repository/postgres"
	"corpsite/internal/service"
	"corpsite/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC
	ctx := context.Background()

	// Tracing first so DB and HTTP instrumentation can attach to it
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	docRepo := postgres.NewDocumentPostgres(db)
	purchaseRepo := postgres.NewPurchasePostgres(db)
	newsRepo := postgres.NewNewsPostgres(db)
	portfolioRepo := postgres.NewPortfolioPostgres(db)
	contactRepo := postgres.NewContactPostgres(db)

	// Entitlement evaluator shared by the document-facing services
	evaluator := access.NewEvaluator(purchaseRepo, cfg.Auth.LoginURL)

	svcs := handlers.Services{
		Home:      service.NewHomeService(docRepo, newsRepo, evaluator),
		Documents: service.NewDocumentService(objStore, docRepo, evaluator),
		Purchases: service.NewPurchaseService(purchaseRepo, docRepo),
		News:      service.NewNewsService(newsRepo),
		Portfolio: service.NewPortfolioService(portfolioRepo, docRepo, evaluator),
		Contacts:  service.NewContactService(contactRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Prometheus registry with process/go collectors plus request metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	// Global middleware. Auth runs before Logger so request logs carry
	// the user id.
	app.Use(middleware.RequestID())
	app.Use(middleware.Auth(cfg.Auth.JWTSecret))
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs, cfg.Auth.LoginURL)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
