package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/edievo/edsis-api/internal/application/auth"
	"github.com/edievo/edsis-api/internal/application/usecase"
	infraexcel "github.com/edievo/edsis-api/internal/infrastructure/excel"
	infrakafka "github.com/edievo/edsis-api/internal/infrastructure/kafka"
	infrapdf "github.com/edievo/edsis-api/internal/infrastructure/pdf"
	"github.com/edievo/edsis-api/internal/infrastructure/postgres"
	"github.com/edievo/edsis-api/internal/infrastructure/redisx"
	httpRouter "github.com/edievo/edsis-api/internal/interfaces/http"
	"github.com/edievo/edsis-api/pkg/config"
	"github.com/edievo/edsis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	discountRepo := postgres.NewDiscountRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Unit lifecycle events are optional: without brokers the API runs
	// standalone and simply skips publishing.
	var events usecase.EventPublisher
	if cfg.Kafka.Enabled() {
		publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log.Zerolog())
		defer publisher.Close()
		events = publisher
	}

	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	workbook := infraexcel.NewWorkbook()

	productUC := usecase.NewProductUseCase(productRepo, unitRepo, settingsRepo, txRunner, labelGenerator)
	catalogUC := usecase.NewCatalogUseCase(productRepo, settingsRepo)
	bookingUC := usecase.NewBookingUseCase(unitRepo, productRepo, events)
	discountUC := usecase.NewDiscountUseCase(discountRepo)
	ratesUC := usecase.NewRatesUseCase(settingsRepo)
	importUC := usecase.NewImportUseCase(workbook, txRunner)
	exportUC := usecase.NewExportUseCase(productRepo, settingsRepo, workbook)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EDSIS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CatalogUC:  catalogUC,
		BookingUC:  bookingUC,
		DiscountUC: discountUC,
		RatesUC:    ratesUC,
		ImportUC:   importUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go runSweeper(sweepCtx, cfg, bookingUC, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// runSweeper periodically releases lapsed holds. A Redis lock keeps the
// sweep single-flight when several API instances run against the same
// database.
func runSweeper(ctx context.Context, cfg *config.Config, bookingUC *usecase.BookingUseCase, log *logger.Logger) {
	interval := time.Duration(cfg.Booking.SweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		log.Info().Msg("booking sweep disabled")
		return
	}

	// Lock TTL defaults to half the interval so a crashed holder cannot
	// block more than one extra run.
	lockTTL := time.Duration(cfg.Booking.SweepLockTTLSeconds) * time.Second
	if lockTTL <= 0 {
		lockTTL = interval / 2
	}

	client := redisx.New(cfg.Redis.Addr)
	defer client.Close()
	lock := redisx.NewLock(client, "edsis:booking-sweep")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		ok, err := lock.Acquire(ctx, lockTTL)
		if err != nil {
			log.Error().Err(err).Msg("sweep lock")
			continue
		}
		if !ok {
			continue
		}

		result, err := bookingUC.SweepExpired(ctx)
		switch {
		case err != nil:
			log.Error().Err(err).Msg("booking sweep")
		case result.Failed > 0:
			log.Warn().
				Int("released", result.Released).
				Int("failed", result.Failed).
				Strs("errors", result.Errors).
				Msg("booking sweep finished with failures")
		case result.Released > 0:
			log.Info().
				Int("checked", result.Checked).
				Int("released", result.Released).
				Msg("expired holds released")
		}

		if err := lock.Release(ctx); err != nil {
			log.Error().Err(err).Msg("sweep lock release")
		}
	}
}
