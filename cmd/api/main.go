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

	"github.com/agrocampo/agrocampo-api/internal/application/auth"
	"github.com/agrocampo/agrocampo-api/internal/application/harvest"
	"github.com/agrocampo/agrocampo-api/internal/application/inventory"
	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/application/usecase"
	"github.com/agrocampo/agrocampo-api/internal/infrastructure/postgres"
	httpRouter "github.com/agrocampo/agrocampo-api/internal/interfaces/http"
	"github.com/agrocampo/agrocampo-api/pkg/config"
	"github.com/agrocampo/agrocampo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewStorageAccountRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	harvestRepo := postgres.NewHarvestRecordRepository(pool)
	cropRepo := postgres.NewCropRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewInventoryUseCase(txRunner, itemRepo)
	harvestUC := harvest.NewHarvestUseCase(txRunner, harvestRepo, cropRepo)
	storageUC := appstorage.NewStorageUseCase(accountRepo, txRunner)
	recalcUC := appstorage.NewRecalculateUseCase(txRunner)
	alertsUC := appstorage.NewAlertsUseCase(accountRepo, itemRepo)
	cropUC := usecase.NewCropUseCase(cropRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgroCampo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		HarvestUC:   harvestUC,
		StorageUC:   storageUC,
		RecalcUC:    recalcUC,
		AlertsUC:    alertsUC,
		CropUC:      cropUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
