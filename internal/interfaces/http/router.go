package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agrocampo-api/internal/application/auth"
	"github.com/agrocampo/agrocampo-api/internal/application/harvest"
	"github.com/agrocampo/agrocampo-api/internal/application/inventory"
	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	HarvestUC   *harvest.HarvestUseCase
	StorageUC   *appstorage.StorageUseCase
	RecalcUC    *appstorage.RecalculateUseCase
	AlertsUC    *appstorage.AlertsUseCase
	CropUC      *usecase.CropUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/items", inventoryHandler.Create)
	invGroup.Get("/items", inventoryHandler.List)
	invGroup.Get("/items/:id", inventoryHandler.GetByID)
	invGroup.Put("/items/:id", inventoryHandler.Update)
	invGroup.Delete("/items/:id", inventoryHandler.Delete)

	// Cosechas (protegido)
	harvests := protected.Group("/harvests")
	harvestHandler := NewHarvestHandler(deps.HarvestUC)
	harvests.Post("/", harvestHandler.Create)
	harvests.Get("/", harvestHandler.List)
	harvests.Get("/:id", harvestHandler.GetByID)

	// Almacenamiento (protegido)
	storageGroup := protected.Group("/storage")
	storageHandler := NewStorageHandler(deps.StorageUC, deps.RecalcUC, deps.AlertsUC)
	storageGroup.Get("/", storageHandler.GetStorage)
	storageGroup.Put("/", storageHandler.SetCapacity)
	storageGroup.Post("/recalculate", storageHandler.Recalculate)
	storageGroup.Get("/alerts", storageHandler.GetAlerts)

	// Catálogo de cultivos (protegido, solo lectura)
	crops := protected.Group("/crops")
	cropHandler := NewCropHandler(deps.CropUC)
	crops.Get("/", cropHandler.List)
	crops.Get("/:id", cropHandler.GetByID)
}
