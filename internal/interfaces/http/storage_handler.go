package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/domain"
)

// StorageHandler maneja las peticiones HTTP de la cuenta de almacenamiento (protegido).
type StorageHandler struct {
	storageUC *appstorage.StorageUseCase
	recalcUC  *appstorage.RecalculateUseCase
	alertsUC  *appstorage.AlertsUseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(
	storageUC *appstorage.StorageUseCase,
	recalcUC *appstorage.RecalculateUseCase,
	alertsUC *appstorage.AlertsUseCase,
) *StorageHandler {
	return &StorageHandler{storageUC: storageUC, recalcUC: recalcUC, alertsUC: alertsUC}
}

// GetStorage godoc
// @Summary      Estado de la cuenta de almacenamiento
// @Description  Capacidad y uso actual por clase (frío/seco). Sin cuenta aún → ceros.
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StorageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/storage [get]
func (h *StorageHandler) GetStorage(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.storageUC.GetStorage(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// SetCapacity godoc
// @Summary      Configurar capacidades de almacenamiento
// @Description  Override manual de capacidades y/o usos; campos omitidos quedan sin cambio.
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCapacityRequest  true  "cold_capacity, cold_used, dry_capacity, dry_used (todos opcionales)"
// @Success      200   {object}  dto.StorageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/storage [put]
func (h *StorageHandler) SetCapacity(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SetCapacityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.storageUC.SetCapacity(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los valores no pueden ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Recalculate godoc
// @Summary      Recalcular uso de almacenamiento
// @Description  Reemplaza cold_used/dry_used con la suma del inventario actual (repara drift).
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RecalculateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/storage/recalculate [post]
func (h *StorageHandler) Recalculate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.recalcUC.Recalculate(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetAlerts godoc
// @Summary      Alertas de stock y capacidad
// @Description  Bajo stock (quantity <= reorder_level) y umbrales de capacidad (≥75%% medium, ≥90%% high). Calculado al momento, nada se persiste.
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/storage/alerts [get]
func (h *StorageHandler) GetAlerts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.alertsUC.Evaluate(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
