package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/application/usecase"
)

// CropHandler maneja las peticiones HTTP del catálogo de cultivos (protegido, solo lectura).
type CropHandler struct {
	uc *usecase.CropUseCase
}

// NewCropHandler construye el handler.
func NewCropHandler(uc *usecase.CropUseCase) *CropHandler {
	return &CropHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo de cultivos
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de ítems (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.CropListResponse
// @Router       /api/crops [get]
func (h *CropHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener cultivo del catálogo
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cultivo"
// @Success      200  {object}  dto.CropResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [get]
func (h *CropHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cultivo no encontrado"})
	}
	return c.JSON(resp)
}
