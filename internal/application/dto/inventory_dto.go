package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory/items.
type CreateInventoryItemRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Category     string           `json:"category" validate:"required"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit" validate:"omitempty,max=50"`
	ReorderLevel *decimal.Decimal `json:"reorder_level,omitempty"`
	Notes        string           `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/items/:id.
// Campos nil se dejan sin cambio. Category es inmutable: incluirla con otro
// valor produce VALIDATION.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	ReorderLevel *decimal.Decimal `json:"reorder_level,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	ReorderLevel *decimal.Decimal `json:"reorder_level,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// InventoryListResponse listado paginado de ítems.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
