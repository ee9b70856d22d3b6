package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateHarvestRequest body para POST /api/harvests.
// CropID resuelve el nombre desde el catálogo; si viene vacío se usa CropName.
type CreateHarvestRequest struct {
	CropID      string          `json:"crop_id,omitempty"`
	CropName    string          `json:"crop_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit" validate:"omitempty,max=50"`
	HarvestedAt *time.Time      `json:"harvested_at,omitempty"`
	Notes       string          `json:"notes" validate:"omitempty,max=2000"`
}

// HarvestResponse salida de una cosecha registrada.
type HarvestResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CropID      string          `json:"crop_id,omitempty"`
	CropName    string          `json:"crop_name"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit"`
	HarvestedAt time.Time       `json:"harvested_at"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HarvestListResponse listado paginado de cosechas.
type HarvestListResponse struct {
	Items []HarvestResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
