package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para InventoryItem (enumeración fija).
const (
	CategoryFertilizer  = "fertilizer"
	CategorySeeds       = "seeds"
	CategoryTransplants = "transplants"
	CategoryValueAdd    = "value_add_materials"
	CategoryPesticides  = "pesticides"
	CategoryTools       = "tools"
	CategoryPackaging   = "packaging"
	CategoryIrrigation  = "irrigation_supplies"
	CategoryAmendments  = "soil_amendments"
	CategoryOther       = "other"
)

// ValidCategories lista cerrada de categorías de inventario.
var ValidCategories = []string{
	CategoryFertilizer, CategorySeeds, CategoryTransplants, CategoryValueAdd,
	CategoryPesticides, CategoryTools, CategoryPackaging, CategoryIrrigation,
	CategoryAmendments, CategoryOther,
}

// IsValidCategory indica si la categoría pertenece a la enumeración.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// InventoryItem representa un insumo de la finca. Unit es una etiqueta libre
// (lbs, kg, caja...) y no participa en el cálculo de volumen.
type InventoryItem struct {
	ID           string
	UserID       string
	Name         string
	Category     string
	Quantity     decimal.Decimal
	Unit         string
	ReorderLevel *decimal.Decimal // nil = sin umbral de reorden
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el ítem está en o por debajo de su nivel de reorden.
func (i *InventoryItem) IsLowStock() bool {
	if i.ReorderLevel == nil {
		return false
	}
	return i.Quantity.LessThanOrEqual(*i.ReorderLevel)
}
