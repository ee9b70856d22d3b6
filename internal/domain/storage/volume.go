package storage

import "github.com/shopspring/decimal"

// Factores de conversión a unidades de volumen abstractas. Son aproximaciones
// deliberadas: la unidad declarada del ítem (lbs, kg, caja...) se ignora, así que
// el resultado no es físicamente exacto y los callers no deben asumir que lo es.
var (
	inventoryVolumeFactor = decimal.NewFromFloat(0.1)
	harvestVolumeFactor   = decimal.NewFromFloat(0.05)
)

// InventoryVolume convierte una cantidad de inventario a volumen (cantidad × 0.1).
func InventoryVolume(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(inventoryVolumeFactor)
}

// HarvestVolume convierte una cantidad cosechada a volumen (cantidad × 0.05).
func HarvestVolume(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(harvestVolumeFactor)
}
