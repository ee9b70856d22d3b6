package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageResponse estado actual de la cuenta de almacenamiento del usuario.
// Si el usuario aún no tiene fila, se devuelven ceros (no es error).
type StorageResponse struct {
	ColdCapacity decimal.Decimal `json:"cold_capacity"`
	ColdUsed     decimal.Decimal `json:"cold_used"`
	DryCapacity  decimal.Decimal `json:"dry_capacity"`
	DryUsed      decimal.Decimal `json:"dry_used"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SetCapacityRequest body para PUT /api/storage. Todo campo nil queda sin cambio.
// Permite también sobrescribir used manualmente (setup inicial o corrección).
type SetCapacityRequest struct {
	ColdCapacity *decimal.Decimal `json:"cold_capacity,omitempty"`
	ColdUsed     *decimal.Decimal `json:"cold_used,omitempty"`
	DryCapacity  *decimal.Decimal `json:"dry_capacity,omitempty"`
	DryUsed      *decimal.Decimal `json:"dry_used,omitempty"`
}

// RecalculateResponse resultado de la recalculación, con los valores previos
// para diagnóstico de drift.
type RecalculateResponse struct {
	ColdUsed         decimal.Decimal `json:"cold_used"`
	DryUsed          decimal.Decimal `json:"dry_used"`
	PreviousColdUsed decimal.Decimal `json:"previous_cold_used"`
	PreviousDryUsed  decimal.Decimal `json:"previous_dry_used"`
}

// StorageAlertDTO alerta de umbral de capacidad para una clase de almacenamiento.
type StorageAlertDTO struct {
	Class      string          `json:"class"`      // cold | dry
	Percentage decimal.Decimal `json:"percentage"` // used/capacity × 100
	Severity   string          `json:"severity"`   // medium (≥75) | high (≥90)
	Message    string          `json:"message"`
}

// AlertsResponse alertas transitorias calculadas al momento de la consulta.
// Nada de esto se persiste.
type AlertsResponse struct {
	LowStockItems []InventoryItemResponse `json:"low_stock_items"`
	StorageAlerts []StorageAlertDTO       `json:"storage_alerts"`
}
