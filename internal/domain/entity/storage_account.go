package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageClass clase de almacenamiento físico. Solo existen dos y no transicionan.
type StorageClass string

const (
	StorageCold StorageClass = "cold"
	StorageDry  StorageClass = "dry"
)

// StorageAccount agregado derivado de capacidad física por usuario (1:1).
// Used nunca es negativo; Capacity en 0 significa "sin seguimiento", no "lleno".
// Se crea perezosamente con la primera mutación de inventario (o vía SetCapacity).
type StorageAccount struct {
	UserID       string
	ColdCapacity decimal.Decimal
	ColdUsed     decimal.Decimal
	DryCapacity  decimal.Decimal
	DryUsed      decimal.Decimal
	UpdatedAt    time.Time
}

// NewZeroAccount devuelve la cuenta implícita en cero para un usuario sin fila aún.
func NewZeroAccount(userID string) *StorageAccount {
	return &StorageAccount{
		UserID:       userID,
		ColdCapacity: decimal.Zero,
		ColdUsed:     decimal.Zero,
		DryCapacity:  decimal.Zero,
		DryUsed:      decimal.Zero,
	}
}

// Used devuelve el uso actual de la clase indicada.
func (a *StorageAccount) Used(class StorageClass) decimal.Decimal {
	if class == StorageCold {
		return a.ColdUsed
	}
	return a.DryUsed
}

// Capacity devuelve la capacidad configurada de la clase indicada.
func (a *StorageAccount) Capacity(class StorageClass) decimal.Decimal {
	if class == StorageCold {
		return a.ColdCapacity
	}
	return a.DryCapacity
}

// SetUsed fija el uso de la clase indicada.
func (a *StorageAccount) SetUsed(class StorageClass, used decimal.Decimal) {
	if class == StorageCold {
		a.ColdUsed = used
		return
	}
	a.DryUsed = used
}
