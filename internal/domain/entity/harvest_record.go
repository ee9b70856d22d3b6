package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HarvestRecord representa una cosecha registrada. Su contribución al almacenamiento
// es de una sola vía: se suma al crearla y no se revierte con ediciones posteriores.
type HarvestRecord struct {
	ID          string
	UserID      string
	CropID      string // opcional, referencia al catálogo de cultivos
	CropName    string
	Amount      decimal.Decimal
	Unit        string
	HarvestedAt time.Time
	Notes       string
	CreatedAt   time.Time
}
