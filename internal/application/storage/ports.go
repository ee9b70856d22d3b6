package storage

import (
	"context"

	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación de inventario/cosecha
// y el delta de almacenamiento se confirmen juntos o no se confirmen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.StorageAccountRepository,
		itemRepo repository.InventoryItemRepository,
		harvestRepo repository.HarvestRecordRepository,
	) error) error
}
