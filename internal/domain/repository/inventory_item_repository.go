package repository

import "github.com/agrocampo/agrocampo-api/internal/domain/entity"

// InventoryItemRepository puerto de persistencia para insumos de inventario.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE); usar dentro de
	// una transacción antes de mutar cantidad, para que el delta del ledger se
	// calcule sobre la cantidad vigente.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	ListByUser(userID string, limit, offset int) ([]*entity.InventoryItem, error)
	// ListAllByUser devuelve el snapshot completo del inventario del usuario,
	// sin paginar. Lo usan la recalculación y el evaluador de alertas.
	ListAllByUser(userID string) ([]*entity.InventoryItem, error)
}
