package memory

import (
	"context"

	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

var _ appstorage.TxRunner = (*TxRunner)(nil)

// TxRunner transacción en memoria: toma un snapshot al entrar y lo restaura
// si fn devuelve error, imitando el rollback del adaptador de PostgreSQL.
// Las transacciones se ejecutan una a la vez (txMu), igual que el bloqueo de
// fila serializa los read-modify-write concurrentes sobre la misma cuenta.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios atados al store; en error restaura el estado.
func (r *TxRunner) Run(_ context.Context, fn func(
	accountRepo repository.StorageAccountRepository,
	itemRepo repository.InventoryItemRepository,
	harvestRepo repository.HarvestRecordRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	r.store.mu.Lock()
	accounts, items, harvests := r.store.snapshot()
	r.store.mu.Unlock()

	err := fn(
		NewStorageAccountRepository(r.store),
		NewInventoryItemRepository(r.store),
		NewHarvestRecordRepository(r.store),
	)
	if err != nil {
		r.store.mu.Lock()
		r.store.accounts = accounts
		r.store.items = items
		r.store.harvests = harvests
		r.store.mu.Unlock()
		return err
	}
	return nil
}
