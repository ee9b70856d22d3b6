package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

// Ensure TxRunner implements appstorage.TxRunner.
var _ appstorage.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	accountRepo repository.StorageAccountRepository,
	itemRepo repository.InventoryItemRepository,
	harvestRepo repository.HarvestRecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewStorageAccountRepository(tx)
	itemRepo := NewInventoryItemRepository(tx)
	harvestRepo := NewHarvestRecordRepository(tx)

	if err := fn(accountRepo, itemRepo, harvestRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
