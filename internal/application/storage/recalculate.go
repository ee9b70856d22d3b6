package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
	domstorage "github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

// RecalculateUseCase recalcula el uso desde el snapshot actual de inventario y
// sobrescribe la cuenta, corrigiendo drift acumulado por deltas perdidos.
//
// El volumen de cosechas queda deliberadamente fuera del recálculo: el ledger
// incremental sí lo suma, pero el snapshot durable refleja solo el inventario
// presente. La asimetría viene del comportamiento observado del sistema original
// y se conserva como comportamiento documentado (ver DESIGN.md).
type RecalculateUseCase struct {
	txRunner TxRunner
}

// NewRecalculateUseCase construye el caso de uso de recalculación.
func NewRecalculateUseCase(txRunner TxRunner) *RecalculateUseCase {
	return &RecalculateUseCase{txRunner: txRunner}
}

// Recalculate suma el volumen por clase de todos los ítems actuales del usuario
// y reemplaza ColdUsed/DryUsed en una sola escritura atómica; las capacidades no
// se tocan. Idempotente: el mismo inventario produce el mismo resultado. Si la
// transacción falla, la cuenta queda en su valor previo (rollback).
func (uc *RecalculateUseCase) Recalculate(ctx context.Context, userID string) (*dto.RecalculateResponse, error) {
	var out dto.RecalculateResponse
	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		itemRepo repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		// Bloquea la fila de la cuenta primero para no intercalarse con un
		// delta en vuelo del ledger.
		account, err := accountRepo.GetForUpdate(userID)
		if err != nil {
			return err
		}
		items, err := itemRepo.ListAllByUser(userID)
		if err != nil {
			return err
		}

		coldSum, drySum := decimal.Zero, decimal.Zero
		for _, item := range items {
			vol := domstorage.InventoryVolume(item.Quantity)
			if domstorage.ClassifyCategory(item.Category) == entity.StorageCold {
				coldSum = coldSum.Add(vol)
			} else {
				drySum = drySum.Add(vol)
			}
		}

		out.PreviousColdUsed = account.ColdUsed
		out.PreviousDryUsed = account.DryUsed
		out.ColdUsed = coldSum
		out.DryUsed = drySum

		account.ColdUsed = coldSum
		account.DryUsed = drySum
		account.UpdatedAt = time.Now()
		return accountRepo.Upsert(account)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
