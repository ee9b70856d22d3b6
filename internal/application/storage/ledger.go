package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
	domstorage "github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

// LedgerUseCase aplica deltas de volumen firmados a la cuenta de almacenamiento
// en respuesta a eventos de inventario y cosecha. Cada aplicación es un
// read-modify-write atómico sobre la fila del usuario (SELECT FOR UPDATE).
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso del ledger.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// ApplyItemCreated suma el volumen de un ítem recién creado a la clase de su categoría.
func (uc *LedgerUseCase) ApplyItemCreated(ctx context.Context, userID, category string, quantity decimal.Decimal) error {
	class := domstorage.ClassifyCategory(category)
	delta := domstorage.InventoryVolume(quantity)
	return uc.applyDelta(ctx, userID, class, delta)
}

// ApplyQuantityChanged aplica el delta firmado de un cambio de cantidad
// (la categoría no cambia en un update, así que la clase es la misma).
func (uc *LedgerUseCase) ApplyQuantityChanged(ctx context.Context, userID, category string, oldQuantity, newQuantity decimal.Decimal) error {
	class := domstorage.ClassifyCategory(category)
	delta := domstorage.InventoryVolume(newQuantity).Sub(domstorage.InventoryVolume(oldQuantity))
	return uc.applyDelta(ctx, userID, class, delta)
}

// ApplyItemDeleted resta el volumen del ítem con la cantidad vigente al borrarlo.
func (uc *LedgerUseCase) ApplyItemDeleted(ctx context.Context, userID, category string, quantity decimal.Decimal) error {
	class := domstorage.ClassifyCategory(category)
	delta := domstorage.InventoryVolume(quantity).Neg()
	return uc.applyDelta(ctx, userID, class, delta)
}

// ApplyHarvestRecorded suma el volumen de una cosecha a la clase de su cultivo.
// Contribución de una sola vía: nunca se revierte por ediciones posteriores.
func (uc *LedgerUseCase) ApplyHarvestRecorded(ctx context.Context, userID, cropName string, amount decimal.Decimal) error {
	class := domstorage.ClassifyCrop(cropName)
	delta := domstorage.HarvestVolume(amount)
	return uc.applyDelta(ctx, userID, class, delta)
}

// applyDelta abre una transacción propia y aplica el delta con bloqueo de fila.
func (uc *LedgerUseCase) applyDelta(ctx context.Context, userID string, class entity.StorageClass, delta decimal.Decimal) error {
	return uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		_ repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		return ApplyDeltaInTx(accountRepo, userID, class, delta)
	})
}

// ApplyDeltaInTx aplica un delta usando el repositorio proporcionado (misma
// transacción del caller). Lo usan los casos de uso de inventario y cosecha para
// que la mutación del ítem y el delta del ledger se confirmen atómicamente.
// Postcondición: used = max(0, used + delta); un resultado negativo se recorta a
// cero y se registra como anomalía, nunca como error al caller.
func ApplyDeltaInTx(accountRepo repository.StorageAccountRepository, userID string, class entity.StorageClass, delta decimal.Decimal) error {
	account, err := accountRepo.GetForUpdate(userID)
	if err != nil {
		return err
	}
	next := account.Used(class).Add(delta)
	if next.IsNegative() {
		// Drift absorbido: el recorte indica que los deltas acumulados no cuadran
		// con el estado real. Señal para una recalculación, no un error.
		log.Warn().
			Str("user_id", userID).
			Str("class", string(class)).
			Str("delta", delta.String()).
			Str("result", next.String()).
			Msg("uso de almacenamiento negativo, recortado a cero")
		next = decimal.Zero
	}
	account.SetUsed(class, next)
	account.UpdatedAt = time.Now()
	return accountRepo.Upsert(account)
}
