package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

// StorageUseCase operaciones de consulta y configuración de la cuenta de
// almacenamiento: GetStorage y SetCapacity.
type StorageUseCase struct {
	accountRepo repository.StorageAccountRepository
	txRunner    TxRunner
}

// NewStorageUseCase construye el caso de uso.
func NewStorageUseCase(accountRepo repository.StorageAccountRepository, txRunner TxRunner) *StorageUseCase {
	return &StorageUseCase{accountRepo: accountRepo, txRunner: txRunner}
}

// GetStorage devuelve el estado de la cuenta. Sin fila aún → ceros, no error.
func (uc *StorageUseCase) GetStorage(ctx context.Context, userID string) (*dto.StorageResponse, error) {
	account, err := uc.accountRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	return toStorageResponse(account), nil
}

// SetCapacity sobrescribe manualmente capacidades y/o usos (setup inicial o
// corrección). Campos nil quedan sin cambio; valores negativos son inválidos.
// Crea la fila perezosamente si no existe.
func (uc *StorageUseCase) SetCapacity(ctx context.Context, userID string, in dto.SetCapacityRequest) (*dto.StorageResponse, error) {
	for _, v := range []*decimal.Decimal{in.ColdCapacity, in.ColdUsed, in.DryCapacity, in.DryUsed} {
		if v != nil && v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.StorageResponse
	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		_ repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		account, err := accountRepo.GetForUpdate(userID)
		if err != nil {
			return err
		}
		if in.ColdCapacity != nil {
			account.ColdCapacity = *in.ColdCapacity
		}
		if in.ColdUsed != nil {
			account.ColdUsed = *in.ColdUsed
		}
		if in.DryCapacity != nil {
			account.DryCapacity = *in.DryCapacity
		}
		if in.DryUsed != nil {
			account.DryUsed = *in.DryUsed
		}
		account.UpdatedAt = time.Now()
		if err := accountRepo.Upsert(account); err != nil {
			return err
		}
		out = toStorageResponse(account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toStorageResponse(a *entity.StorageAccount) *dto.StorageResponse {
	return &dto.StorageResponse{
		ColdCapacity: a.ColdCapacity,
		ColdUsed:     a.ColdUsed,
		DryCapacity:  a.DryCapacity,
		DryUsed:      a.DryUsed,
		UpdatedAt:    a.UpdatedAt,
	}
}
