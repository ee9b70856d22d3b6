package harvest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
	domstorage "github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

// HarvestUseCase registra cosechas. Al crear una cosecha se suma su volumen a la
// cuenta de almacenamiento (una sola vía: no se expone edición ni borrado con
// efecto en el almacenamiento).
type HarvestUseCase struct {
	txRunner    appstorage.TxRunner
	harvestRepo repository.HarvestRecordRepository
	cropRepo    repository.CropRepository
}

// NewHarvestUseCase construye el caso de uso de cosechas.
func NewHarvestUseCase(
	txRunner appstorage.TxRunner,
	harvestRepo repository.HarvestRecordRepository,
	cropRepo repository.CropRepository,
) *HarvestUseCase {
	return &HarvestUseCase{txRunner: txRunner, harvestRepo: harvestRepo, cropRepo: cropRepo}
}

// Create registra una cosecha y aplica el incremento de volumen en la misma
// transacción. El nombre del cultivo se resuelve desde el catálogo si viene
// CropID; si no, se usa el nombre del request.
func (uc *HarvestUseCase) Create(ctx context.Context, userID string, in dto.CreateHarvestRequest) (*dto.HarvestResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	cropName := in.CropName
	if in.CropID != "" {
		crop, err := uc.cropRepo.GetByID(in.CropID)
		if err != nil {
			return nil, err
		}
		if crop == nil {
			return nil, domain.ErrNotFound
		}
		cropName = crop.Name
	}
	if cropName == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	harvestedAt := now
	if in.HarvestedAt != nil {
		harvestedAt = *in.HarvestedAt
	}
	record := &entity.HarvestRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		CropID:      in.CropID,
		CropName:    cropName,
		Amount:      in.Amount,
		Unit:        in.Unit,
		HarvestedAt: harvestedAt,
		Notes:       in.Notes,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		_ repository.InventoryItemRepository,
		harvestRepo repository.HarvestRecordRepository,
	) error {
		if err := harvestRepo.Create(record); err != nil {
			return err
		}
		class := domstorage.ClassifyCrop(record.CropName)
		delta := domstorage.HarvestVolume(record.Amount)
		return appstorage.ApplyDeltaInTx(accountRepo, userID, class, delta)
	})
	if err != nil {
		return nil, err
	}
	resp := toHarvestResponse(record)
	return &resp, nil
}

// GetByID obtiene una cosecha del usuario.
func (uc *HarvestUseCase) GetByID(ctx context.Context, userID, id string) (*dto.HarvestResponse, error) {
	record, err := uc.harvestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if record.UserID != userID {
		return nil, domain.ErrForbidden
	}
	resp := toHarvestResponse(record)
	return &resp, nil
}

// List lista las cosechas del usuario con paginación.
func (uc *HarvestUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.HarvestListResponse, error) {
	list, err := uc.harvestRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HarvestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toHarvestResponse(r))
	}
	return &dto.HarvestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toHarvestResponse(r *entity.HarvestRecord) dto.HarvestResponse {
	return dto.HarvestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		CropID:      r.CropID,
		CropName:    r.CropName,
		Amount:      r.Amount,
		Unit:        r.Unit,
		HarvestedAt: r.HarvestedAt,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}
