package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	appstorage "github.com/agrocampo/agrocampo-api/internal/application/storage"
	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
	domstorage "github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

// InventoryUseCase CRUD de insumos. Toda mutación que cambie cantidad (o borre
// el ítem) aplica su delta de volumen a la cuenta de almacenamiento en la misma
// transacción: o se confirman juntas o ninguna.
type InventoryUseCase struct {
	txRunner appstorage.TxRunner
	itemRepo repository.InventoryItemRepository
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(txRunner appstorage.TxRunner, itemRepo repository.InventoryItemRepository) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Create crea un ítem y suma su volumen a la clase de su categoría.
func (uc *InventoryUseCase) Create(ctx context.Context, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || !entity.IsValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		ReorderLevel: in.ReorderLevel,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		itemRepo repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		class := domstorage.ClassifyCategory(item.Category)
		delta := domstorage.InventoryVolume(item.Quantity)
		return appstorage.ApplyDeltaInTx(accountRepo, userID, class, delta)
	})
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un ítem del usuario.
func (uc *InventoryUseCase) GetByID(ctx context.Context, userID, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update actualiza un ítem. La categoría es inmutable (la clase de almacenamiento
// del ítem no cambia durante su vida); un cambio de cantidad aplica el delta
// firmado volume(nuevo) − volume(anterior) en la misma transacción.
func (uc *InventoryUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Quantity != nil && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var out dto.InventoryItemResponse
	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		itemRepo repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		// Bloquea la fila del ítem: el delta se calcula sobre la cantidad vigente.
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.UserID != userID {
			return domain.ErrForbidden
		}
		if in.Category != nil && *in.Category != item.Category {
			return domain.ErrInvalidInput
		}

		oldQuantity := item.Quantity
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.ReorderLevel != nil {
			item.ReorderLevel = in.ReorderLevel
		}
		if in.Notes != nil {
			item.Notes = *in.Notes
		}
		item.UpdatedAt = time.Now()

		if err := itemRepo.Update(item); err != nil {
			return err
		}
		if in.Quantity != nil && !item.Quantity.Equal(oldQuantity) {
			class := domstorage.ClassifyCategory(item.Category)
			delta := domstorage.InventoryVolume(item.Quantity).Sub(domstorage.InventoryVolume(oldQuantity))
			if err := appstorage.ApplyDeltaInTx(accountRepo, userID, class, delta); err != nil {
				return err
			}
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete borra un ítem y resta su volumen con la cantidad vigente al momento del borrado.
func (uc *InventoryUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.txRunner.Run(ctx, func(
		accountRepo repository.StorageAccountRepository,
		itemRepo repository.InventoryItemRepository,
		_ repository.HarvestRecordRepository,
	) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.UserID != userID {
			return domain.ErrForbidden
		}
		if err := itemRepo.Delete(id); err != nil {
			return err
		}
		class := domstorage.ClassifyCategory(item.Category)
		delta := domstorage.InventoryVolume(item.Quantity).Neg()
		return appstorage.ApplyDeltaInTx(accountRepo, userID, class, delta)
	})
}

// List lista los ítems del usuario con paginación.
func (uc *InventoryUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.itemRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		items = append(items, toItemResponse(item))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(i *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           i.ID,
		UserID:       i.UserID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		ReorderLevel: i.ReorderLevel,
		Notes:        i.Notes,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
