package memory

import (
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

var (
	_ repository.StorageAccountRepository = (*StorageAccountRepo)(nil)
	_ repository.InventoryItemRepository  = (*InventoryItemRepo)(nil)
	_ repository.HarvestRecordRepository  = (*HarvestRecordRepo)(nil)
	_ repository.CropRepository           = (*CropRepo)(nil)
)

// StorageAccountRepo repositorio de cuentas de almacenamiento en memoria.
type StorageAccountRepo struct{ store *Store }

// NewStorageAccountRepository construye el repositorio sobre el store.
func NewStorageAccountRepository(store *Store) *StorageAccountRepo {
	return &StorageAccountRepo{store: store}
}

// Get devuelve la cuenta o la cuenta implícita en cero si no existe.
func (r *StorageAccountRepo) Get(userID string) (*entity.StorageAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if a, ok := r.store.accounts[userID]; ok {
		out := a
		return &out, nil
	}
	return entity.NewZeroAccount(userID), nil
}

// GetForUpdate igual que Get; la exclusión la da la transacción en memoria.
func (r *StorageAccountRepo) GetForUpdate(userID string) (*entity.StorageAccount, error) {
	return r.Get(userID)
}

// Upsert inserta o reemplaza la cuenta del usuario.
func (r *StorageAccountRepo) Upsert(account *entity.StorageAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.accountUpsertErr != nil {
		return r.store.accountUpsertErr
	}
	r.store.accounts[account.UserID] = *account
	return nil
}

// InventoryItemRepo repositorio de inventario en memoria.
type InventoryItemRepo struct{ store *Store }

// NewInventoryItemRepository construye el repositorio sobre el store.
func NewInventoryItemRepository(store *Store) *InventoryItemRepo {
	return &InventoryItemRepo{store: store}
}

// Create inserta un ítem.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items[item.ID] = *item
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if i, ok := r.store.items[id]; ok {
		out := i
		return &out, nil
	}
	return nil, nil
}

// GetForUpdate igual que GetByID; la exclusión la da la transacción en memoria.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

// Update reemplaza el ítem.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items[item.ID] = *item
	return nil
}

// Delete elimina el ítem.
func (r *InventoryItemRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.items, id)
	return nil
}

// ListByUser lista con paginación, más antiguos primero.
func (r *InventoryItemRepo) ListByUser(userID string, limit, offset int) ([]*entity.InventoryItem, error) {
	all, err := r.ListAllByUser(userID)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// ListAllByUser devuelve el snapshot completo del usuario.
func (r *InventoryItemRepo) ListAllByUser(userID string) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.InventoryItem
	for _, i := range r.store.items {
		if i.UserID == userID {
			out := i
			list = append(list, &out)
		}
	}
	sortItemsByCreatedAt(list)
	return list, nil
}

// HarvestRecordRepo repositorio de cosechas en memoria.
type HarvestRecordRepo struct{ store *Store }

// NewHarvestRecordRepository construye el repositorio sobre el store.
func NewHarvestRecordRepository(store *Store) *HarvestRecordRepo {
	return &HarvestRecordRepo{store: store}
}

// Create inserta una cosecha.
func (r *HarvestRecordRepo) Create(record *entity.HarvestRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.harvests[record.ID] = *record
	return nil
}

// GetByID devuelve la cosecha o nil si no existe.
func (r *HarvestRecordRepo) GetByID(id string) (*entity.HarvestRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if h, ok := r.store.harvests[id]; ok {
		out := h
		return &out, nil
	}
	return nil, nil
}

// ListByUser lista cosechas del usuario (orden no garantizado, suficiente para tests).
func (r *HarvestRecordRepo) ListByUser(userID string, limit, offset int) ([]*entity.HarvestRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.HarvestRecord
	for _, h := range r.store.harvests {
		if h.UserID == userID {
			out := h
			list = append(list, &out)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

// CropRepo repositorio del catálogo de cultivos en memoria.
type CropRepo struct{ store *Store }

// NewCropRepository construye el repositorio sobre el store.
func NewCropRepository(store *Store) *CropRepo {
	return &CropRepo{store: store}
}

// GetByID devuelve el cultivo o nil si no existe.
func (r *CropRepo) GetByID(id string) (*entity.Crop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if c, ok := r.store.crops[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

// List lista el catálogo (orden no garantizado, suficiente para tests).
func (r *CropRepo) List(limit, offset int) ([]*entity.Crop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.Crop
	for _, c := range r.store.crops {
		out := c
		list = append(list, &out)
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}
