// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Se usa en tests de casos de uso; respeta los mismos contratos que los
// adaptadores de PostgreSQL (cuenta implícita en cero, rollback en error).
package memory

import (
	"sort"
	"sync"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
)

// Store contenedor compartido por todos los repositorios en memoria.
type Store struct {
	// txMu serializa transacciones completas (el equivalente del bloqueo de
	// fila FOR UPDATE del adaptador de PostgreSQL); mu protege cada mapa.
	txMu     sync.Mutex
	mu       sync.RWMutex
	accounts map[string]entity.StorageAccount
	items    map[string]entity.InventoryItem
	harvests map[string]entity.HarvestRecord
	crops    map[string]entity.Crop

	// Inyección de fallos para probar rollback de transacciones.
	accountUpsertErr error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]entity.StorageAccount),
		items:    make(map[string]entity.InventoryItem),
		harvests: make(map[string]entity.HarvestRecord),
		crops:    make(map[string]entity.Crop),
	}
}

// SeedCrop inserta una entrada del catálogo de cultivos.
func (s *Store) SeedCrop(c entity.Crop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crops[c.ID] = c
}

// FailAccountUpserts hace que los Upsert de cuentas fallen con err (nil desactiva).
func (s *Store) FailAccountUpserts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountUpsertErr = err
}

// snapshot copia el estado mutable para poder restaurarlo en rollback.
func (s *Store) snapshot() (map[string]entity.StorageAccount, map[string]entity.InventoryItem, map[string]entity.HarvestRecord) {
	accounts := make(map[string]entity.StorageAccount, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	items := make(map[string]entity.InventoryItem, len(s.items))
	for k, v := range s.items {
		items[k] = v
	}
	harvests := make(map[string]entity.HarvestRecord, len(s.harvests))
	for k, v := range s.harvests {
		harvests[k] = v
	}
	return accounts, items, harvests
}

// sortItemsByCreatedAt ordena ascendente por fecha de creación (desempate por ID).
func sortItemsByCreatedAt(list []*entity.InventoryItem) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}
