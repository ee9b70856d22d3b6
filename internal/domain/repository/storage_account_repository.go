package repository

import "github.com/agrocampo/agrocampo-api/internal/domain/entity"

// StorageAccountRepository puerto de persistencia para la cuenta de almacenamiento.
// Una sola fila por usuario; si no existe se devuelve la cuenta implícita en cero
// (nunca error). GetForUpdate debe usarse dentro de una transacción para bloquear
// la fila durante el read-modify-write.
type StorageAccountRepository interface {
	Get(userID string) (*entity.StorageAccount, error)
	GetForUpdate(userID string) (*entity.StorageAccount, error)
	Upsert(account *entity.StorageAccount) error
}
