package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

var _ repository.StorageAccountRepository = (*StorageAccountRepo)(nil)

// StorageAccountRepo implementación de StorageAccountRepository sobre PostgreSQL
// (usable con pool o tx). Una fila por usuario en storage_accounts.
type StorageAccountRepo struct {
	q Querier
}

// NewStorageAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageAccountRepository(q Querier) *StorageAccountRepo {
	return &StorageAccountRepo{q: q}
}

// Get obtiene la cuenta del usuario. Sin fila → cuenta implícita en cero, no error.
func (r *StorageAccountRepo) Get(userID string) (*entity.StorageAccount, error) {
	query := `
		SELECT user_id, cold_capacity, cold_used, dry_capacity, dry_used, updated_at
		FROM storage_accounts WHERE user_id = $1`
	var a entity.StorageAccount
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&a.UserID, &a.ColdCapacity, &a.ColdUsed, &a.DryCapacity, &a.DryUsed, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewZeroAccount(userID), nil
		}
		return nil, fmt.Errorf("get storage account: %w", err)
	}
	return &a, nil
}

// GetForUpdate obtiene la cuenta y bloquea la fila (SELECT FOR UPDATE).
// Si el usuario aún no tiene fila, se materializa primero en cero: un SELECT FOR
// UPDATE sobre cero filas no bloquea nada, y dos primeras mutaciones concurrentes
// leerían ambas la cuenta en cero y la segunda pisaría el delta de la primera.
// Con la fila garantizada, el FOR UPDATE serializa los read-modify-write.
func (r *StorageAccountRepo) GetForUpdate(userID string) (*entity.StorageAccount, error) {
	insert := `
		INSERT INTO storage_accounts (user_id, cold_capacity, cold_used, dry_capacity, dry_used, updated_at)
		VALUES ($1, 0, 0, 0, 0, now())
		ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, userID); err != nil {
		return nil, fmt.Errorf("ensure storage account row: %w", err)
	}

	query := `
		SELECT user_id, cold_capacity, cold_used, dry_capacity, dry_used, updated_at
		FROM storage_accounts WHERE user_id = $1
		FOR UPDATE`
	var a entity.StorageAccount
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&a.UserID, &a.ColdCapacity, &a.ColdUsed, &a.DryCapacity, &a.DryUsed, &a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get storage account for update: %w", err)
	}
	return &a, nil
}

// Upsert inserta o actualiza la cuenta completa del usuario.
func (r *StorageAccountRepo) Upsert(account *entity.StorageAccount) error {
	query := `
		INSERT INTO storage_accounts (user_id, cold_capacity, cold_used, dry_capacity, dry_used, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id)
		DO UPDATE SET cold_capacity = EXCLUDED.cold_capacity, cold_used = EXCLUDED.cold_used,
			dry_capacity = EXCLUDED.dry_capacity, dry_used = EXCLUDED.dry_used, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		account.UserID, account.ColdCapacity, account.ColdUsed, account.DryCapacity, account.DryUsed,
	)
	if err != nil {
		return fmt.Errorf("upsert storage account: %w", err)
	}
	return nil
}
