package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

var _ repository.HarvestRecordRepository = (*HarvestRecordRepo)(nil)

// HarvestRecordRepo implementación de HarvestRecordRepository sobre PostgreSQL
// (usable con pool o tx).
type HarvestRecordRepo struct {
	q Querier
}

// NewHarvestRecordRepository construye el adaptador de cosechas. Pasar pool o tx (Querier).
func NewHarvestRecordRepository(q Querier) *HarvestRecordRepo {
	return &HarvestRecordRepo{q: q}
}

const harvestColumns = `id, user_id, crop_id, crop_name, amount, unit, harvested_at, notes, created_at`

// Create persiste una nueva cosecha.
func (r *HarvestRecordRepo) Create(record *entity.HarvestRecord) error {
	query := `
		INSERT INTO harvest_records (` + harvestColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.UserID, record.CropID, record.CropName, record.Amount,
		record.Unit, record.HarvestedAt, record.Notes, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert harvest record: %w", err)
	}
	return nil
}

// GetByID obtiene una cosecha por ID.
func (r *HarvestRecordRepo) GetByID(id string) (*entity.HarvestRecord, error) {
	query := `
		SELECT id, user_id, COALESCE(crop_id, ''), crop_name, amount, unit, harvested_at, notes, created_at
		FROM harvest_records WHERE id = $1`
	var h entity.HarvestRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.UserID, &h.CropID, &h.CropName, &h.Amount, &h.Unit,
		&h.HarvestedAt, &h.Notes, &h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get harvest record: %w", err)
	}
	return &h, nil
}

// ListByUser lista cosechas del usuario, más recientes primero.
func (r *HarvestRecordRepo) ListByUser(userID string, limit, offset int) ([]*entity.HarvestRecord, error) {
	query := `
		SELECT id, user_id, COALESCE(crop_id, ''), crop_name, amount, unit, harvested_at, notes, created_at
		FROM harvest_records WHERE user_id = $1
		ORDER BY harvested_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list harvest records: %w", err)
	}
	defer rows.Close()
	var list []*entity.HarvestRecord
	for rows.Next() {
		var h entity.HarvestRecord
		if err := rows.Scan(&h.ID, &h.UserID, &h.CropID, &h.CropName, &h.Amount, &h.Unit,
			&h.HarvestedAt, &h.Notes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan harvest record: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
