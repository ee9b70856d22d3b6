package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

var _ repository.CropRepository = (*CropRepo)(nil)

// CropRepo implementación de CropRepository sobre PostgreSQL (solo lectura).
type CropRepo struct {
	q Querier
}

// NewCropRepository construye el adaptador del catálogo de cultivos.
func NewCropRepository(q Querier) *CropRepo {
	return &CropRepo{q: q}
}

// GetByID obtiene una entrada del catálogo por ID.
func (r *CropRepo) GetByID(id string) (*entity.Crop, error) {
	query := `SELECT id, name, variety, days_to_maturity, created_at FROM crops WHERE id = $1`
	var c entity.Crop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Variety, &c.DaysToMaturity, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crop: %w", err)
	}
	return &c, nil
}

// List lista el catálogo con paginación, ordenado por nombre.
func (r *CropRepo) List(limit, offset int) ([]*entity.Crop, error) {
	query := `
		SELECT id, name, variety, days_to_maturity, created_at
		FROM crops ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Crop
	for rows.Next() {
		var c entity.Crop
		if err := rows.Scan(&c.ID, &c.Name, &c.Variety, &c.DaysToMaturity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
