package repository

import "github.com/agrocampo/agrocampo-api/internal/domain/entity"

// CropRepository puerto de lectura del catálogo de cultivos.
type CropRepository interface {
	GetByID(id string) (*entity.Crop, error)
	List(limit, offset int) ([]*entity.Crop, error)
}
