package usecase

import (
	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

// CropUseCase consulta del catálogo de cultivos (solo lectura).
type CropUseCase struct {
	repo repository.CropRepository
}

// NewCropUseCase construye el caso de uso.
func NewCropUseCase(repo repository.CropRepository) *CropUseCase {
	return &CropUseCase{repo: repo}
}

// GetByID obtiene una entrada del catálogo por ID.
func (uc *CropUseCase) GetByID(id string) (*dto.CropResponse, error) {
	crop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, nil
	}
	resp := toCropResponse(crop)
	return &resp, nil
}

// List lista el catálogo con paginación.
func (uc *CropUseCase) List(limit, offset int) (*dto.CropListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CropResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCropResponse(c))
	}
	return &dto.CropListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCropResponse(c *entity.Crop) dto.CropResponse {
	return dto.CropResponse{
		ID:             c.ID,
		Name:           c.Name,
		Variety:        c.Variety,
		DaysToMaturity: c.DaysToMaturity,
		CreatedAt:      c.CreatedAt,
	}
}
