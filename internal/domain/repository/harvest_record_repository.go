package repository

import "github.com/agrocampo/agrocampo-api/internal/domain/entity"

// HarvestRecordRepository puerto de persistencia para cosechas.
type HarvestRecordRepository interface {
	Create(record *entity.HarvestRecord) error
	GetByID(id string) (*entity.HarvestRecord, error)
	ListByUser(userID string, limit, offset int) ([]*entity.HarvestRecord, error)
}
