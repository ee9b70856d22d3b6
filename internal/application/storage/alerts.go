package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/repository"
)

// Umbrales de alerta de capacidad (porcentaje de uso).
var (
	thresholdHigh   = decimal.NewFromInt(90)
	thresholdMedium = decimal.NewFromInt(75)
	hundred         = decimal.NewFromInt(100)
)

// AlertsUseCase deriva alertas de bajo stock y de umbral de capacidad a partir
// de la cuenta de almacenamiento y el inventario actual. Solo lectura: nada se
// persiste, cada llamada refleja los valores del momento.
type AlertsUseCase struct {
	accountRepo repository.StorageAccountRepository
	itemRepo    repository.InventoryItemRepository
}

// NewAlertsUseCase construye el evaluador de alertas.
func NewAlertsUseCase(accountRepo repository.StorageAccountRepository, itemRepo repository.InventoryItemRepository) *AlertsUseCase {
	return &AlertsUseCase{accountRepo: accountRepo, itemRepo: itemRepo}
}

// Evaluate calcula las alertas vigentes para el usuario:
//   - bajo stock: reorder_level definido y quantity <= reorder_level;
//   - capacidad: por clase con capacity > 0, pct = used/capacity×100;
//     high con pct >= 90, medium con pct >= 75, si no, sin alerta.
func (uc *AlertsUseCase) Evaluate(ctx context.Context, userID string) (*dto.AlertsResponse, error) {
	account, err := uc.accountRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListAllByUser(userID)
	if err != nil {
		return nil, err
	}

	lowStock := make([]dto.InventoryItemResponse, 0)
	for _, item := range items {
		if item.IsLowStock() {
			lowStock = append(lowStock, toInventoryItemResponse(item))
		}
	}

	storageAlerts := make([]dto.StorageAlertDTO, 0, 2)
	for _, class := range []entity.StorageClass{entity.StorageCold, entity.StorageDry} {
		if alert := evaluateClass(account, class); alert != nil {
			storageAlerts = append(storageAlerts, *alert)
		}
	}

	return &dto.AlertsResponse{
		LowStockItems: lowStock,
		StorageAlerts: storageAlerts,
	}, nil
}

// evaluateClass devuelve la alerta de la clase o nil si no supera el umbral medio.
// Capacity en 0 significa "sin seguimiento": porcentaje 0, nunca alerta.
func evaluateClass(account *entity.StorageAccount, class entity.StorageClass) *dto.StorageAlertDTO {
	capacity := account.Capacity(class)
	if !capacity.GreaterThan(decimal.Zero) {
		return nil
	}
	pct := account.Used(class).Div(capacity).Mul(hundred).Round(2)

	var severity string
	switch {
	case pct.GreaterThanOrEqual(thresholdHigh):
		severity = "high"
	case pct.GreaterThanOrEqual(thresholdMedium):
		severity = "medium"
	default:
		return nil
	}

	label := "almacenamiento seco"
	if class == entity.StorageCold {
		label = "almacenamiento en frío"
	}
	return &dto.StorageAlertDTO{
		Class:      string(class),
		Percentage: pct,
		Severity:   severity,
		Message:    fmt.Sprintf("El %s está al %s%% de su capacidad", label, pct.StringFixed(1)),
	}
}

// toInventoryItemResponse mapea la entidad al DTO de salida.
func toInventoryItemResponse(i *entity.InventoryItem) dto.InventoryItemResponse {
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
