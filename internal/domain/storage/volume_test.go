package storage_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

func TestInventoryVolume_FactorPuntoUno(t *testing.T) {
	// 50 unidades de inventario → 5 unidades de volumen
	got := storage.InventoryVolume(decimal.NewFromInt(50))
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "esperado 5, obtenido %s", got)
}

func TestHarvestVolume_FactorPuntoCeroCinco(t *testing.T) {
	// 40 unidades cosechadas → 2 unidades de volumen
	got := storage.HarvestVolume(decimal.NewFromInt(40))
	assert.True(t, got.Equal(decimal.NewFromInt(2)), "esperado 2, obtenido %s", got)
}

func TestVolume_CantidadCeroDaVolumenCero(t *testing.T) {
	assert.True(t, storage.InventoryVolume(decimal.Zero).IsZero())
	assert.True(t, storage.HarvestVolume(decimal.Zero).IsZero())
}

func TestVolume_CantidadFraccionariaSinPerdida(t *testing.T) {
	// decimal evita el drift de float: 0.3 × 0.1 = 0.03 exacto
	got := storage.InventoryVolume(decimal.NewFromFloat(0.3))
	assert.True(t, got.Equal(decimal.NewFromFloat(0.03)), "esperado 0.03, obtenido %s", got)
}
