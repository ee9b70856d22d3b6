package harvest_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/application/harvest"
	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/infrastructure/memory"
)

const testUserID = "user-1"

func newHarvestEnv() (*memory.Store, *harvest.HarvestUseCase) {
	store := memory.NewStore()
	uc := harvest.NewHarvestUseCase(
		memory.NewTxRunner(store),
		memory.NewHarvestRecordRepository(store),
		memory.NewCropRepository(store),
	)
	return store, uc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func usedOf(t *testing.T, store *memory.Store, class entity.StorageClass) decimal.Decimal {
	t.Helper()
	account, err := memory.NewStorageAccountRepository(store).Get(testUserID)
	require.NoError(t, err)
	return account.Used(class)
}

func TestHarvestCreate_RegistraYSumaVolumenAFrio(t *testing.T) {
	store, uc := newHarvestEnv()

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropName: "Cherry Tomato",
		Amount:   dec("50"),
		Unit:     "lbs",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Cherry Tomato", resp.CropName)

	// 50 × 0.05 = 2.5; tomato clasifica a frío.
	assert.True(t, usedOf(t, store, entity.StorageCold).Equal(dec("2.5")))
}

func TestHarvestCreate_CultivoSinCadenaDeFrioSumaASeco(t *testing.T) {
	store, uc := newHarvestEnv()

	_, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropName: "Wheat",
		Amount:   dec("200"),
	})
	require.NoError(t, err)

	assert.True(t, usedOf(t, store, entity.StorageDry).Equal(dec("10")))
}

func TestHarvestCreate_ResuelveElNombreDesdeElCatalogo(t *testing.T) {
	store, uc := newHarvestEnv()
	store.SeedCrop(entity.Crop{ID: "crop-1", Name: "Strawberry", Variety: "Albion"})

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropID:   "crop-1",
		CropName: "esto se ignora",
		Amount:   dec("20"),
	})
	require.NoError(t, err)

	// El catálogo manda: el nombre resuelto decide la clase.
	assert.Equal(t, "Strawberry", resp.CropName)
	assert.True(t, usedOf(t, store, entity.StorageCold).Equal(dec("1")))
}

func TestHarvestCreate_CropIDInexistenteEsNotFound(t *testing.T) {
	_, uc := newHarvestEnv()

	_, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropID: "no-existe",
		Amount: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHarvestCreate_ValidaEntrada(t *testing.T) {
	_, uc := newHarvestEnv()
	ctx := context.Background()

	// Cantidad cero o negativa.
	_, err := uc.Create(ctx, testUserID, dto.CreateHarvestRequest{CropName: "Wheat", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, testUserID, dto.CreateHarvestRequest{CropName: "Wheat", Amount: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin cultivo resoluble.
	_, err = uc.Create(ctx, testUserID, dto.CreateHarvestRequest{Amount: dec("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHarvestCreate_UsaFechaDeCosechaDelRequest(t *testing.T) {
	_, uc := newHarvestEnv()
	when := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropName:    "Corn",
		Amount:      dec("10"),
		HarvestedAt: &when,
	})
	require.NoError(t, err)
	assert.True(t, resp.HarvestedAt.Equal(when))
}

func TestHarvestCreate_FalloDelLedgerRevierteElRegistro(t *testing.T) {
	store, uc := newHarvestEnv()

	store.FailAccountUpserts(assert.AnError)
	_, err := uc.Create(context.Background(), testUserID, dto.CreateHarvestRequest{
		CropName: "Wheat",
		Amount:   dec("10"),
	})
	require.Error(t, err)
	store.FailAccountUpserts(nil)

	list, err := memory.NewHarvestRecordRepository(store).ListByUser(testUserID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHarvestGetByID_RespetaLaPropiedad(t *testing.T) {
	_, uc := newHarvestEnv()
	ctx := context.Background()

	created, err := uc.Create(ctx, testUserID, dto.CreateHarvestRequest{CropName: "Corn", Amount: dec("10")})
	require.NoError(t, err)

	resp, err := uc.GetByID(ctx, testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	_, err = uc.GetByID(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(ctx, testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHarvestList_FiltraPorUsuario(t *testing.T) {
	_, uc := newHarvestEnv()
	ctx := context.Background()

	_, err := uc.Create(ctx, testUserID, dto.CreateHarvestRequest{CropName: "Corn", Amount: dec("10")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "user-2", dto.CreateHarvestRequest{CropName: "Corn", Amount: dec("10")})
	require.NoError(t, err)

	resp, err := uc.List(ctx, testUserID, 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, testUserID, resp.Items[0].UserID)
}
