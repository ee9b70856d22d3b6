package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agrocampo-api/internal/application/dto"
	"github.com/agrocampo/agrocampo-api/internal/application/inventory"
	"github.com/agrocampo/agrocampo-api/internal/domain"
	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/infrastructure/memory"
)

const testUserID = "user-1"

func newInventoryEnv() (*memory.Store, *inventory.InventoryUseCase) {
	store := memory.NewStore()
	uc := inventory.NewInventoryUseCase(
		memory.NewTxRunner(store),
		memory.NewInventoryItemRepository(store),
	)
	return store, uc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func coldUsed(t *testing.T, store *memory.Store) decimal.Decimal {
	t.Helper()
	account, err := memory.NewStorageAccountRepository(store).Get(testUserID)
	require.NoError(t, err)
	return account.ColdUsed
}

func dryUsed(t *testing.T, store *memory.Store) decimal.Decimal {
	t.Helper()
	account, err := memory.NewStorageAccountRepository(store).Get(testUserID)
	require.NoError(t, err)
	return account.DryUsed
}

// ============================================================================
// Create
// ============================================================================

func TestInventoryCreate_PersisteElItemYSumaSuVolumen(t *testing.T) {
	store, uc := newInventoryEnv()

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateInventoryItemRequest{
		Name:     "Semillas de tomate",
		Category: entity.CategorySeeds,
		Quantity: dec("40"),
		Unit:     "lbs",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testUserID, resp.UserID)

	// 40 × 0.1 = 4 en frío (seeds clasifica a frío).
	assert.True(t, coldUsed(t, store).Equal(dec("4")))

	item, err := memory.NewInventoryItemRepository(store).GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Semillas de tomate", item.Name)
}

func TestInventoryCreate_CantidadCeroNoMueveElLedger(t *testing.T) {
	store, uc := newInventoryEnv()

	_, err := uc.Create(context.Background(), testUserID, dto.CreateInventoryItemRequest{
		Name:     "Cajas",
		Category: entity.CategoryPackaging,
		Quantity: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, dryUsed(t, store).IsZero())
}

func TestInventoryCreate_ValidaEntrada(t *testing.T) {
	_, uc := newInventoryEnv()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateInventoryItemRequest
	}{
		{"nombre vacío", dto.CreateInventoryItemRequest{Category: entity.CategorySeeds, Quantity: dec("1")}},
		{"categoría desconocida", dto.CreateInventoryItemRequest{Name: "x", Category: "frutas", Quantity: dec("1")}},
		{"cantidad negativa", dto.CreateInventoryItemRequest{Name: "x", Category: entity.CategorySeeds, Quantity: dec("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, testUserID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInventoryCreate_FalloDelLedgerRevierteElItem(t *testing.T) {
	store, uc := newInventoryEnv()

	store.FailAccountUpserts(assert.AnError)
	_, err := uc.Create(context.Background(), testUserID, dto.CreateInventoryItemRequest{
		Name:     "Abono",
		Category: entity.CategoryFertilizer,
		Quantity: dec("10"),
	})
	require.Error(t, err)
	store.FailAccountUpserts(nil)

	// Atómico: si el delta no se aplicó, el ítem tampoco debe existir.
	list, err := memory.NewInventoryItemRepository(store).ListAllByUser(testUserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ============================================================================
// Update
// ============================================================================

func createSeedItem(t *testing.T, uc *inventory.InventoryUseCase, quantity string) string {
	t.Helper()
	resp, err := uc.Create(context.Background(), testUserID, dto.CreateInventoryItemRequest{
		Name:     "Semillas",
		Category: entity.CategorySeeds,
		Quantity: dec(quantity),
	})
	require.NoError(t, err)
	return resp.ID
}

func TestInventoryUpdate_CambioDeCantidadAplicaDeltaFirmado(t *testing.T) {
	store, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "100") // frío = 10

	newQty := dec("60")
	resp, err := uc.Update(context.Background(), testUserID, id, dto.UpdateInventoryItemRequest{
		Quantity: &newQty,
	})
	require.NoError(t, err)
	assert.True(t, resp.Quantity.Equal(dec("60")))

	assert.True(t, coldUsed(t, store).Equal(dec("6")), "10 − 4 = 6")
}

func TestInventoryUpdate_SinCambioDeCantidadNoMueveElLedger(t *testing.T) {
	store, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "100")

	name := "Semillas renombradas"
	_, err := uc.Update(context.Background(), testUserID, id, dto.UpdateInventoryItemRequest{
		Name: &name,
	})
	require.NoError(t, err)

	assert.True(t, coldUsed(t, store).Equal(dec("10")))
}

func TestInventoryUpdate_MismaCategoriaEsAceptada(t *testing.T) {
	_, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "10")

	same := entity.CategorySeeds
	_, err := uc.Update(context.Background(), testUserID, id, dto.UpdateInventoryItemRequest{
		Category: &same,
	})
	assert.NoError(t, err)
}

func TestInventoryUpdate_CambiarCategoriaEsInvalido(t *testing.T) {
	store, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "10")

	other := entity.CategoryFertilizer
	_, err := uc.Update(context.Background(), testUserID, id, dto.UpdateInventoryItemRequest{
		Category: &other,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// La categoría original sobrevive.
	item, err := memory.NewInventoryItemRepository(store).GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.CategorySeeds, item.Category)
}

func TestInventoryUpdate_ItemDeOtroUsuarioEsProhibido(t *testing.T) {
	_, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "10")

	qty := dec("5")
	_, err := uc.Update(context.Background(), "user-2", id, dto.UpdateInventoryItemRequest{
		Quantity: &qty,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInventoryUpdate_ItemInexistenteEsNotFound(t *testing.T) {
	_, uc := newInventoryEnv()

	qty := dec("5")
	_, err := uc.Update(context.Background(), testUserID, "no-existe", dto.UpdateInventoryItemRequest{
		Quantity: &qty,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ============================================================================
// Delete
// ============================================================================

func TestInventoryDelete_RestaElVolumenVigente(t *testing.T) {
	store, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "40") // frío = 4

	err := uc.Delete(context.Background(), testUserID, id)
	require.NoError(t, err)

	assert.True(t, coldUsed(t, store).IsZero(), "crear y borrar debe dejar el uso en cero")

	item, err := memory.NewInventoryItemRepository(store).GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestInventoryDelete_ItemDeOtroUsuarioEsProhibido(t *testing.T) {
	_, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "10")

	err := uc.Delete(context.Background(), "user-2", id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ============================================================================
// Lectura
// ============================================================================

func TestInventoryGetByID_RespetaLaPropiedad(t *testing.T) {
	_, uc := newInventoryEnv()
	id := createSeedItem(t, uc, "10")

	ctx := context.Background()
	resp, err := uc.GetByID(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)

	_, err = uc.GetByID(ctx, "user-2", id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(ctx, testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryList_PaginaYFiltraPorUsuario(t *testing.T) {
	_, uc := newInventoryEnv()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createSeedItem(t, uc, "1")
	}
	_, err := uc.Create(ctx, "user-2", dto.CreateInventoryItemRequest{
		Name:     "de otro usuario",
		Category: entity.CategoryTools,
		Quantity: dec("1"),
	})
	require.NoError(t, err)

	resp, err := uc.List(ctx, testUserID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	resp, err = uc.List(ctx, testUserID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, testUserID, resp.Items[0].UserID)
}
