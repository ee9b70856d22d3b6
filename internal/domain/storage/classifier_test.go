package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
	"github.com/agrocampo/agrocampo-api/internal/domain/storage"
)

func TestClassifyCategory_SemillasYPlantulasVanAFrio(t *testing.T) {
	assert.Equal(t, entity.StorageCold, storage.ClassifyCategory(entity.CategorySeeds))
	assert.Equal(t, entity.StorageCold, storage.ClassifyCategory(entity.CategoryTransplants))
}

func TestClassifyCategory_RestoDeCategoriasVanASeco(t *testing.T) {
	dry := []string{
		entity.CategoryFertilizer,
		entity.CategoryValueAdd,
		entity.CategoryPesticides,
		entity.CategoryTools,
		entity.CategoryPackaging,
		entity.CategoryIrrigation,
		entity.CategoryAmendments,
		entity.CategoryOther,
	}
	for _, cat := range dry {
		assert.Equal(t, entity.StorageDry, storage.ClassifyCategory(cat),
			"la categoría %s debe clasificar como seco", cat)
	}
}

func TestClassifyCategory_CategoriaDesconocidaVaASeco(t *testing.T) {
	// Fallback documentado: nunca es error, siempre seco.
	assert.Equal(t, entity.StorageDry, storage.ClassifyCategory("algo-inexistente"))
	assert.Equal(t, entity.StorageDry, storage.ClassifyCategory(""))
}

func TestClassifyCrop_CultivosDeCadenaDeFrio(t *testing.T) {
	cases := []string{
		"Tomato",
		"tomato",
		"Cherry Tomato", // substring match
		"BELL PEPPER",
		"lettuce",
		"Carrot",
		"Strawberry",
		"apple",
		"Grape",
		"blueberry", // contiene "berry"
	}
	for _, name := range cases {
		assert.Equal(t, entity.StorageCold, storage.ClassifyCrop(name),
			"el cultivo %q debe clasificar como frío", name)
	}
}

func TestClassifyCrop_CultivosSinCadenaDeFrioVanASeco(t *testing.T) {
	cases := []string{"Wheat", "Corn", "Potato", "Garlic", "desconocido", ""}
	for _, name := range cases {
		assert.Equal(t, entity.StorageDry, storage.ClassifyCrop(name),
			"el cultivo %q debe clasificar como seco", name)
	}
}
