package storage

import (
	"strings"

	"github.com/agrocampo/agrocampo-api/internal/domain/entity"
)

// coldChainCrops cultivos que requieren cadena de frío, comparados por substring
// case-insensitive contra el nombre del cultivo. Es una heurística gruesa, no una
// base de datos de perecibilidad.
var coldChainCrops = []string{
	"tomato",
	"pepper",
	"lettuce",
	"carrot",
	"strawberry",
	"apple",
	"grape",
	"cucumber",
	"berry",
	"peach",
}

// ClassifyCategory mapea una categoría de inventario a su clase de almacenamiento.
// seeds y transplants van a frío; todo lo demás (incluida una categoría desconocida)
// va a seco. Función total: no hay caso de error.
func ClassifyCategory(category string) entity.StorageClass {
	switch category {
	case entity.CategorySeeds, entity.CategoryTransplants:
		return entity.StorageCold
	default:
		return entity.StorageDry
	}
}

// ClassifyCrop mapea el nombre de un cultivo cosechado a su clase de almacenamiento.
// Un nombre que contenga cualquier entrada de coldChainCrops clasifica como frío;
// el resto (y los nombres desconocidos) como seco.
func ClassifyCrop(cropName string) entity.StorageClass {
	name := strings.ToLower(cropName)
	for _, c := range coldChainCrops {
		if strings.Contains(name, c) {
			return entity.StorageCold
		}
	}
	return entity.StorageDry
}
