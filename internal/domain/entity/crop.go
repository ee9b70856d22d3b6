package entity

import "time"

// Crop entrada del catálogo de cultivos (solo lectura para este backend).
// El detalle agronómico extendido lo genera un servicio externo.
type Crop struct {
	ID             string
	Name           string
	Variety        string
	DaysToMaturity int
	CreatedAt      time.Time
}
