package dto

import "time"

// CropResponse entrada del catálogo de cultivos.
type CropResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Variety        string    `json:"variety,omitempty"`
	DaysToMaturity int       `json:"days_to_maturity,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CropListResponse listado paginado del catálogo.
type CropListResponse struct {
	Items []CropResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
