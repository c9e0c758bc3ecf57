package dto

import "time"

// CreateRestaurantRequest entrada para crear/editar un restaurante (solo admin).
type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// RestaurantResponse proyección completa (escrituras).
type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Picture     string    `json:"picture,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RestaurantListItem proyección de listado con descripción truncada.
type RestaurantListItem struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DescriptionPreview string `json:"description_preview"`
}

// RestaurantDetailResponse proyección de detalle.
type RestaurantDetailResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Picture     string `json:"picture,omitempty"`
}
