package dto

import "time"

// CreateMenuRequest entrada para crear/editar un menú (solo admin).
// Date vacío significa hoy.
type CreateMenuRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	MenuItems    string `json:"menu_items"`
}

// MenuResponse proyección completa (escrituras y vista "hoy").
type MenuResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Date         string    `json:"date"`
	MenuItems    string    `json:"menu_items"`
	Attachment   string    `json:"attachment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuDetailResponse proyección de detalle con total de votos.
type MenuDetailResponse struct {
	Name       string `json:"name"`
	MenuItems  string `json:"menu_items"`
	Attachment string `json:"attachment,omitempty"`
	TotalVotes int    `json:"total_votes"`
}

// RankedMenuItem proyección de ranking para listados de menús del día.
type RankedMenuItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalVotes int    `json:"total_votes"`
}
