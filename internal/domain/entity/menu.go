package entity

import "time"

// DateLayout formato de fecha de los menús (solo día).
const DateLayout = "2006-01-02"

// Menu oferta diaria de un restaurante; unidad sobre la que se vota.
// Invariante: (RestaurantID, Date) es único, un menú por restaurante por día.
type Menu struct {
	ID           string
	RestaurantID string
	Date         time.Time // solo se usa la parte de fecha
	MenuItems    string
	Attachment   string // carta del día subida, vacío si no hay
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Derivados, poblados por las consultas (join / subquery count).
	RestaurantName string
	TotalVotes     int
}

// DisplayName nombre derivado: nombre del restaurante + fecha.
func (m *Menu) DisplayName() string {
	return m.RestaurantName + " " + m.Date.Format(DateLayout)
}
