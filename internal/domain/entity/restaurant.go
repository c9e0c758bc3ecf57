package entity

import "time"

// TextPreviewLength largo máximo del preview de descripción en listados.
const TextPreviewLength = 30

// Restaurant restaurante del que se publican menús diarios.
type Restaurant struct {
	ID          string
	Name        string
	Address     string
	Description string
	Picture     string // ruta relativa del archivo subido, vacío si no hay
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DescriptionPreview primeros TextPreviewLength caracteres de la descripción,
// con elipsis literal si hubo truncado. Cuenta runas, no bytes.
func (r *Restaurant) DescriptionPreview() string {
	runes := []rune(r.Description)
	if len(runes) <= TextPreviewLength {
		return r.Description
	}
	return string(runes[:TextPreviewLength]) + "..."
}
