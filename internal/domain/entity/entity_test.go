package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
)

func TestEmployee_FullName(t *testing.T) {
	e := &entity.Employee{Name: "Ana", LastName: "García"}
	assert.Equal(t, "Ana García", e.FullName(),
		"full name = nombre + espacio + apellido")
}

func TestRestaurant_DescriptionPreview_Corta(t *testing.T) {
	r := &entity.Restaurant{Description: "Cocina casera"}
	assert.Equal(t, "Cocina casera", r.DescriptionPreview(),
		"descripción de 30 caracteres o menos se devuelve literal")
}

func TestRestaurant_DescriptionPreview_LimiteExacto(t *testing.T) {
	desc := strings.Repeat("a", entity.TextPreviewLength)
	r := &entity.Restaurant{Description: desc}
	assert.Equal(t, desc, r.DescriptionPreview(),
		"exactamente 30 caracteres no lleva elipsis")
}

func TestRestaurant_DescriptionPreview_Truncada(t *testing.T) {
	desc := strings.Repeat("a", entity.TextPreviewLength+1)
	r := &entity.Restaurant{Description: desc}
	got := r.DescriptionPreview()
	assert.Equal(t, strings.Repeat("a", entity.TextPreviewLength)+"...", got)
}

func TestRestaurant_DescriptionPreview_CuentaRunas(t *testing.T) {
	// 31 runas multibyte: debe truncar a 30 runas completas, no partir bytes.
	desc := strings.Repeat("ñ", entity.TextPreviewLength+1)
	r := &entity.Restaurant{Description: desc}
	assert.Equal(t, strings.Repeat("ñ", entity.TextPreviewLength)+"...", r.DescriptionPreview())
}

func TestMenu_DisplayName(t *testing.T) {
	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	m := &entity.Menu{RestaurantName: "Bella Italia", Date: date}
	assert.Equal(t, "Bella Italia 2026-08-28", m.DisplayName())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleAdmin}).IsAdmin())
	assert.False(t, (&entity.User{Role: entity.RoleEmployee}).IsAdmin())
}
