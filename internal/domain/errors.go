package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrProfileAlreadyExists = errors.New("ya tienes un perfil de empleado")
	ErrNoEmployeeProfile    = errors.New("necesitas un perfil de empleado para votar")
	ErrDuplicateMenu        = errors.New("ya existe un menú para ese restaurante en esa fecha")
	ErrMenuNotToday         = errors.New("el menú no es de hoy")
	ErrAlreadyVoted         = errors.New("ya has votado por este menú")
	ErrVoteLimitReached     = errors.New("has alcanzado el máximo de votos para este menú")
)
