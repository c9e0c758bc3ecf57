package repository

import "github.com/tu-usuario/lunch-decider/internal/domain/entity"

// VoteRepository define el puerto de persistencia para Vote.
type VoteRepository interface {
	Create(vote *entity.Vote) error
	// CountByEmployeeAndMenu votos existentes de un empleado para un menú,
	// la base de ambas políticas de votación.
	CountByEmployeeAndMenu(employeeID, menuID string) (int, error)
	ListByMenu(menuID string) ([]*entity.Vote, error)
}
