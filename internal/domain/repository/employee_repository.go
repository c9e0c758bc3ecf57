package repository

import "github.com/tu-usuario/lunch-decider/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// Las búsquedas devuelven (nil, nil) si no hay fila.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// GetByUserID búsqueda por identidad de autenticación (relación uno-a-uno).
	GetByUserID(userID string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
