package entity

import "time"

// Vote voto de un empleado por un menú.
//
// A nivel de esquema NO hay constraint de unicidad sobre (EmployeeID, MenuID):
// la política V1 permite dos filas idénticas, así que el límite se aplica en
// la política de votación dentro de una transacción, no en la tabla.
type Vote struct {
	ID         string
	EmployeeID string
	MenuID     string
	CreatedAt  time.Time
}
