package entity

import "time"

// Employee perfil de empleado asociado uno-a-uno con un User.
type Employee struct {
	ID             string
	UserID         string
	Email          string
	Name           string
	LastName       string
	Bio            string
	BirthDate      *time.Time // opcional
	ProfilePicture string     // ruta relativa del archivo subido, vacío si no hay
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre y apellido separados por un espacio.
func (e *Employee) FullName() string {
	return e.Name + " " + e.LastName
}
