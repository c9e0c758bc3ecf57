package dto

import "time"

// CreateEmployeeRequest entrada para crear el perfil de empleado.
// La identidad (user_id) se toma del token, nunca del cuerpo.
type CreateEmployeeRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD, opcional
}

// UpdateEmployeeRequest entrada para editar el perfil propio.
type UpdateEmployeeRequest struct {
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD, opcional
}

// EmployeeResponse proyección completa (escrituras).
type EmployeeResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	Bio            string    `json:"bio"`
	BirthDate      *string   `json:"birth_date"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmployeeListItem proyección de listado: id, nombre completo y email.
type EmployeeListItem struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// EmployeeDetailResponse proyección de detalle.
type EmployeeDetailResponse struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	BirthDate      *string `json:"birth_date"`
	Bio            string  `json:"bio"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}
