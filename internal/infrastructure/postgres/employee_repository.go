package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, user_id, email, name, last_name, bio, birth_date, profile_picture, created_at, updated_at`

// Create persiste un perfil de empleado. El UNIQUE de user_id respalda en DB
// la regla "un perfil por usuario"; el de email, la unicidad de email.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.UserID, e.Email, e.Name, e.LastName, e.Bio, e.BirthDate, e.ProfilePicture,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.scanOne(`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil asociado a una identidad de autenticación.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	return r.scanOne(`SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID)
}

func (r *EmployeeRepo) scanOne(query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.UserID, &e.Email, &e.Name, &e.LastName, &e.Bio, &e.BirthDate,
		&e.ProfilePicture, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista empleados con paginación, orden estable por fecha de alta.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.Email, &e.Name, &e.LastName, &e.Bio,
			&e.BirthDate, &e.ProfilePicture, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un perfil de empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees
		SET email = $2, name = $3, last_name = $4, bio = $5, birth_date = $6,
		    profile_picture = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.Email, e.Name, e.LastName, e.Bio, e.BirthDate, e.ProfilePicture, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un perfil por ID (cascadea sus votos).
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
