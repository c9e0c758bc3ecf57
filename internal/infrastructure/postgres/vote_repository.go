package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

var _ repository.VoteRepository = (*VoteRepo)(nil)

// VoteRepo implementación del puerto VoteRepository sobre PostgreSQL.
type VoteRepo struct {
	db querier
}

// NewVoteRepository construye el adaptador de persistencia para votos.
func NewVoteRepository(db querier) *VoteRepo {
	return &VoteRepo{db: db}
}

// Create persiste un voto. No hay constraint de unicidad que mapear: los
// límites por empleado los aplica la política dentro de la transacción.
func (r *VoteRepo) Create(v *entity.Vote) error {
	query := `
		INSERT INTO votes (id, employee_id, menu_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(context.Background(), query, v.ID, v.EmployeeID, v.MenuID, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// CountByEmployeeAndMenu votos existentes de un empleado para un menú.
func (r *VoteRepo) CountByEmployeeAndMenu(employeeID, menuID string) (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM votes WHERE employee_id = $1 AND menu_id = $2`,
		employeeID, menuID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return n, nil
}

// ListByMenu votos registrados para un menú, más antiguos primero.
func (r *VoteRepo) ListByMenu(menuID string) ([]*entity.Vote, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, employee_id, menu_id, created_at FROM votes WHERE menu_id = $1 ORDER BY created_at`,
		menuID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vote
	for rows.Next() {
		var v entity.Vote
		if err := rows.Scan(&v.ID, &v.EmployeeID, &v.MenuID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
