package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
// Las lecturas pueblan RestaurantName (join) y TotalVotes (subquery count).
type MenuRepo struct {
	db querier
}

// NewMenuRepository construye el adaptador de persistencia para menús.
func NewMenuRepository(db querier) *MenuRepo {
	return &MenuRepo{db: db}
}

const menuSelect = `
	SELECT m.id, m.restaurant_id, m.date, m.menu_items, m.attachment,
	       m.created_at, m.updated_at, r.name,
	       (SELECT COUNT(*) FROM votes v WHERE v.menu_id = m.id) AS total_votes
	FROM menus m
	JOIN restaurants r ON r.id = m.restaurant_id`

// Create persiste un menú. El UNIQUE (restaurant_id, date) respalda el
// invariante "un menú por restaurante por día".
func (r *MenuRepo) Create(m *entity.Menu) error {
	query := `
		INSERT INTO menus (id, restaurant_id, date, menu_items, attachment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		m.ID, m.RestaurantID, m.Date, m.MenuItems, m.Attachment, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMenu
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// GetByID obtiene un menú por ID con nombre de restaurante y total de votos.
func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	return r.scanOne(menuSelect+` WHERE m.id = $1`, id)
}

// GetForUpdate lee la fila del menú con lock (SELECT ... FOR UPDATE). Solo
// lee la tabla menus, sin join ni count: el lock serializa los votos
// concurrentes sobre el mismo menú dentro de la transacción de CastVote.
// RestaurantName y TotalVotes quedan en cero.
func (r *MenuRepo) GetForUpdate(id string) (*entity.Menu, error) {
	query := `
		SELECT id, restaurant_id, date, menu_items, attachment, created_at, updated_at
		FROM menus WHERE id = $1 FOR UPDATE`
	var m entity.Menu
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.RestaurantID, &m.Date, &m.MenuItems, &m.Attachment,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu for update: %w", err)
	}
	return &m, nil
}

// ListByDate menús de una fecha, sin orden de ranking.
func (r *MenuRepo) ListByDate(date time.Time) ([]*entity.Menu, error) {
	return r.scanMany(menuSelect+` WHERE m.date = $1 ORDER BY r.name`, date)
}

// ListRankedByDate menús de una fecha ordenados por total de votos ASC,
// el orden documentado por la proyección de ranking.
func (r *MenuRepo) ListRankedByDate(date time.Time) ([]*entity.Menu, error) {
	return r.scanMany(menuSelect+` WHERE m.date = $1 ORDER BY total_votes ASC, r.name`, date)
}

// TopByDate el menú más votado de la fecha: orden explícito DESC, LIMIT 1.
func (r *MenuRepo) TopByDate(date time.Time) (*entity.Menu, error) {
	return r.scanOne(menuSelect+` WHERE m.date = $1 ORDER BY total_votes DESC, r.name LIMIT 1`, date)
}

func (r *MenuRepo) scanOne(query string, arg any) (*entity.Menu, error) {
	var m entity.Menu
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.RestaurantID, &m.Date, &m.MenuItems, &m.Attachment,
		&m.CreatedAt, &m.UpdatedAt, &m.RestaurantName, &m.TotalVotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}

func (r *MenuRepo) scanMany(query string, args ...any) ([]*entity.Menu, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Date, &m.MenuItems, &m.Attachment,
			&m.CreatedAt, &m.UpdatedAt, &m.RestaurantName, &m.TotalVotes); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un menú.
func (r *MenuRepo) Update(m *entity.Menu) error {
	query := `
		UPDATE menus
		SET restaurant_id = $2, date = $3, menu_items = $4, attachment = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		m.ID, m.RestaurantID, m.Date, m.MenuItems, m.Attachment, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMenu
		}
		return fmt.Errorf("update menu: %w", err)
	}
	return nil
}

// Delete elimina un menú (cascadea sus votos).
func (r *MenuRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
