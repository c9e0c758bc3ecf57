package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	db querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(db querier) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

const restaurantColumns = `id, name, address, description, picture, created_at, updated_at`

// Create persiste un restaurante.
func (r *RestaurantRepo) Create(rest *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		rest.ID, rest.Name, rest.Address, rest.Description, rest.Picture,
		rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID. (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.db.QueryRow(context.Background(),
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id).Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.Picture,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// List lista restaurantes con paginación, orden alfabético.
func (r *RestaurantRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description,
			&rest.Picture, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}

// Update actualiza un restaurante.
func (r *RestaurantRepo) Update(rest *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, address = $3, description = $4, picture = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		rest.ID, rest.Name, rest.Address, rest.Description, rest.Picture, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete elimina un restaurante (cascadea menús y votos).
func (r *RestaurantRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}
